// Package dispatch implements the polymorphic vector operators.
//
// Every operator takes an operand.Source, resolves the kind of each operand
// it needs and routes to the vecmath formula for that combination of kinds.
// Unsupported combinations are reported as errors naming the offending
// operand position; nothing is coerced between vector kinds.
//
// # Operators
//
//	new         0 or >3 operands: ArityError
//	            1 number: unit planar vector at that angle
//	            1 vector: copy
//	            2 numbers: planar vector
//	            3 numbers: spatial vector
//	mul         vector·vector (same kind): dot product
//	            vector*number, number*vector: scaled vector
//	add, sub    same kind only
//	length      magnitude
//	unit        normalized copy, zero vector unchanged
//	rotate      spatial: (v, axis, angle); planar: (v, angle)
//	lerp        (start, finish, t), same kind only
//	angle       angle between two vectors of the same kind
//	cross       spatial only
//	slerp       spatial only
//	upAndRight  spatial only, returns up and right
//	conj        planar only
//
// # Registry
//
// NewRegistry assembles the operators into the tables a scripting host
// installs: a library of free functions, per-kind method tables (including
// metamethod names such as __add and __mul) and the zero-vector constants.
// A Registry is never modified after construction.
package dispatch
