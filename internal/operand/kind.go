// Package operand classifies the arguments of a polymorphic vector operation.
//
// A host hands arguments to the dispatcher through a Source. Resolve inspects
// one position and returns a Value tagged with its Kind:
//
//	v, err := operand.Resolve(src, 1)
//	if err != nil {
//	    return err // *operand.TypeError naming position 1
//	}
//	switch v.Kind {
//	case operand.KindScalar:
//	case operand.KindVector2:
//	case operand.KindVector3:
//	}
//
// Numeric coercion is attempted first, then the spatial vector accessor,
// then the planar one. Hosts whose values could satisfy more than one
// accessor are classified by that order.
package operand

import (
	"strconv"

	"github.com/dshills/navvec/internal/vecmath"
)

// Kind is the runtime classification of an operand.
type Kind int

const (
	// KindScalar is a plain number.
	KindScalar Kind = iota
	// KindVector2 is a planar vector.
	KindVector2
	// KindVector3 is a spatial navigation vector.
	KindVector3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "number"
	case KindVector2:
		return "planevector"
	case KindVector3:
		return "navvector"
	default:
		return "unknown"
	}
}

// IsVector reports whether k is one of the vector kinds.
func (k Kind) IsVector() bool {
	return k == KindVector2 || k == KindVector3
}

// Value is a resolved operand. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Num  float64
	V2   vecmath.Vector2
	V3   vecmath.Vector3
}

// Number wraps a scalar.
func Number(f float64) Value {
	return Value{Kind: KindScalar, Num: f}
}

// Planar wraps a Vector2.
func Planar(v vecmath.Vector2) Value {
	return Value{Kind: KindVector2, V2: v}
}

// Spatial wraps a Vector3.
func Spatial(v vecmath.Vector3) Value {
	return Value{Kind: KindVector3, V3: v}
}

// String renders the value the way a host would display it.
func (v Value) String() string {
	switch v.Kind {
	case KindVector2:
		return v.V2.String()
	case KindVector3:
		return v.V3.String()
	default:
		return formatNumber(v.Num)
	}
}

// formatNumber matches the %.14g rendering Lua uses for numbers.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', 14, 64)
}
