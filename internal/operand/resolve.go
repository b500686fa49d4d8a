package operand

import "github.com/dshills/navvec/internal/vecmath"

// Source exposes the arguments of one call. Positions are 1-based and a
// position past Len reports false from every accessor.
type Source interface {
	// Len returns the number of arguments.
	Len() int
	// Number attempts numeric coercion of the argument at pos.
	Number(pos int) (float64, bool)
	// Vector3 extracts a spatial vector from the argument at pos.
	Vector3(pos int) (vecmath.Vector3, bool)
	// Vector2 extracts a planar vector from the argument at pos.
	Vector2(pos int) (vecmath.Vector2, bool)
}

// Resolve classifies the argument at pos.
func Resolve(src Source, pos int) (Value, error) {
	if f, ok := src.Number(pos); ok {
		return Number(f), nil
	}
	if v, ok := src.Vector3(pos); ok {
		return Spatial(v), nil
	}
	if v, ok := src.Vector2(pos); ok {
		return Planar(v), nil
	}
	return Value{}, &TypeError{Pos: pos, Msg: "vector expected"}
}

// ResolveVector classifies the argument at pos and rejects plain numbers.
func ResolveVector(src Source, pos int) (Value, error) {
	v, err := Resolve(src, pos)
	if err != nil {
		return Value{}, err
	}
	if v.Kind == KindScalar {
		return Value{}, &TypeError{Pos: pos, Msg: "vector expected"}
	}
	return v, nil
}

// CheckNumber returns the argument at pos as a number.
func CheckNumber(src Source, pos int) (float64, error) {
	if f, ok := src.Number(pos); ok {
		return f, nil
	}
	return 0, &TypeError{Pos: pos, Msg: "number expected"}
}

// CheckVector3 returns the argument at pos as a spatial vector.
func CheckVector3(src Source, pos int) (vecmath.Vector3, error) {
	if v, ok := src.Vector3(pos); ok {
		return v, nil
	}
	return vecmath.Vector3{}, &TypeError{Pos: pos, Msg: KindVector3.String() + " expected"}
}

// CheckVector2 returns the argument at pos as a planar vector.
func CheckVector2(src Source, pos int) (vecmath.Vector2, error) {
	if v, ok := src.Vector2(pos); ok {
		return v, nil
	}
	return vecmath.Vector2{}, &TypeError{Pos: pos, Msg: KindVector2.String() + " expected"}
}

// Args is a Source over already-resolved values, for Go callers.
type Args []Value

// Len implements Source.
func (a Args) Len() int { return len(a) }

// Number implements Source.
func (a Args) Number(pos int) (float64, bool) {
	v, ok := a.at(pos)
	if !ok || v.Kind != KindScalar {
		return 0, false
	}
	return v.Num, true
}

// Vector3 implements Source.
func (a Args) Vector3(pos int) (vecmath.Vector3, bool) {
	v, ok := a.at(pos)
	if !ok || v.Kind != KindVector3 {
		return vecmath.Vector3{}, false
	}
	return v.V3, true
}

// Vector2 implements Source.
func (a Args) Vector2(pos int) (vecmath.Vector2, bool) {
	v, ok := a.at(pos)
	if !ok || v.Kind != KindVector2 {
		return vecmath.Vector2{}, false
	}
	return v.V2, true
}

func (a Args) at(pos int) (Value, bool) {
	if pos < 1 || pos > len(a) {
		return Value{}, false
	}
	return a[pos-1], true
}
