package dispatch

import (
	"github.com/dshills/navvec/internal/operand"
	"github.com/dshills/navvec/internal/vecmath"
)

// New builds a vector from its operands:
//   - one number: the unit planar vector at that angle in radians
//   - one vector: a copy of it
//   - two numbers: a planar vector
//   - three numbers: a spatial vector
//
// Any other operand count is an ArityError.
func New(args operand.Source) (operand.Value, error) {
	switch args.Len() {
	case 1:
		v, err := operand.Resolve(args, 1)
		if err != nil {
			return operand.Value{}, err
		}
		if v.Kind == operand.KindScalar {
			return operand.Planar(vecmath.UnitAtAngle(v.Num)), nil
		}
		return v, nil

	case 2:
		u, err := operand.CheckNumber(args, 1)
		if err != nil {
			return operand.Value{}, err
		}
		v, err := operand.CheckNumber(args, 2)
		if err != nil {
			return operand.Value{}, err
		}
		return operand.Planar(vecmath.Vector2{U: u, V: v}), nil

	case 3:
		var c [3]float64
		for i := range c {
			f, err := operand.CheckNumber(args, i+1)
			if err != nil {
				return operand.Value{}, err
			}
			c[i] = f
		}
		return operand.Spatial(vecmath.Vector3{XEast: c[0], YNorth: c[1], ZUp: c[2]}), nil

	default:
		return operand.Value{}, &ArityError{Count: args.Len()}
	}
}

// Add returns the component-wise sum of two vectors of the same kind.
func Add(args operand.Source) (operand.Value, error) {
	a, b, err := sameKindPair(args)
	if err != nil {
		return operand.Value{}, err
	}
	if a.Kind == operand.KindVector3 {
		return operand.Spatial(a.V3.Add(b.V3)), nil
	}
	return operand.Planar(a.V2.Add(b.V2)), nil
}

// Sub returns the component-wise difference of two vectors of the same kind.
func Sub(args operand.Source) (operand.Value, error) {
	a, b, err := sameKindPair(args)
	if err != nil {
		return operand.Value{}, err
	}
	if a.Kind == operand.KindVector3 {
		return operand.Spatial(a.V3.Sub(b.V3)), nil
	}
	return operand.Planar(a.V2.Sub(b.V2)), nil
}

// Mul is the dot product of two vectors of the same kind, or the scaling
// of a vector by a number given in either order. Every other pairing fails
// at operand 2.
func Mul(args operand.Source) (operand.Value, error) {
	a, err := operand.Resolve(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	b, err := operand.Resolve(args, 2)
	if err != nil {
		return operand.Value{}, err
	}

	if a.Kind == operand.KindScalar {
		a, b = b, a
	}

	switch {
	case a.Kind == operand.KindVector3 && b.Kind == operand.KindVector3:
		return operand.Number(a.V3.Dot(b.V3)), nil
	case a.Kind == operand.KindVector2 && b.Kind == operand.KindVector2:
		return operand.Number(a.V2.Dot(b.V2)), nil
	case a.Kind == operand.KindVector3 && b.Kind == operand.KindScalar:
		return operand.Spatial(a.V3.Scale(b.Num)), nil
	case a.Kind == operand.KindVector2 && b.Kind == operand.KindScalar:
		return operand.Planar(a.V2.Scale(b.Num)), nil
	}
	return operand.Value{}, combinationError(2)
}

// Neg returns the vector pointing the opposite way.
func Neg(args operand.Source) (operand.Value, error) {
	v, err := operand.ResolveVector(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	if v.Kind == operand.KindVector3 {
		return operand.Spatial(v.V3.Neg()), nil
	}
	return operand.Planar(v.V2.Neg()), nil
}

// Cross returns the cross product of two spatial vectors.
func Cross(args operand.Source) (operand.Value, error) {
	a, err := operand.CheckVector3(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	b, err := operand.CheckVector3(args, 2)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Spatial(a.Cross(b)), nil
}

// Length returns the magnitude of a vector.
func Length(args operand.Source) (operand.Value, error) {
	v, err := operand.ResolveVector(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	if v.Kind == operand.KindVector3 {
		return operand.Number(v.V3.Abs()), nil
	}
	return operand.Number(v.V2.Abs()), nil
}

// Unit returns the vector scaled to length 1. The zero vector is returned
// unchanged.
func Unit(args operand.Source) (operand.Value, error) {
	v, err := operand.ResolveVector(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	if v.Kind == operand.KindVector3 {
		return operand.Spatial(v.V3.Unit()), nil
	}
	return operand.Planar(v.V2.Unit()), nil
}

// Rotate turns a vector by an angle in radians. A spatial vector takes
// (v, axis, angle) and rotates about axis; a planar vector takes (v, angle)
// and rotates about the origin.
func Rotate(args operand.Source) (operand.Value, error) {
	v, err := operand.ResolveVector(args, 1)
	if err != nil {
		return operand.Value{}, err
	}

	if v.Kind == operand.KindVector3 {
		axis, err := operand.CheckVector3(args, 2)
		if err != nil {
			return operand.Value{}, err
		}
		angle, err := operand.CheckNumber(args, 3)
		if err != nil {
			return operand.Value{}, err
		}
		return operand.Spatial(v.V3.RotateAboutAxis(axis, angle)), nil
	}

	angle, err := operand.CheckNumber(args, 2)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Planar(v.V2.Rotate(angle)), nil
}

// Lerp interpolates linearly between two vectors of the same kind:
// (start, finish, t).
func Lerp(args operand.Source) (operand.Value, error) {
	a, b, err := sameKindPair(args)
	if err != nil {
		return operand.Value{}, err
	}
	t, err := operand.CheckNumber(args, 3)
	if err != nil {
		return operand.Value{}, err
	}
	if a.Kind == operand.KindVector3 {
		return operand.Spatial(vecmath.Lerp(a.V3, b.V3, t)), nil
	}
	return operand.Planar(vecmath.Lerp(a.V2, b.V2, t)), nil
}

// Slerp interpolates between two unit spatial vectors: (start, finish, t).
func Slerp(args operand.Source) (operand.Value, error) {
	a, err := operand.CheckVector3(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	b, err := operand.CheckVector3(args, 2)
	if err != nil {
		return operand.Value{}, err
	}
	t, err := operand.CheckNumber(args, 3)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Spatial(vecmath.Slerp(a, b, t)), nil
}

// UpAndRight derives the up and right vectors of a forward direction.
func UpAndRight(args operand.Source) (up, right operand.Value, err error) {
	v, err := operand.CheckVector3(args, 1)
	if err != nil {
		return operand.Value{}, operand.Value{}, err
	}
	u, r := v.UpAndRight()
	return operand.Spatial(u), operand.Spatial(r), nil
}

// Angle returns the angle in radians between two vectors of the same kind.
func Angle(args operand.Source) (operand.Value, error) {
	a, b, err := sameKindPair(args)
	if err != nil {
		return operand.Value{}, err
	}
	if a.Kind == operand.KindVector3 {
		return operand.Number(vecmath.AngleBetween(a.V3, b.V3)), nil
	}
	return operand.Number(vecmath.AngleBetween(a.V2, b.V2)), nil
}

// Conj mirrors a planar vector about the U axis.
func Conj(args operand.Source) (operand.Value, error) {
	v, err := operand.CheckVector2(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Planar(v.Conj()), nil
}

// Equal reports whether two vectors are identical. Vectors of different
// kinds are never equal.
func Equal(args operand.Source) (bool, error) {
	a, err := operand.ResolveVector(args, 1)
	if err != nil {
		return false, err
	}
	b, err := operand.ResolveVector(args, 2)
	if err != nil {
		return false, err
	}
	if a.Kind != b.Kind {
		return false, nil
	}
	if a.Kind == operand.KindVector3 {
		return a.V3 == b.V3, nil
	}
	return a.V2 == b.V2, nil
}

// Component accessors.

// X returns the east component of a spatial vector.
func X(args operand.Source) (operand.Value, error) {
	return spatialComponent(args, func(v vecmath.Vector3) float64 { return v.XEast })
}

// Y returns the north component of a spatial vector.
func Y(args operand.Source) (operand.Value, error) {
	return spatialComponent(args, func(v vecmath.Vector3) float64 { return v.YNorth })
}

// Z returns the up component of a spatial vector.
func Z(args operand.Source) (operand.Value, error) {
	return spatialComponent(args, func(v vecmath.Vector3) float64 { return v.ZUp })
}

// U returns the first component of a planar vector.
func U(args operand.Source) (operand.Value, error) {
	return planarComponent(args, func(v vecmath.Vector2) float64 { return v.U })
}

// V returns the second component of a planar vector.
func V(args operand.Source) (operand.Value, error) {
	return planarComponent(args, func(v vecmath.Vector2) float64 { return v.V })
}

func spatialComponent(args operand.Source, get func(vecmath.Vector3) float64) (operand.Value, error) {
	v, err := operand.CheckVector3(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Number(get(v)), nil
}

func planarComponent(args operand.Source, get func(vecmath.Vector2) float64) (operand.Value, error) {
	v, err := operand.CheckVector2(args, 1)
	if err != nil {
		return operand.Value{}, err
	}
	return operand.Number(get(v)), nil
}

// sameKindPair resolves operands 1 and 2 as vectors of one kind.
func sameKindPair(args operand.Source) (a, b operand.Value, err error) {
	a, err = operand.ResolveVector(args, 1)
	if err != nil {
		return a, b, err
	}
	b, err = operand.ResolveVector(args, 2)
	if err != nil {
		return a, b, err
	}
	if a.Kind != b.Kind {
		return a, b, &KindMismatchError{Pos: 2, Want: a.Kind, Got: b.Kind}
	}
	return a, b, nil
}
