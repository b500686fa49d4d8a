package vecmath

import (
	"fmt"
	"math"
)

// Vector3 is a vector in a right-handed local navigation frame.
type Vector3 struct {
	XEast  float64
	YNorth float64
	ZUp    float64
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.XEast + w.XEast, v.YNorth + w.YNorth, v.ZUp + w.ZUp}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.XEast - w.XEast, v.YNorth - w.YNorth, v.ZUp - w.ZUp}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.XEast, -v.YNorth, -v.ZUp}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.XEast * s, v.YNorth * s, v.ZUp * s}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.XEast*w.XEast + v.YNorth*w.YNorth + v.ZUp*w.ZUp
}

// Cross returns the cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.YNorth*w.ZUp - v.ZUp*w.YNorth,
		v.ZUp*w.XEast - v.XEast*w.ZUp,
		v.XEast*w.YNorth - v.YNorth*w.XEast,
	}
}

// Abs returns the Euclidean norm of v.
// The norm is composed from two hypot calls so large or tiny components
// neither overflow nor underflow.
func (v Vector3) Abs() float64 {
	return math.Hypot(math.Hypot(v.XEast, v.YNorth), v.ZUp)
}

// Unit returns v scaled to length 1, or v itself when v is the zero vector.
func (v Vector3) Unit() Vector3 {
	return Unit(v)
}

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool {
	return v.XEast == 0 && v.YNorth == 0 && v.ZUp == 0
}

// RotateAboutAxis rotates v by angle radians about axis using Rodrigues'
// formula. The result is a rigid rotation only when axis has unit length.
func (v Vector3) RotateAboutAxis(axis Vector3, angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale((1 - cos) * axis.Dot(v)))
}

// RotateAboutPointAxis rotates v by angle radians about the line through
// origin with direction axis.
func (v Vector3) RotateAboutPointAxis(origin, axis Vector3, angle float64) Vector3 {
	return v.Sub(origin).RotateAboutAxis(axis, angle).Add(origin)
}

// UpAndRight derives a local frame from the forward direction v.
//
// A purely vertical forward vector has no horizontal reference, so right and
// up fall back to the world X and Y axes: positive for an upward forward
// vector, negated for a downward one, and zero for the zero vector.
func (v Vector3) UpAndRight() (up, right Vector3) {
	if v.XEast == 0 && v.YNorth == 0 {
		switch {
		case v.ZUp == 0:
			return AxisY(0), AxisX(0)
		case v.ZUp > 0:
			return AxisY(1), AxisX(1)
		default:
			return AxisY(-1), AxisX(-1)
		}
	}

	right = v.Cross(AxisZ(1)).Unit()
	up = right.Cross(v).Unit()
	return up, right
}

// Slerp interpolates along the great circle between two unit vectors.
// Neither input is normalized. Identical inputs return unitStart so the
// sin(0) denominator is never evaluated.
func Slerp(unitStart, unitFinish Vector3, t float64) Vector3 {
	if unitStart == unitFinish {
		return unitStart
	}

	omega := math.Acos(unitStart.Dot(unitFinish))
	sinOmega := math.Sin(omega)
	a := math.Sin(omega*(1-t)) / sinOmega
	b := math.Sin(omega*t) / sinOmega
	return unitStart.Scale(a).Add(unitFinish.Scale(b))
}

// Format renders v as "(x, y, z)" with prec digits after the decimal point.
func (v Vector3) Format(prec int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", prec, v.XEast, prec, v.YNorth, prec, v.ZUp)
}

// String renders v with three decimal places.
func (v Vector3) String() string {
	return v.Format(DefaultPrecision)
}
