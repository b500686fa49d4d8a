package vecmath

import (
	"fmt"
	"math"
)

// Vector2 is a planar vector. U and V can be read as the real and imaginary
// parts of a complex number.
type Vector2 struct {
	U float64
	V float64
}

// UnitAtAngle returns the unit vector at theta radians from the U axis.
func UnitAtAngle(theta float64) Vector2 {
	sin, cos := math.Sincos(theta)
	return Vector2{cos, sin}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.U + w.U, v.V + w.V}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.U - w.U, v.V - w.V}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.U, -v.V}
}

// Conj mirrors v about the U axis.
func (v Vector2) Conj() Vector2 {
	return Vector2{v.U, -v.V}
}

// Scale returns v * s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.U * s, v.V * s}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.U*w.U + v.V*w.V
}

// Abs returns the Euclidean norm of v.
func (v Vector2) Abs() float64 {
	return math.Hypot(v.U, v.V)
}

// Unit returns v scaled to length 1, or v itself when v is the zero vector.
func (v Vector2) Unit() Vector2 {
	return Unit(v)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.U == 0 && v.V == 0
}

// Angle returns the heading of v measured from the U axis, in (-π, π].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.V, v.U)
}

// Rotate rotates v about the origin by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		v.U*cos - v.V*sin,
		v.U*sin + v.V*cos,
	}
}

// RotateAboutPoint rotates v about p by angle radians.
func (v Vector2) RotateAboutPoint(p Vector2, angle float64) Vector2 {
	return v.Sub(p).Rotate(angle).Add(p)
}

// RotateLeft rotates v a quarter turn counter-clockwise.
func (v Vector2) RotateLeft() Vector2 {
	return Vector2{-v.V, v.U}
}

// RotateRight rotates v a quarter turn clockwise.
func (v Vector2) RotateRight() Vector2 {
	return Vector2{v.V, -v.U}
}

// Format renders v as "(u, v)" with prec digits after the decimal point.
func (v Vector2) Format(prec int) string {
	return fmt.Sprintf("(%.*f, %.*f)", prec, v.U, prec, v.V)
}

// String renders v with three decimal places.
func (v Vector2) String() string {
	return v.Format(DefaultPrecision)
}
