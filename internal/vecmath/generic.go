package vecmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the number of decimals used by String.
const DefaultPrecision = 3

// Vector is satisfied by the two vector kinds.
type Vector[T any] interface {
	Vector2 | Vector3
	Add(T) T
	Scale(float64) T
	Dot(T) float64
	Abs() float64
}

// Unit returns v / |v|, or v unchanged when |v| is zero.
func Unit[T Vector[T]](v T) T {
	m := v.Abs()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Lerp interpolates linearly from start to finish. t is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp[T Vector[T]](start, finish T, t float64) T {
	return start.Scale(1 - t).Add(finish.Scale(t))
}

// AngleBetween returns the angle in radians between a and b.
func AngleBetween[T Vector[T]](a, b T) float64 {
	return math.Acos(Unit(a).Dot(Unit(b)))
}

// ApproxEqual reports whether every component of a and b is within tol,
// either absolutely or relative to the larger magnitude.
func ApproxEqual[T Vector2 | Vector3](a, b T, tol float64) bool {
	ca, cb := components(a), components(b)
	for i := range ca {
		if !scalar.EqualWithinAbsOrRel(ca[i], cb[i], tol, tol) {
			return false
		}
	}
	return true
}

func components[T Vector2 | Vector3](v T) []float64 {
	switch v := any(v).(type) {
	case Vector2:
		return []float64{v.U, v.V}
	case Vector3:
		return []float64{v.XEast, v.YNorth, v.ZUp}
	}
	return nil
}

// RadiansToDegrees converts an angle from radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// DegreesToRadians converts an angle from degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees / 180 * math.Pi
}
