// Package vecmath implements the planar and spatial vector algebra used by the
// scripting layer.
//
// Two value types are provided:
//   - Vector2: a planar vector with components U and V
//   - Vector3: a navigation-frame vector with components XEast, YNorth and ZUp
//
// All functions are pure. Vectors are compared exactly; use ApproxEqual when
// a tolerance is needed.
//
// # Conventions
//
// Angles are in radians unless a function name says otherwise. Dot products
// are written a.Dot(b), cross products a.Cross(b). Unit leaves the zero
// vector unchanged instead of producing NaN components:
//
//	v := vecmath.Vector3{}
//	v.Unit() == v // true
//
// Lerp, Unit and AngleBetween are generic over both vector kinds.
package vecmath
