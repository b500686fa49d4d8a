package vecmath

// Named constructors for axis-aligned vectors.
//
// The Meters* helpers follow the layout of the navigation library they were
// ported from: north and south lie on the first component, east and west on
// the second.

// AxisX returns (m, 0, 0).
func AxisX(m float64) Vector3 { return Vector3{m, 0, 0} }

// AxisY returns (0, m, 0).
func AxisY(m float64) Vector3 { return Vector3{0, m, 0} }

// AxisZ returns (0, 0, m).
func AxisZ(m float64) Vector3 { return Vector3{0, 0, m} }

// MetersNorth returns (m, 0, 0).
func MetersNorth(m float64) Vector3 { return Vector3{m, 0, 0} }

// MetersSouth returns (-m, 0, 0).
func MetersSouth(m float64) Vector3 { return Vector3{-m, 0, 0} }

// MetersEast returns (0, m, 0).
func MetersEast(m float64) Vector3 { return Vector3{0, m, 0} }

// MetersWest returns (0, -m, 0).
func MetersWest(m float64) Vector3 { return Vector3{0, -m, 0} }

// MetersUp returns (0, 0, m).
func MetersUp(m float64) Vector3 { return Vector3{0, 0, m} }

// MetersDown returns (0, 0, -m).
func MetersDown(m float64) Vector3 { return Vector3{0, 0, -m} }

// AxisU returns (m, 0).
func AxisU(m float64) Vector2 { return Vector2{m, 0} }

// AxisV returns (0, m).
func AxisV(m float64) Vector2 { return Vector2{0, m} }

// UnitAtDegrees returns the unit planar vector at deg degrees from the U axis.
func UnitAtDegrees(deg float64) Vector2 {
	return UnitAtAngle(DegreesToRadians(deg))
}
