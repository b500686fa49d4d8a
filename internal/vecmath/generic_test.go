package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	for _, v := range samples3 {
		for _, w := range samples3 {
			assert.Equal(t, v, Lerp(v, w, 0))
			assert.True(t, ApproxEqual(w, Lerp(v, w, 1), tol))
		}
	}
	for _, v := range samples2 {
		for _, w := range samples2 {
			assert.Equal(t, v, Lerp(v, w, 0))
			assert.True(t, ApproxEqual(w, Lerp(v, w, 1), tol))
		}
	}
}

func TestLerpExtrapolates(t *testing.T) {
	a := Vector2{0, 0}
	b := Vector2{2, 4}
	assert.Equal(t, Vector2{1, 2}, Lerp(a, b, 0.5))
	assert.Equal(t, Vector2{4, 8}, Lerp(a, b, 2))
	assert.Equal(t, Vector2{-2, -4}, Lerp(a, b, -1))

	assert.Equal(t, Vector3{5, 0, -5}, Lerp(AxisX(0), Vector3{10, 0, -10}, 0.5))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleBetween(AxisX(1), AxisY(3)), tol)
	assert.InDelta(t, math.Pi, AngleBetween(AxisU(2), AxisU(-5)), tol)
	assert.InDelta(t, math.Pi/4, AngleBetween(AxisU(1), Vector2{7, 7}), 1e-7)
	assert.Equal(t, 0.0, AngleBetween(AxisY(2), AxisY(5)))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(Vector2{1, 2}, Vector2{1 + 1e-13, 2}, 1e-12))
	assert.False(t, ApproxEqual(Vector2{1, 2}, Vector2{1.1, 2}, 1e-12))
	assert.True(t, ApproxEqual(Vector3{1e9, 0, 0}, Vector3{1e9 + 1e-1, 0, 0}, 1e-9))
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, 180.0, RadiansToDegrees(math.Pi), tol)
	assert.InDelta(t, math.Pi/2, DegreesToRadians(90), tol)
}

func TestNamedConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"x", AxisX(2), Vector3{2, 0, 0}},
		{"y", AxisY(2), Vector3{0, 2, 0}},
		{"z", AxisZ(2), Vector3{0, 0, 2}},
		{"north", MetersNorth(5), Vector3{5, 0, 0}},
		{"south", MetersSouth(5), Vector3{-5, 0, 0}},
		{"east", MetersEast(5), Vector3{0, 5, 0}},
		{"west", MetersWest(5), Vector3{0, -5, 0}},
		{"up", MetersUp(30), Vector3{0, 0, 30}},
		{"down", MetersDown(30), Vector3{0, 0, -30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	pythagorean := AxisX(3).Add(AxisY(4))
	assert.Equal(t, 5.0, pythagorean.Abs())
	assert.Equal(t, Vector2{54.25, -138.5}, AxisU(54.25).Sub(AxisV(138.5)))
}
