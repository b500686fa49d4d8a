package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

var samples2 = []Vector2{
	{1, 0},
	{0, 1},
	{3, 4},
	{-2.5, 0.125},
	{1e3, -1e-3},
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{1, 2}
	b := Vector2{-3, 5}

	assert.Equal(t, Vector2{-2, 7}, a.Add(b))
	assert.Equal(t, Vector2{4, -3}, a.Sub(b))
	assert.Equal(t, Vector2{-1, -2}, a.Neg())
	assert.Equal(t, Vector2{1, -2}, a.Conj())
	assert.Equal(t, Vector2{0.5, 1}, a.Scale(0.5))
	assert.Equal(t, 7.0, a.Dot(b))
}

func TestVector2AddSubRoundTrip(t *testing.T) {
	for _, v := range samples2 {
		for _, w := range samples2 {
			got := v.Add(w).Sub(w)
			assert.True(t, ApproxEqual(v, got, tol), "%v + %v - %v = %v", v, w, w, got)
			assert.Equal(t, v.Dot(w), w.Dot(v))
		}
	}
}

func TestVector2AbsAndUnit(t *testing.T) {
	assert.Equal(t, 5.0, Vector2{3, 4}.Abs())
	assert.InDelta(t, 5.0, Vector2{3e200, 4e200}.Abs()/1e200, tol)

	for _, v := range samples2 {
		assert.InDelta(t, 1.0, v.Unit().Abs(), tol, "unit(%v)", v)
	}
	assert.Equal(t, Vector2{}, Vector2{}.Unit())
	assert.True(t, Vector2{}.IsZero())
	assert.False(t, Vector2{0, 1}.IsZero())
}

func TestVector2Rotate(t *testing.T) {
	got := AxisU(1).Rotate(math.Pi / 2)
	assert.True(t, ApproxEqual(Vector2{0, 1}, got, tol), "got %v", got)

	for _, angle := range []float64{0, 0.7, math.Pi, -1.3} {
		for _, v := range samples2 {
			want := r2.Rotate(r2.Vec{X: v.U, Y: v.V}, angle, r2.Vec{})
			got := v.Rotate(angle)
			assert.True(t, ApproxEqual(Vector2{want.X, want.Y}, got, 1e-9), "rotate %v by %v", v, angle)
		}
	}
}

func TestVector2RotateAboutPoint(t *testing.T) {
	p := Vector2{1, 1}
	got := Vector2{2, 1}.RotateAboutPoint(p, math.Pi)
	assert.True(t, ApproxEqual(Vector2{0, 1}, got, tol), "got %v", got)

	want := r2.Rotate(r2.Vec{X: 2, Y: 1}, 0.4, r2.Vec{X: 1, Y: 1})
	got = Vector2{2, 1}.RotateAboutPoint(p, 0.4)
	assert.True(t, ApproxEqual(Vector2{want.X, want.Y}, got, 1e-9), "got %v", got)
}

func TestVector2QuarterTurns(t *testing.T) {
	v := Vector2{3, 4}
	assert.Equal(t, Vector2{-4, 3}, v.RotateLeft())
	assert.Equal(t, Vector2{4, -3}, v.RotateRight())
	assert.Equal(t, v, v.RotateLeft().RotateRight())
}

func TestVector2Angle(t *testing.T) {
	assert.Equal(t, 0.0, AxisU(2).Angle())
	assert.InDelta(t, math.Pi/2, AxisV(1).Angle(), tol)
	assert.InDelta(t, math.Pi, AxisU(-1).Angle(), tol)
	assert.InDelta(t, -math.Pi/4, Vector2{1, -1}.Angle(), tol)
}

func TestUnitAtAngle(t *testing.T) {
	assert.Equal(t, Vector2{1, 0}, UnitAtAngle(0))
	assert.True(t, ApproxEqual(Vector2{0, 1}, UnitAtAngle(math.Pi/2), tol))
	assert.True(t, ApproxEqual(Vector2{math.Sqrt2 / 2, math.Sqrt2 / 2}, UnitAtDegrees(45), tol))
}

func TestVector2String(t *testing.T) {
	assert.Equal(t, "(3.000, -4.000)", Vector2{3, -4}.String())
	assert.Equal(t, "(0.33, 0.67)", Vector2{1.0 / 3, 2.0 / 3}.Format(2))
}
