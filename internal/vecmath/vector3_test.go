package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func toR3(v Vector3) r3.Vec   { return r3.Vec{X: v.XEast, Y: v.YNorth, Z: v.ZUp} }
func fromR3(v r3.Vec) Vector3 { return Vector3{v.X, v.Y, v.Z} }

var samples3 = []Vector3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 2, 3},
	{-4.5, 0.25, 7},
	{1e-3, -2e3, 0.5},
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -5, 6}

	assert.Equal(t, Vector3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vector3{-1, -2, -3}, a.Neg())
	assert.Equal(t, Vector3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 4.0-10.0+18.0, a.Dot(b))
}

func TestVector3AddSubRoundTrip(t *testing.T) {
	for _, v := range samples3 {
		for _, w := range samples3 {
			got := v.Add(w).Sub(w)
			assert.True(t, ApproxEqual(v, got, tol), "%v + %v - %v = %v", v, w, w, got)
		}
	}
}

func TestVector3DotCommutes(t *testing.T) {
	for _, v := range samples3 {
		for _, w := range samples3 {
			assert.Equal(t, v.Dot(w), w.Dot(v))
		}
	}
}

func TestVector3Cross(t *testing.T) {
	assert.Equal(t, Vector3{0, 0, 1}, AxisX(1).Cross(AxisY(1)))
	assert.Equal(t, Vector3{1, 0, 0}, AxisY(1).Cross(AxisZ(1)))
	assert.Equal(t, Vector3{0, 1, 0}, AxisZ(1).Cross(AxisX(1)))

	for _, a := range samples3 {
		for _, b := range samples3 {
			ab := a.Cross(b)
			assert.Equal(t, ab, b.Cross(a).Neg(), "anti-commutativity for %v, %v", a, b)
			assert.InDelta(t, 0, a.Dot(ab), 1e-6, "a·(a×b) for %v, %v", a, b)
			assert.True(t, ApproxEqual(fromR3(r3.Cross(toR3(a), toR3(b))), ab, tol))
		}
	}
}

func TestVector3Abs(t *testing.T) {
	assert.Equal(t, 0.0, Vector3{}.Abs())
	assert.InDelta(t, 3.0, Vector3{1, 2, 2}.Abs(), tol)

	for _, v := range samples3 {
		assert.InDelta(t, r3.Norm(toR3(v)), v.Abs(), 1e-9)
	}

	// Squaring these components would overflow.
	big := Vector3{1e200, 1e200, 1e200}
	assert.False(t, math.IsInf(big.Abs(), 0))
	assert.InDelta(t, math.Sqrt(3), big.Abs()/1e200, tol)

	// And these would underflow to zero.
	tiny := Vector3{3e-200, 4e-200, 0}
	assert.InDelta(t, 5.0, tiny.Abs()/1e-200, tol)
}

func TestVector3Unit(t *testing.T) {
	for _, v := range samples3 {
		assert.InDelta(t, 1.0, v.Unit().Abs(), tol, "unit(%v)", v)
	}

	zero := Vector3{}
	assert.Equal(t, zero, zero.Unit())
	assert.True(t, zero.IsZero())
}

func TestVector3RotateAboutAxis(t *testing.T) {
	got := AxisX(1).RotateAboutAxis(AxisZ(1), math.Pi/2)
	assert.True(t, ApproxEqual(Vector3{0, 1, 0}, got, tol), "got %v", got)

	axes := []Vector3{AxisX(1), AxisY(1), AxisZ(1), Vector3{1, 1, 1}.Unit(), Vector3{-2, 0.5, 3}.Unit()}
	angles := []float64{0, 0.3, math.Pi / 2, math.Pi, -2.1}

	for _, axis := range axes {
		for _, angle := range angles {
			for _, v := range samples3 {
				want := fromR3(r3.Rotate(toR3(v), angle, toR3(axis)))
				got := v.RotateAboutAxis(axis, angle)
				assert.True(t, ApproxEqual(want, got, 1e-9), "rotate %v about %v by %v: got %v want %v", v, axis, angle, got, want)
			}
		}
	}
}

func TestVector3RotateAboutAxisUnnormalized(t *testing.T) {
	// A non-unit axis is used as given: the result is no longer a rotation.
	v := AxisX(1)
	got := v.RotateAboutAxis(AxisX(2), math.Pi)
	// v·cosπ + 0 + axis·(1-cosπ)·(axis·v) = -v + (2,0,0)*2*2
	assert.True(t, ApproxEqual(Vector3{7, 0, 0}, got, tol), "got %v", got)
}

func TestVector3RotateAboutPointAxis(t *testing.T) {
	origin := Vector3{1, 1, 0}
	got := Vector3{2, 1, 0}.RotateAboutPointAxis(origin, AxisZ(1), math.Pi/2)
	assert.True(t, ApproxEqual(Vector3{1, 2, 0}, got, tol), "got %v", got)
}

func TestVector3UpAndRight(t *testing.T) {
	tests := []struct {
		name      string
		forward   Vector3
		wantUp    Vector3
		wantRight Vector3
	}{
		{"zero", Vector3{}, Vector3{}, Vector3{}},
		{"straight up", AxisZ(5), Vector3{0, 1, 0}, Vector3{1, 0, 0}},
		{"straight down", AxisZ(-0.5), Vector3{0, -1, 0}, Vector3{-1, 0, 0}},
		{"along x", AxisX(1), Vector3{0, 0, 1}, Vector3{0, -1, 0}},
		{"along y", AxisY(3), Vector3{0, 0, 1}, Vector3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, right := tt.forward.UpAndRight()
			assert.True(t, ApproxEqual(tt.wantUp, up, tol), "up = %v, want %v", up, tt.wantUp)
			assert.True(t, ApproxEqual(tt.wantRight, right, tol), "right = %v, want %v", right, tt.wantRight)
		})
	}
}

func TestVector3UpAndRightOrthogonal(t *testing.T) {
	forward := Vector3{3, -1, 2}
	up, right := forward.UpAndRight()

	assert.InDelta(t, 1.0, up.Abs(), tol)
	assert.InDelta(t, 1.0, right.Abs(), tol)
	assert.InDelta(t, 0, up.Dot(right), tol)
	assert.InDelta(t, 0, up.Dot(forward), tol)
	assert.InDelta(t, 0, right.Dot(forward), tol)
	assert.InDelta(t, 0, right.ZUp, tol, "right stays horizontal")
	assert.Greater(t, up.ZUp, 0.0)
}

func TestSlerp(t *testing.T) {
	a := AxisX(1)
	b := AxisY(1)

	assert.True(t, ApproxEqual(a, Slerp(a, b, 0), tol))
	assert.True(t, ApproxEqual(b, Slerp(a, b, 1), tol))

	mid := Slerp(a, b, 0.5)
	assert.True(t, ApproxEqual(Vector3{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}, mid, tol), "mid = %v", mid)
	assert.InDelta(t, 1.0, mid.Abs(), tol)
}

func TestSlerpIdenticalInputs(t *testing.T) {
	u := Vector3{1, 2, 3}.Unit()
	for _, s := range []float64{-1, 0, 0.25, 1, 7} {
		got := Slerp(u, u, s)
		require.Equal(t, u, got)
		require.False(t, math.IsNaN(got.XEast))
	}
}

func TestVector3String(t *testing.T) {
	assert.Equal(t, "(1.000, -2.500, 0.333)", Vector3{1, -2.5, 1.0 / 3}.String())
	assert.Equal(t, "(1.0, 2.0, 3.0)", Vector3{1, 2, 3}.Format(1))
}
