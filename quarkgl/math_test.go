package quarkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestOrbitDefaultLooksDownZ(t *testing.T) {
	var cam Camera
	o := OrbitController{Radius: 10}
	o.Apply(&cam)
	assert.InDelta(t, 0, cam.Position.X, 1e-5)
	assert.InDelta(t, 0, cam.Position.Y, 1e-5)
	assert.InDelta(t, 10, cam.Position.Z, 1e-5)
}

func TestOrbitClamps(t *testing.T) {
	o := OrbitController{Radius: 10, MinRadius: 4, MaxRadius: 30, MaxPitch: 1}
	o.Zoom(-100)
	assert.Equal(t, Scalar(4), o.Radius)
	o.Rotate(0, 5)
	assert.Equal(t, Scalar(1), o.Pitch)
}

func TestClipLineToRect(t *testing.T) {
	x0, y0, x1, y1, u0, u1, ok := clipLineToRect(-10, 5, 20, 5, 0, 0, 9, 9)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 5, 9, 5}, []float64{x0, y0, x1, y1})
	assert.InDelta(t, 10.0/30, u0, 1e-9)
	assert.InDelta(t, 19.0/30, u1, 1e-9)

	_, _, _, _, _, _, ok = clipLineToRect(-10, -5, 20, -5, 0, 0, 9, 9)
	assert.False(t, ok)
}

func TestSphereMeshIndicesInRange(t *testing.T) {
	m := NewSphereMesh(1, 8, 6)
	require.NotEmpty(t, m.Indices)
	assert.Zero(t, len(m.Indices)%3)
	for _, i := range m.Indices {
		assert.Less(t, int(i), len(m.Vertices))
	}
}
