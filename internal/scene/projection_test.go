package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linviz/internal/geometry"
	"linviz/internal/history"
	"linviz/internal/linear"
	"linviz/internal/scene"
	"linviz/internal/scene/scenetest"
	"linviz/quarkgl"
)

func newProjection(t *testing.T) (*scene.Projection, *scenetest.Surface) {
	t.Helper()
	surf := scenetest.New()
	p := scene.NewProjection(surf, nil)
	p.Init(geometry.Derive(linear.New(2, -1), geometry.DefaultExtent))
	return p, surf
}

func TestInitCreatesPersistentPrimitives(t *testing.T) {
	p, surf := newProjection(t)
	assert.Equal(t, 2*21+3+1, surf.Count(scenetest.KindLine))
	assert.Equal(t, 2, surf.Count(scenetest.KindMarker))
	assert.Equal(t, 40, surf.Count(scenetest.KindLabel))
	assert.Equal(t, 40, p.LabelCount())

	x := surf.Prims[p.XInterceptHandle()]
	require.NotNil(t, x)
	assert.True(t, x.Visible)
	assert.Equal(t, geometry.Vec3{X: 0.5}, x.Pos)
}

func TestApplyGeometryMutatesInPlace(t *testing.T) {
	p, surf := newProjection(t)
	adds := surf.Adds

	p.ApplyGeometry(geometry.Derive(linear.New(0, 3), geometry.DefaultExtent))
	p.ApplyGeometry(geometry.Derive(linear.New(1, 1), geometry.DefaultExtent))
	assert.Equal(t, adds, surf.Adds, "no primitive should be recreated")

	line := surf.Prims[p.LineHandle()]
	assert.Equal(t, geometry.Segment{From: geometry.Vec3{X: -10, Y: -9}, To: geometry.Vec3{X: 10, Y: 11}}, line.Seg)
	assert.Equal(t, geometry.Vec3{Y: 1}, surf.Prims[p.YInterceptHandle()].Pos)
	assert.Equal(t, geometry.Vec3{X: -1}, surf.Prims[p.XInterceptHandle()].Pos)
}

func TestApplyGeometryHidesXIntercept(t *testing.T) {
	p, surf := newProjection(t)
	for _, fn := range []linear.Function{linear.New(0, 0), linear.New(0, 2)} {
		p.ApplyGeometry(geometry.Derive(fn, geometry.DefaultExtent))
		assert.False(t, surf.Prims[p.XInterceptHandle()].Visible)
		assert.True(t, surf.Prims[p.YInterceptHandle()].Visible)
	}
	p.ApplyGeometry(geometry.Derive(linear.New(1, 0), geometry.DefaultExtent))
	assert.True(t, surf.Prims[p.XInterceptHandle()].Visible)
}

func TestShowPointsSkipsBadRows(t *testing.T) {
	p, surf := newProjection(t)
	rows := []history.Row{
		{X: "1.00", Y: "1.00"},
		{X: "oops", Y: "2.00"},
		{X: "3.00", Y: ""},
		{X: "-2.00", Y: "-5.00"},
	}
	shown, skipped := p.ShowPoints(rows)
	assert.Equal(t, 2, shown)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 2, p.PointMarkers())

	pts := surf.Markers(scene.ColorPoint)
	require.Len(t, pts, 2)
	for _, pt := range pts {
		assert.Equal(t, scene.PointRadius, pt.Radius)
		assert.Zero(t, pt.Pos.Z)
	}
}

func TestShowPointsReplacesPreviousPass(t *testing.T) {
	p, surf := newProjection(t)
	p.ShowPoints([]history.Row{{X: "1", Y: "1"}, {X: "2", Y: "2"}})
	p.ShowPoints([]history.Row{{X: "3", Y: "3"}})
	assert.Equal(t, 1, p.PointMarkers())
	assert.Len(t, surf.Markers(scene.ColorPoint), 1)
}

func TestClearPointMarkersIdempotent(t *testing.T) {
	p, surf := newProjection(t)
	p.ShowPoints([]history.Row{{X: "1", Y: "1"}})
	p.ClearPointMarkers()
	removes := surf.Removes
	p.ClearPointMarkers()
	assert.Equal(t, removes, surf.Removes)
	assert.Zero(t, p.PointMarkers())
	assert.Equal(t, 2, surf.Count(scenetest.KindMarker), "intercept markers survive")
}

func TestShowPointsSurfaceFull(t *testing.T) {
	p, surf := newProjection(t)
	surf.Limit = len(surf.Prims) + 1
	shown, skipped := p.ShowPoints([]history.Row{{X: "1", Y: "1"}, {X: "2", Y: "2"}})
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, skipped)
}

func TestQuarkSurface(t *testing.T) {
	qs := quarkgl.CreateScene(128, 64)
	surf := scene.NewQuarkSurface(qs, func(string) *quarkgl.Bitmap {
		return &quarkgl.Bitmap{W: 1, H: 1, Bits: []bool{true}}
	})
	p := scene.NewProjection(surf, nil)
	p.Init(geometry.Derive(linear.New(0, 1), geometry.DefaultExtent))

	assert.Equal(t, 46+2, qs.MeshCount())
	assert.Equal(t, 40, qs.SpriteCount())

	x := p.XInterceptHandle()
	assert.False(t, qs.MeshEnabled(int(x)/2))

	p.ApplyGeometry(geometry.Derive(linear.New(2, 1), geometry.DefaultExtent))
	assert.True(t, qs.MeshEnabled(int(x)/2))
	m, ok := qs.Mesh(int(x) / 2)
	require.True(t, ok)
	assert.InDelta(t, -0.5, m.Transform[12], 1e-6)
	assert.InDelta(t, scene.InterceptRadius, m.Transform[0], 1e-6)

	line, ok := qs.Mesh(int(p.LineHandle()) / 2)
	require.True(t, ok)
	assert.Equal(t, quarkgl.V3(-10, -19, 0), line.Vertices[0].Pos)
	assert.Equal(t, quarkgl.V3(10, 21, 0), line.Vertices[1].Pos)

	p.ShowPoints([]history.Row{{X: "1.00", Y: "3.00"}})
	assert.Equal(t, 46+3, qs.MeshCount())
	p.ClearPointMarkers()
	assert.Equal(t, 46+2, qs.MeshCount())
}

func TestInitKeepsOnlyPlacedLabels(t *testing.T) {
	surf := scenetest.New()
	surf.Limit = 2*21 + 3 + 1 + 2 + 10
	p := scene.NewProjection(surf, nil)
	p.Init(geometry.Derive(linear.New(2, -1), geometry.DefaultExtent))

	assert.Equal(t, 10, p.LabelCount())
	assert.Equal(t, 10, surf.Count(scenetest.KindLabel))
	assert.Equal(t, 2, surf.Count(scenetest.KindMarker))
}

func TestCapacity(t *testing.T) {
	meshes, sprites := scene.Capacity(geometry.DefaultExtent, 0)
	assert.Equal(t, 2*21+3+1+2, meshes)
	assert.Equal(t, 40, sprites)

	meshes, sprites = scene.Capacity(50, 128)
	assert.Equal(t, 2*101+3+1+2+128, meshes)
	assert.Equal(t, 200, sprites)

	qs := quarkgl.CreateScene(scene.Capacity(50, 0))
	p := scene.NewProjection(scene.NewQuarkSurface(qs, nil), nil)
	p.Init(geometry.Derive(linear.New(1, 0), 50))
	assert.Equal(t, 200, p.LabelCount())
	assert.Equal(t, 2*101+3+1+2, qs.MeshCount())
}
