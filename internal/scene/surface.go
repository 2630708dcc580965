// Package scene owns the drawable objects that show a function.
//
// Projection applies geometry snapshots and probed-point rows to a Surface.
// The always-present primitives (decoration, line, intercept markers, tick
// labels) are created once and then mutated in place; point markers come and
// go with "visualize" passes and coefficient changes.
package scene

import (
	"linviz/internal/geometry"
	"linviz/quarkgl"
)

// Handle identifies a primitive on a Surface. Negative handles are invalid.
type Handle int

// NoHandle is returned when a surface has no room left.
const NoHandle Handle = -1

func (h Handle) Valid() bool { return h >= 0 }

// Color is a 0xRRGGBB value.
type Color uint32

// Palette colors.
const (
	ColorLine       Color = 0xFFFF00
	ColorYIntercept Color = 0x2563EB
	ColorXIntercept Color = 0xDC2626
	ColorPoint      Color = 0x9333EA
	ColorLabel      Color = 0xE6E6E6
	ColorGrid       Color = 0x444444
	ColorAxisX      Color = 0xFF0000
	ColorAxisY      Color = 0x00FF00
	ColorAxisZ      Color = 0x0000FF
)

// Marker radii.
const (
	InterceptRadius = 0.2
	PointRadius     = 0.15
)

// Surface is the drawing boundary.
type Surface interface {
	AddLine(seg geometry.Segment, c Color) Handle
	UpdateLine(h Handle, seg geometry.Segment)
	AddMarker(pos geometry.Vec3, radius float64, c Color) Handle
	MoveMarker(h Handle, pos geometry.Vec3)
	AddLabel(pos geometry.Vec3, text string, c Color) Handle
	SetVisible(h Handle, visible bool)
	Remove(h Handle)
}

// TextRasterizer renders a label string to a small mask.
type TextRasterizer func(text string) *quarkgl.Bitmap

// QuarkSurface implements Surface on a quarkgl scene.
//
// Handles encode both kinds of slot: meshes map to even handles, sprites to
// odd ones.
type QuarkSurface struct {
	scene  *quarkgl.Scene
	raster TextRasterizer
	sphere quarkgl.Mesh
}

// NewQuarkSurface wraps s. raster may be nil, in which case labels are not drawn.
func NewQuarkSurface(s *quarkgl.Scene, raster TextRasterizer) *QuarkSurface {
	return &QuarkSurface{
		scene:  s,
		raster: raster,
		sphere: quarkgl.NewSphereMesh(1, 12, 8),
	}
}

func (q *QuarkSurface) Scene() *quarkgl.Scene { return q.scene }

func meshHandle(id int) Handle {
	if id < 0 {
		return NoHandle
	}
	return Handle(id * 2)
}

func spriteHandle(id int) Handle {
	if id < 0 {
		return NoHandle
	}
	return Handle(id*2 + 1)
}

func (h Handle) split() (id int, sprite bool) { return int(h) / 2, h%2 == 1 }

func vec(v geometry.Vec3) quarkgl.Vec3 { return quarkgl.V3From64(v.X, v.Y, v.Z) }

func color(c Color) quarkgl.Color { return quarkgl.Hex(uint32(c)) }

func (q *QuarkSurface) AddLine(seg geometry.Segment, c Color) Handle {
	m := quarkgl.NewLineMesh([][2]quarkgl.Vec3{{vec(seg.From), vec(seg.To)}}, color(c))
	return meshHandle(q.scene.AddMesh(m))
}

func (q *QuarkSurface) UpdateLine(h Handle, seg geometry.Segment) {
	id, sprite := h.split()
	if !h.Valid() || sprite {
		return
	}
	q.scene.UpdateMeshVertex(id, 0, vec(seg.From))
	q.scene.UpdateMeshVertex(id, 1, vec(seg.To))
}

func markerTransform(pos geometry.Vec3, radius float64) quarkgl.Mat4 {
	r := quarkgl.Scalar(radius)
	return quarkgl.Mat4Mul(quarkgl.Mat4Translate(vec(pos)), quarkgl.Mat4Scale(quarkgl.V3(r, r, r)))
}

func (q *QuarkSurface) AddMarker(pos geometry.Vec3, radius float64, c Color) Handle {
	m := q.sphere
	m.Transform = markerTransform(pos, radius)
	m.Material = quarkgl.Material{BaseColor: color(c)}
	return meshHandle(q.scene.AddMesh(m))
}

func (q *QuarkSurface) MoveMarker(h Handle, pos geometry.Vec3) {
	id, sprite := h.split()
	if !h.Valid() || sprite {
		return
	}
	m, ok := q.scene.Mesh(id)
	if !ok {
		return
	}
	// The scale column of the current transform holds the radius.
	q.scene.UpdateMeshTransform(id, markerTransform(pos, float64(m.Transform[0])))
}

func (q *QuarkSurface) AddLabel(pos geometry.Vec3, text string, c Color) Handle {
	var mask *quarkgl.Bitmap
	if q.raster != nil {
		mask = q.raster(text)
	}
	return spriteHandle(q.scene.AddSprite(quarkgl.Sprite{Pos: vec(pos), Mask: mask, Color: color(c)}))
}

func (q *QuarkSurface) SetVisible(h Handle, visible bool) {
	if !h.Valid() {
		return
	}
	id, sprite := h.split()
	if sprite {
		q.scene.SetSpriteEnabled(id, visible)
		return
	}
	q.scene.SetMeshEnabled(id, visible)
}

func (q *QuarkSurface) Remove(h Handle) {
	if !h.Valid() {
		return
	}
	id, sprite := h.split()
	if sprite {
		q.scene.RemoveSprite(id)
		return
	}
	q.scene.RemoveMesh(id)
}
