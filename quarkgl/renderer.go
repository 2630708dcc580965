package quarkgl

import "math"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) ensureDepth(w, h int) {
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
	for i := range r.depthBuf {
		r.depthBuf[i] = math.MaxFloat32
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.ensureDepth(w, h)
	}

	vp := viewport{w: w, h: h}
	viewProj := Mat4Mul(s.Camera.Projection(Scalar(w)/Scalar(h)), s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		mvp := Mat4Mul(viewProj, m.Transform)
		switch m.Primitive {
		case Lines:
			r.renderLines(t, vp, mvp, m)
		default:
			r.renderTriangles(t, vp, mvp, m, s.Light)
		}
	})

	s.eachSprite(func(sp *Sprite) {
		if !sp.Enabled || sp.Mask == nil {
			return
		}
		p, ok := vp.project(viewProj, sp.Pos)
		if !ok {
			return
		}
		x0 := int(p.X+0.5) - sp.Mask.W/2
		y0 := int(p.Y+0.5) - sp.Mask.H/2
		for y := 0; y < sp.Mask.H; y++ {
			for x := 0; x < sp.Mask.W; x++ {
				if sp.Mask.At(x, y) {
					t.SetPixel(x0+x, y0+y, sp.Color)
				}
			}
		}
	})
}

type viewport struct {
	w, h int
}

// screenPoint is a projected vertex: pixel coordinates plus NDC depth.
type screenPoint struct {
	X, Y, Z float32
}

func (vp viewport) project(mvp Mat4, pos Vec3) (screenPoint, bool) {
	p := Mat4MulV4(mvp, Point4(pos))
	// Drop anything on or behind the eye plane.
	if p.W <= 1e-6 {
		return screenPoint{}, false
	}
	inv := 1 / p.W
	nx, ny, nz := p.X*inv, p.Y*inv, p.Z*inv
	return screenPoint{
		X: (nx*0.5 + 0.5) * float32(vp.w-1),
		Y: (1 - (ny*0.5 + 0.5)) * float32(vp.h-1),
		Z: nz,
	}, true
}

func (r *Renderer) renderTriangles(t Target, vp viewport, mvp Mat4, m *Mesh, light Light) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}
		v0, v1, v2 := m.Vertices[i0].Pos, m.Vertices[i1].Pos, m.Vertices[i2].Pos

		p0, ok0 := vp.project(mvp, v0)
		p1, ok1 := vp.project(mvp, v1)
		p2, ok2 := vp.project(mvp, v2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional && !m.Material.Unlit {
			base = base.MulScalar(lightIntensity(light, triangleNormal(v0, v1, v2)))
		}

		if r.Mode == RenderWireframe {
			r.drawLine(t, vp, p0, p1, base)
			r.drawLine(t, vp, p1, p2, base)
			r.drawLine(t, vp, p2, p0, base)
			continue
		}
		r.fillTriangle(t, vp, p0, p1, p2, base)
	}
}

func (r *Renderer) renderLines(t Target, vp viewport, mvp Mat4, m *Mesh) {
	c := m.Material.BaseColor
	for i := 0; i+1 < len(m.Indices); i += 2 {
		i0, i1 := int(m.Indices[i]), int(m.Indices[i+1])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) {
			continue
		}
		p0, ok0 := vp.project(mvp, m.Vertices[i0].Pos)
		p1, ok1 := vp.project(mvp, m.Vertices[i1].Pos)
		if !ok0 || !ok1 {
			continue
		}
		r.drawLine(t, vp, p0, p1, c)
	}
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

// plot writes a pixel if it passes the depth test. Ties go to the later
// primitive so lines drawn after coplanar decoration stay on top.
func (r *Renderer) plot(t Target, vp viewport, x, y int, z float32, c Color) {
	if x < 0 || y < 0 || x >= vp.w || y >= vp.h {
		return
	}
	if r.Depth && r.depthBuf != nil {
		idx := y*vp.w + x
		if idx >= len(r.depthBuf) || z > r.depthBuf[idx] {
			return
		}
		r.depthBuf[idx] = z
	}
	t.SetPixel(x, y, c)
}

// drawLine clips the segment to the viewport and walks it with a DDA,
// interpolating depth along the way.
func (r *Renderer) drawLine(t Target, vp viewport, a, b screenPoint, c Color) {
	x0, y0, x1, y1, u0, u1, ok := clipLineToRect(
		float64(a.X), float64(a.Y), float64(b.X), float64(b.Y),
		0, 0, float64(vp.w-1), float64(vp.h-1),
	)
	if !ok {
		return
	}
	dz := b.Z - a.Z
	z0 := a.Z + dz*float32(u0)
	z1 := a.Z + dz*float32(u1)

	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)) + 0.5)
	if steps == 0 {
		r.plot(t, vp, int(x0+0.5), int(y0+0.5), z0, c)
		return
	}
	sx := (x1 - x0) / float64(steps)
	sy := (y1 - y0) / float64(steps)
	sz := (z1 - z0) / float32(steps)
	x, y, z := x0, y0, z0
	for i := 0; i <= steps; i++ {
		r.plot(t, vp, int(x+0.5), int(y+0.5), z, c)
		x += sx
		y += sy
		z += sz
	}
}

// clipLineToRect is Liang-Barsky clipping. u0/u1 are the parameters of the
// clipped endpoints along the original segment.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1, u0, u1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u0, u1 = 0, 1

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, 0, 0, false
			}
			continue
		}
		u := q[i] / p[i]
		if p[i] < 0 {
			if u > u1 {
				return 0, 0, 0, 0, 0, 0, false
			}
			if u > u0 {
				u0 = u
			}
		} else {
			if u < u0 {
				return 0, 0, 0, 0, 0, 0, false
			}
			if u < u1 {
				u1 = u
			}
		}
	}
	return x0 + u0*dx, y0 + u0*dy, x0 + u1*dx, y0 + u1*dy, u0, u1, true
}

func (r *Renderer) fillTriangle(t Target, vp viewport, a, b, c screenPoint, col Color) {
	x0, y0 := int(a.X+0.5), int(a.Y+0.5)
	x1, y1 := int(b.X+0.5), int(b.Y+0.5)
	x2, y2 := int(c.X+0.5), int(c.Y+0.5)

	minX := max(min(x0, x1, x2), 0)
	maxX := min(max(x0, x1, x2), vp.w-1)
	minY := max(min(y0, y1, y2), 0)
	maxY := min(max(y0, y1, y2), vp.h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	// Accept both windings; markers are closed meshes seen from any side.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if w0*sign < 0 || w1*sign < 0 || w2*sign < 0 {
				continue
			}
			z := (float32(w0)*a.Z + float32(w1)*b.Z + float32(w2)*c.Z) * invArea
			r.plot(t, vp, x, y, z, col)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}
