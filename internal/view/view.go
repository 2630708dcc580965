// Package view renders the function scene and the text panel into a
// quarkgl target. The window, headless, snapshot and terminal frontends all
// share it.
package view

import (
	"math"

	"linviz/internal/glyph"
	"linviz/internal/scene"
	"linviz/quarkgl"
)

// MaxPoints is the point marker budget on top of the persistent scene.
// Points beyond it are skipped by the projection.
const MaxPoints = 128

const (
	cameraDistance = 10
	orbitStep      = 0.08
	zoomStep       = 0.5
)

var (
	clearColor = quarkgl.RGB(0x11, 0x11, 0x11)
	panelBG    = quarkgl.RGB(0x1E, 0x1E, 0x1E)
	panelFG    = quarkgl.Hex(uint32(scene.ColorLabel))
)

type View struct {
	s        *quarkgl.Scene
	surface  *scene.QuarkSurface
	r        *quarkgl.Renderer
	orbit    quarkgl.OrbitController
	panelOff bool
}

// New creates a view whose scene holds the grid, axes and tick labels for
// extent, and whose camera sits on +z looking at the origin.
func New(extent float64) *View {
	s := quarkgl.CreateScene(scene.Capacity(extent, MaxPoints))
	s.Camera.Type = quarkgl.CameraPerspective
	s.Camera.FOVYRad = 75 * math.Pi / 180
	s.Camera.Near = 0.1
	s.Camera.Far = 1000
	s.Light.Mode = quarkgl.LightAmbientDirectional
	s.Light.Ambient = 0.35
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-0.4, 0.9, 0.6))
	s.Light.DirAmount = 0.65

	v := &View{
		s:       s,
		surface: scene.NewQuarkSurface(s, glyph.Rasterize),
	}
	v.ResetCamera()
	return v
}

// Surface is the drawing surface the controller's projection writes to.
func (v *View) Surface() *scene.QuarkSurface { return v.surface }

// Camera returns the current camera.
func (v *View) Camera() quarkgl.Camera { return v.s.Camera }

func (v *View) ResetCamera() {
	v.orbit = quarkgl.OrbitController{
		Radius:    cameraDistance,
		MinRadius: 2,
		MaxRadius: 60,
		MaxPitch:  1.45,
	}
	v.orbit.Apply(&v.s.Camera)
}

// Orbit turns the camera by whole steps around the origin.
func (v *View) Orbit(yawSteps, pitchSteps int) {
	v.orbit.Rotate(quarkgl.Scalar(yawSteps)*orbitStep, quarkgl.Scalar(pitchSteps)*orbitStep)
	v.orbit.Apply(&v.s.Camera)
}

// Zoom moves the camera by whole steps; positive steps move away.
func (v *View) Zoom(steps int) {
	v.orbit.Zoom(quarkgl.Scalar(steps) * zoomStep)
	v.orbit.Apply(&v.s.Camera)
}

// ToggleWireframe switches marker spheres between wireframe and flat fill.
func (v *View) ToggleWireframe() {
	r := v.renderer(1, 1)
	if r.Mode == quarkgl.RenderWireframe {
		r.Mode = quarkgl.RenderSolidFlat
	} else {
		r.Mode = quarkgl.RenderWireframe
	}
}

// TogglePanel hides or shows the text overlay.
func (v *View) TogglePanel() { v.panelOff = !v.panelOff }

func (v *View) renderer(w, h int) *quarkgl.Renderer {
	if v.r == nil {
		v.r = quarkgl.NewRenderer(w, h, true)
		v.r.ClearColor = clearColor
		v.r.Mode = quarkgl.RenderSolidFlat
	}
	return v.r
}

// Render draws the scene into t. The projection aspect follows the target
// size.
func (v *View) Render(t quarkgl.Target) {
	w, h := t.Size()
	v.renderer(w, h).Render(t, v.s)
}

// DrawPanel writes lines over a filled box in the top-left corner.
func (v *View) DrawPanel(t quarkgl.Target, lines []string) {
	if v.panelOff || len(lines) == 0 {
		return
	}
	const pad = 4
	lh := glyph.LineHeight()
	bw := 0
	for _, l := range lines {
		bw = max(bw, glyph.Width(l))
	}
	fillRect(t, 0, 0, bw+2*pad, len(lines)*lh+2*pad, panelBG)
	for i, l := range lines {
		glyph.Draw(t, pad, pad+i*lh, l, panelFG)
	}
}

// Frame renders the scene and overlays as many panel lines as fit.
func (v *View) Frame(t quarkgl.Target, lines []string) {
	v.Render(t)
	_, h := t.Size()
	if n := h / max(glyph.LineHeight(), 1); len(lines) > n {
		lines = lines[:n]
	}
	v.DrawPanel(t, lines)
}

func fillRect(t quarkgl.Target, x0, y0, w, h int, c quarkgl.Color) {
	tw, th := t.Size()
	for y := max(y0, 0); y < min(y0+h, th); y++ {
		for x := max(x0, 0); x < min(x0+w, tw); x++ {
			t.SetPixel(x, y, c)
		}
	}
}
