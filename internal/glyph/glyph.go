// Package glyph turns short strings into pixels with tinyfont.
//
// Rasterize produces a coverage mask used for 3D tick-label sprites; Draw
// writes text straight onto a render target for panel overlays.
package glyph

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"linviz/quarkgl"
)

// Font is the bitmap font used for labels and panels.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// LineHeight is the vertical advance of Font in pixels.
func LineHeight() int { return int(Font.GetYAdvance()) }

// Width returns the advance width of s in pixels.
func Width(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

// collector records every pixel tinyfont touches, including negative ones.
type collector struct {
	pts [][2]int16
}

var _ drivers.Displayer = (*collector)(nil)

func (c *collector) Size() (x, y int16) { return math.MaxInt16, math.MaxInt16 }

func (c *collector) SetPixel(x, y int16, _ color.RGBA) {
	c.pts = append(c.pts, [2]int16{x, y})
}

func (c *collector) Display() error { return nil }

// Rasterize renders s into a tightly cropped mask.
func Rasterize(s string) *quarkgl.Bitmap {
	var c collector
	tinyfont.WriteLine(&c, Font, 0, int16(LineHeight()), s, color.RGBA{A: 0xFF})
	if len(c.pts) == 0 {
		return &quarkgl.Bitmap{}
	}
	minX, minY := c.pts[0][0], c.pts[0][1]
	maxX, maxY := minX, minY
	for _, p := range c.pts[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	w := int(maxX-minX) + 1
	h := int(maxY-minY) + 1
	b := &quarkgl.Bitmap{W: w, H: h, Bits: make([]bool, w*h)}
	for _, p := range c.pts {
		b.Bits[int(p[1]-minY)*w+int(p[0]-minX)] = true
	}
	return b
}

// targetDisplay adapts a quarkgl.Target to drivers.Displayer.
type targetDisplay struct {
	t quarkgl.Target
}

var _ drivers.Displayer = targetDisplay{}

func (d targetDisplay) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), quarkgl.RGB(c.R, c.G, c.B))
}

func (d targetDisplay) Display() error { return nil }

// Draw writes s with its top-left corner at (x, y).
func Draw(t quarkgl.Target, x, y int, s string, c quarkgl.Color) {
	if t == nil || s == "" {
		return
	}
	baseline := y + LineHeight()*3/4
	tinyfont.WriteLine(targetDisplay{t: t}, Font, int16(x), int16(baseline), s,
		color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}
