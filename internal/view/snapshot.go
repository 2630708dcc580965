package view

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"linviz/quarkgl"
)

// Image renders one w×h frame with the panel overlay.
func (v *View) Image(w, h int, lines []string) *image.RGBA {
	t := quarkgl.NewRGBATarget(w, h)
	v.Frame(t, lines)
	return t.Img
}

// WritePNG encodes a frame as PNG.
func (v *View) WritePNG(out io.Writer, w, h int, lines []string) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("snapshot size %dx%d", w, h)
	}
	if err := png.Encode(out, v.Image(w, h, lines)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
