package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linviz/quarkgl"
)

func TestRasterizeCropsToInk(t *testing.T) {
	b := Rasterize("-10")
	assert.Positive(t, b.W)
	assert.Positive(t, b.H)
	assert.Len(t, b.Bits, b.W*b.H)

	var top, left bool
	for x := 0; x < b.W; x++ {
		top = top || b.At(x, 0)
	}
	for y := 0; y < b.H; y++ {
		left = left || b.At(0, y)
	}
	assert.True(t, top, "first row should carry ink")
	assert.True(t, left, "first column should carry ink")
}

func TestRasterizeWiderForLongerText(t *testing.T) {
	assert.Greater(t, Rasterize("-10").W, Rasterize("1").W)
	assert.Greater(t, Width("-10"), Width("1"))
}

func TestRasterizeEmpty(t *testing.T) {
	b := Rasterize("")
	assert.Zero(t, b.W)
	assert.False(t, b.At(0, 0))
}

func TestDrawTouchesTarget(t *testing.T) {
	target := quarkgl.NewRGBATarget(80, 20)
	target.Clear(quarkgl.RGB(0, 0, 0))
	Draw(target, 2, 2, "f(x)", quarkgl.RGB(0xFF, 0xFF, 0xFF))

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if target.Img.RGBAAt(x, y).R == 0xFF {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}
