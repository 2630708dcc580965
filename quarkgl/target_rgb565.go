package quarkgl

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and its row stride.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := RGB565(c)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			t.put(row+x*2, p)
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	t.put(y*t.Stride+x*2, RGB565(c))
}

func (t *RGB565Target) put(off int, p uint16) {
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// RGB565 packs a color as rrrrrggggggbbbbb.
func RGB565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
