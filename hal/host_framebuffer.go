package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	presented uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present counts frames; the window picks the buffer up on its next Draw.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presented++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// copyRGBA expands the RGB565 buffer into img, which must match the
// framebuffer size.
func (f *hostFramebuffer) copyRGBA(img *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.buf
	dst := img.Pix
	for y := 0; y < f.height; y++ {
		srow := y * f.stride
		drow := y * img.Stride
		for x := 0; x < f.width; x++ {
			i := srow + x*2
			r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := drow + x*4
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
}
