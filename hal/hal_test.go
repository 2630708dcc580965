package hal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		assert.Equal(t, c, [3]uint8{r, g, b})
	}
}

func TestFramebufferClearAndCopy(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	assert.Equal(t, 8, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 24)

	fb.ClearRGB(255, 0, 0)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	fb.copyRGBA(img)
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[:4])
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[len(img.Pix)-4:])

	require.NoError(t, fb.Present())
	assert.Equal(t, uint64(1), fb.frames())
}

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()
	t0 := time.Unix(100, 0)
	ht.advance(t0)
	ht.advance(t0.Add(500 * time.Microsecond))
	ht.advance(t0.Add(3 * time.Millisecond))

	var got []uint64
	for len(ht.Ticks()) > 0 {
		got = append(got, <-ht.Ticks())
	}
	assert.Equal(t, []uint64{1, 2, 3, 4}, got)
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	h := New(Options{Log: &buf})
	h.Logger().WriteLineString("one")
	h.Logger().WriteLineBytes([]byte("two"))
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, 480, h.Display().Framebuffer().Width())
}

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "pgup", KeyPageUp.String())
	assert.Equal(t, "unknown", KeyCode(999).String())
}

func TestRunHeadlessStopsOnQuit(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000}, Options{Width: 8, Height: 8})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestRunHeadlessTickLimit(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { steps++; return nil }
	}, HeadlessConfig{Hz: 1000, Ticks: 5}, Options{Width: 8, Height: 8})
	require.NoError(t, err)
	assert.Equal(t, 5, steps)
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000}, Options{Width: 8, Height: 8})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RunHeadless(ctx, func(h HAL) func() error { return nil }, HeadlessConfig{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
