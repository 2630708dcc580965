// Package hal is the only contact point between the visualizer and the host:
// a log line sink, an RGB565 framebuffer, keyboard events and a tick stream.
//
// RunWindow drives an app from an ebiten window; RunHeadless drives the same
// app from a ticker with no window at all.
package hal

import "errors"

// ErrQuit is returned by an app step to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies a non-text key.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown
// and a non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// Time provides a millisecond tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// HAL bundles the host devices an app may use.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
