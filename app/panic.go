package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"linviz/internal/glyph"
	"linviz/quarkgl"
)

// guard runs fn and turns a panic into an error after logging the stack and
// painting it on the framebuffer.
func (a *App) guard(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		a.log.Error("panic", "panic", v)
		if l := a.h.Logger(); l != nil {
			for _, line := range strings.Split(string(stack), "\n") {
				if line != "" {
					l.WriteLineString(line)
				}
			}
		}
		a.showPanic(v, stack)
		err = fmt.Errorf("panic: %v", v)
	}()
	return fn()
}

func (a *App) showPanic(v any, stack []byte) {
	if a.fb == nil {
		return
	}
	t := &quarkgl.RGB565Target{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
	}
	t.Clear(quarkgl.RGB(0xFF, 0xFF, 0xFF))

	lines := []string{"linviz panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
			}
		}
	}

	fg := quarkgl.RGB(0, 0, 0)
	lh := glyph.LineHeight()
	cols := max(t.W/max(glyph.Width("0"), 1), 1)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > t.H {
				_ = a.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			glyph.Draw(t, 0, y, chunk, fg)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.fb.Present()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
