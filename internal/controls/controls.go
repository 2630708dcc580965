// Package controls implements the numeric inputs that feed the controller:
// range sliders for the coefficients and a free-text field for probe x.
package controls

import (
	"math"
	"strings"
	"unicode"
)

// Slider is a bounded value that moves in fixed steps.
type Slider struct {
	Min, Max, Step float64
	Value          float64
}

// Set snaps v to the step grid and clamps it to [Min, Max].
func (s *Slider) Set(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// Trim float noise such as 0.30000000000000004.
		v = math.Round(v*1e9) / 1e9
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
	if s.Value == 0 {
		s.Value = 0
	}
	return s.Value
}

// Nudge moves the slider by n steps and returns the new value.
func (s *Slider) Nudge(n int) float64 {
	return s.Set(s.Value + float64(n)*s.Step)
}

// Field is a single-line text input that accepts numeral characters.
type Field struct {
	runes []rune
	max   int
}

func NewField(max int) *Field { return &Field{max: max} }

// NumeralRune reports whether r can appear in a decimal numeral.
func NumeralRune(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune(".-+eE", r)
}

// Insert appends r if it can appear in a numeral.
func (f *Field) Insert(r rune) bool {
	if !NumeralRune(r) {
		return false
	}
	if f.max > 0 && len(f.runes) >= f.max {
		return false
	}
	f.runes = append(f.runes, r)
	return true
}

func (f *Field) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

func (f *Field) Clear() { f.runes = f.runes[:0] }

func (f *Field) SetText(s string) {
	f.runes = append(f.runes[:0], []rune(s)...)
}

func (f *Field) Text() string { return string(f.runes) }
