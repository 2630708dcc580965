package controller

import (
	"fmt"
	"strings"

	"linviz/internal/linear"
)

// Intent is a discrete user action.
type Intent interface {
	Name() string
}

// SetA is a change of the a slider.
type SetA struct{ A float64 }

// SetB is a change of the b slider.
type SetB struct{ B float64 }

// SetCoefficients replaces both coefficients at once.
type SetCoefficients struct{ A, B float64 }

// Probe evaluates the function at the x typed by the user.
type Probe struct{ Raw string }

// LoadPreset loads a named (a, b) preset such as "example-1" or "reset".
type LoadPreset struct{ Preset string }

// VisualizePoints draws the table rows as scene markers.
type VisualizePoints struct{}

// ClearHistory empties the probe table.
type ClearHistory struct{}

func (SetA) Name() string            { return "set_a" }
func (SetB) Name() string            { return "set_b" }
func (SetCoefficients) Name() string { return "set_coefficients" }
func (Probe) Name() string           { return "probe" }
func (LoadPreset) Name() string      { return "load_preset" }
func (VisualizePoints) Name() string { return "visualize" }
func (ClearHistory) Name() string    { return "clear_history" }

// ParseIntent reads the one-line command form used by scripts:
//
//	a 1.5 | b -2 | ab 2 1 | probe 3 | preset reset | visualize | clear
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command: %w", linear.ErrInvalidInput)
	}
	arg := func(i int) (float64, error) {
		if i >= len(fields) {
			return 0, fmt.Errorf("%s: missing argument: %w", fields[0], linear.ErrInvalidInput)
		}
		return linear.ParseValue(fields[i])
	}
	switch strings.ToLower(fields[0]) {
	case "a":
		v, err := arg(1)
		if err != nil {
			return nil, err
		}
		return SetA{A: v}, nil
	case "b":
		v, err := arg(1)
		if err != nil {
			return nil, err
		}
		return SetB{B: v}, nil
	case "ab":
		a, err := arg(1)
		if err != nil {
			return nil, err
		}
		b, err := arg(2)
		if err != nil {
			return nil, err
		}
		return SetCoefficients{A: a, B: b}, nil
	case "probe", "x":
		return Probe{Raw: strings.Join(fields[1:], " ")}, nil
	case "preset", "load":
		if len(fields) < 2 {
			return nil, fmt.Errorf("preset: missing name: %w", linear.ErrInvalidInput)
		}
		return LoadPreset{Preset: fields[1]}, nil
	case "reset":
		return LoadPreset{Preset: "reset"}, nil
	case "visualize", "show":
		return VisualizePoints{}, nil
	case "clear":
		return ClearHistory{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q: %w", fields[0], linear.ErrInvalidInput)
	}
}
