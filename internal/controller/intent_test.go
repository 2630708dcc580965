package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"a 1.5", SetA{A: 1.5}},
		{"B -2", SetB{B: -2}},
		{"ab 2 1", SetCoefficients{A: 2, B: 1}},
		{"probe 3", Probe{Raw: "3"}},
		{"probe", Probe{Raw: ""}},
		{"preset example-1", LoadPreset{Preset: "example-1"}},
		{"reset", LoadPreset{Preset: "reset"}},
		{"visualize", VisualizePoints{}},
		{"clear", ClearHistory{}},
	}
	for _, tt := range tests {
		got, err := ParseIntent(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseIntentErrors(t *testing.T) {
	for _, line := range []string{"", "a", "a x", "ab 1", "preset", "jump 3"} {
		_, err := ParseIntent(line)
		assert.ErrorIs(t, err, ErrInvalidInput, line)
	}
}

func TestIntentNames(t *testing.T) {
	want := map[string]Intent{
		"set_a":            SetA{A: 1},
		"set_b":            SetB{B: 1},
		"set_coefficients": SetCoefficients{A: 1, B: 2},
		"probe":            Probe{Raw: "3"},
		"load_preset":      LoadPreset{Preset: "example-1"},
		"visualize":        VisualizePoints{},
		"clear_history":    ClearHistory{},
	}
	for name, in := range want {
		assert.Equal(t, name, in.Name())
	}
	assert.Equal(t, "example-1", LoadPreset{Preset: "example-1"}.Preset)
}
