package linear

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEvaluate(t *testing.T) {
	f := New(2, 1)
	assert.Equal(t, 7.0, f.Evaluate(3))
	assert.Equal(t, 1.0, f.Evaluate(0))
	assert.Equal(t, -1.0, f.Evaluate(-1))
}

func TestClassifyBySignOfA(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(t, "a")
		b := rapid.Float64Range(-1e6, 1e6).Draw(t, "b")
		got := New(a, b).Classify()
		switch {
		case a > 0 && got != Increasing:
			t.Fatalf("a=%v: got %v, want increasing", a, got)
		case a < 0 && got != Decreasing:
			t.Fatalf("a=%v: got %v, want decreasing", a, got)
		case a == 0 && got != Constant:
			t.Fatalf("a=0: got %v, want constant", got)
		}
	})
	assert.Equal(t, Constant, New(0, 5).Classify())
}

func TestXIntercept(t *testing.T) {
	tests := []struct {
		name string
		f    Function
		want Root
		text string
	}{
		{"single", New(2, 1), Root{Kind: RootSingle, X: -0.5}, "x = -0.50"},
		{"through origin", New(3, 0), Root{Kind: RootSingle, X: 0}, "x = 0.00"},
		{"axis", New(0, 0), Root{Kind: RootInfinite}, "infinitely many roots"},
		{"parallel", New(0, -3), Root{Kind: RootNone}, "no root"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.XIntercept()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestPanelText(t *testing.T) {
	f := New(2, 1)
	assert.Equal(t, "(0, 1.0)", f.YInterceptText())
	assert.Equal(t, "f(x) = 2.0x + 1.0", f.Equation())
	assert.Equal(t, "Increasing (a > 0)", f.TrendLabel())

	g := New(-2, -1)
	assert.Equal(t, "f(x) = -2.0x - 1.0", g.Equation())
	assert.Equal(t, "Decreasing (a < 0)", g.TrendLabel())
	assert.Equal(t, "(0, -1.0)", g.YInterceptText())

	assert.Equal(t, "Constant (a = 0)", New(0, 0).TrendLabel())
	assert.Equal(t, "f(3.00) = 7.00", ProbeText(3, 7))
	assert.Equal(t, "0.0", Fixed(math.Copysign(0, -1), 1))
}

func TestParseValue(t *testing.T) {
	for _, raw := range []string{"3", " -2.5 ", "1e2", "0"} {
		_, err := ParseValue(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "  ", "abc", "3abc", "NaN", "Inf", "-inf"} {
		_, err := ParseValue(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrInvalidInput), raw)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(2, -1))
	assert.ErrorIs(t, Validate(math.NaN(), 0), ErrInvalidInput)
	assert.ErrorIs(t, Validate(0, math.Inf(1)), ErrInvalidInput)
}
