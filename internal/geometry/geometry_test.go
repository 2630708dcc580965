package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"linviz/internal/linear"
)

func TestDeriveLine(t *testing.T) {
	s := Derive(linear.New(2, -1), DefaultExtent)
	assert.Equal(t, Segment{From: Vec3{X: -10, Y: -21}, To: Vec3{X: 10, Y: 19}}, s.Line)
	assert.Equal(t, Marker{Pos: Vec3{Y: -1}, Visible: true}, s.YIntercept)
	assert.Equal(t, Marker{Pos: Vec3{X: 0.5}, Visible: true}, s.XIntercept)
}

func TestDeriveDegenerateXIntercept(t *testing.T) {
	tests := []struct {
		name string
		fn   linear.Function
	}{
		{"a=0 b=0", linear.New(0, 0)},
		{"a=0 b!=0", linear.New(0, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Derive(tt.fn, DefaultExtent)
			assert.False(t, s.XIntercept.Visible)
			assert.True(t, s.YIntercept.Visible)
			assert.Equal(t, tt.fn.B, s.Line.From.Y)
			assert.Equal(t, tt.fn.B, s.Line.To.Y)
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fn := linear.New(
			rapid.Float64Range(-50, 50).Draw(t, "a"),
			rapid.Float64Range(-50, 50).Draw(t, "b"),
		)
		extent := float64(rapid.IntRange(0, 30).Draw(t, "extent"))
		first := Derive(fn, extent)
		second := Derive(fn, extent)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("derive not deterministic (-first +second):\n%s", diff)
		}
	})
}

func TestTickLabels(t *testing.T) {
	labels := TickLabels(DefaultExtent)
	assert.Len(t, labels, 40)
	for _, l := range labels {
		assert.NotEqual(t, "0", l.Text)
	}
	want := []Label{
		{Text: "-2", Pos: Vec3{X: -2, Y: -LabelOffset}},
		{Text: "-2", Pos: Vec3{X: -LabelOffset, Y: -2}},
		{Text: "-1", Pos: Vec3{X: -1, Y: -LabelOffset}},
		{Text: "-1", Pos: Vec3{X: -LabelOffset, Y: -1}},
		{Text: "1", Pos: Vec3{X: 1, Y: -LabelOffset}},
		{Text: "1", Pos: Vec3{X: -LabelOffset, Y: 1}},
		{Text: "2", Pos: Vec3{X: 2, Y: -LabelOffset}},
		{Text: "2", Pos: Vec3{X: -LabelOffset, Y: 2}},
	}
	if diff := cmp.Diff(want, TickLabels(2.5)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, TickLabels(0))
}
