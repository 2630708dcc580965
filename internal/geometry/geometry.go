// Package geometry derives the scene layout of an affine function.
package geometry

import (
	"math"
	"strconv"

	"linviz/internal/linear"
)

// DefaultExtent is the half-width of the plotted domain.
const DefaultExtent = 10

// LabelOffset is the distance between an axis and its tick labels.
const LabelOffset = 0.3

type Vec3 struct {
	X, Y, Z float64
}

type Segment struct {
	From, To Vec3
}

type Marker struct {
	Pos     Vec3
	Visible bool
}

// Label is a tick label on one of the in-plane axes.
type Label struct {
	Text string
	Pos  Vec3
}

// Snapshot is everything the scene needs to show one function.
type Snapshot struct {
	Extent     float64
	Line       Segment
	YIntercept Marker
	XIntercept Marker
	Labels     []Label
}

// Derive computes the snapshot for fn over [-extent, extent].
func Derive(fn linear.Function, extent float64) Snapshot {
	x1, x2 := -extent, extent
	s := Snapshot{
		Extent: extent,
		Line: Segment{
			From: Vec3{X: x1, Y: fn.Evaluate(x1)},
			To:   Vec3{X: x2, Y: fn.Evaluate(x2)},
		},
		YIntercept: Marker{Pos: Vec3{Y: fn.YIntercept()}, Visible: true},
		Labels:     TickLabels(extent),
	}
	if root := fn.XIntercept(); root.Kind == linear.RootSingle {
		s.XIntercept = Marker{Pos: Vec3{X: root.X}, Visible: true}
	}
	return s
}

// TickLabels lists one label per non-zero integer in [-extent, extent] on
// each axis: x labels below the x axis, y labels left of the y axis.
func TickLabels(extent float64) []Label {
	lo := int(math.Ceil(-extent))
	hi := int(math.Floor(extent))
	if hi < lo {
		return nil
	}
	out := make([]Label, 0, 2*(hi-lo+1))
	for i := lo; i <= hi; i++ {
		if i == 0 {
			continue
		}
		text := strconv.Itoa(i)
		v := float64(i)
		out = append(out,
			Label{Text: text, Pos: Vec3{X: v, Y: -LabelOffset}},
			Label{Text: text, Pos: Vec3{X: -LabelOffset, Y: v}},
		)
	}
	return out
}
