package controller

import (
	"linviz/internal/history"
	"linviz/internal/linear"
)

// Panel is the text projection of the controller state.
type Panel struct {
	A          string
	B          string
	Equation   string
	Trend      linear.Trend
	TrendLabel string
	YIntercept string
	XIntercept string
	// XInterceptShown mirrors the marker visibility in the scene.
	XInterceptShown bool
	ProbeResult     string
	Message         string
	Rows            []history.Row
	PointMarkers    int
}

// Panel renders the current state.
func (c *Controller) Panel() Panel {
	fn := c.state.Function
	return Panel{
		A:               linear.Fixed(fn.A, 1),
		B:               linear.Fixed(fn.B, 1),
		Equation:        fn.Equation(),
		Trend:           fn.Classify(),
		TrendLabel:      fn.TrendLabel(),
		YIntercept:      fn.YInterceptText(),
		XIntercept:      fn.XIntercept().String(),
		XInterceptShown: c.state.Snapshot.XIntercept.Visible,
		ProbeResult:     c.state.ProbeResult,
		Message:         c.state.Message,
		Rows:            c.state.History.Rows(),
		PointMarkers:    c.proj.PointMarkers(),
	}
}

// Lines renders the panel as plain text lines, table last.
func (p Panel) Lines(maxRows int) []string {
	out := []string{
		"a = " + p.A + "   b = " + p.B,
		p.Equation,
		p.TrendLabel,
		"y-intercept: " + p.YIntercept,
		"root: " + p.XIntercept,
	}
	if p.ProbeResult != "" {
		out = append(out, p.ProbeResult)
	}
	if p.Message != "" {
		out = append(out, p.Message)
	}
	out = append(out, "x        f(x)")
	for i, r := range p.Rows {
		if maxRows > 0 && i >= maxRows {
			break
		}
		out = append(out, padRight(r.X, 9)+r.Y)
	}
	return out
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
