package linear

import (
	"math"
	"strconv"
)

// Fixed formats v with prec decimals, never producing "-0" for an exact zero.
func Fixed(v float64, prec int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Equation renders "f(x) = {a}x {+|-} {|b|}" with one decimal.
func (f Function) Equation() string {
	sign := "+"
	if f.B < 0 {
		sign = "-"
	}
	return "f(x) = " + Fixed(f.A, 1) + "x " + sign + " " + Fixed(math.Abs(f.B), 1)
}

// TrendLabel is the panel text for the function's classification.
func (f Function) TrendLabel() string {
	switch f.Classify() {
	case Increasing:
		return "Increasing (a > 0)"
	case Decreasing:
		return "Decreasing (a < 0)"
	default:
		return "Constant (a = 0)"
	}
}

// YInterceptText renders the y-intercept as "(0, b)".
func (f Function) YInterceptText() string {
	return "(0, " + Fixed(f.B, 1) + ")"
}

func (r Root) String() string {
	switch r.Kind {
	case RootInfinite:
		return "infinitely many roots"
	case RootNone:
		return "no root"
	default:
		return "x = " + Fixed(r.X, 2)
	}
}

// ProbeText renders an evaluation as "f(x) = y" with two decimals.
func ProbeText(x, y float64) string {
	return "f(" + Fixed(x, 2) + ") = " + Fixed(y, 2)
}
