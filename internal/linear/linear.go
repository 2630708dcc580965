// Package linear models first-degree functions f(x) = a·x + b.
package linear

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput reports a numeral that is not a finite real number.
var ErrInvalidInput = errors.New("invalid input")

// Trend is the monotonic behavior of a function.
type Trend uint8

const (
	Constant Trend = iota
	Increasing
	Decreasing
)

func (t Trend) String() string {
	switch t {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "constant"
	}
}

// RootKind distinguishes the three shapes an affine zero set can take.
type RootKind uint8

const (
	// RootSingle is the a != 0 case: exactly one root at X.
	RootSingle RootKind = iota
	// RootInfinite is a = b = 0: the function is the x axis.
	RootInfinite
	// RootNone is a = 0, b != 0: parallel to the x axis.
	RootNone
)

// Root is the result of an x-intercept query.
type Root struct {
	Kind RootKind
	X    float64
}

// Function holds the coefficients of f(x) = A·x + B.
type Function struct {
	A float64
	B float64
}

func New(a, b float64) Function { return Function{A: a, B: b} }

// SetCoefficients replaces both coefficients unconditionally.
func (f *Function) SetCoefficients(a, b float64) {
	f.A = a
	f.B = b
}

func (f Function) Evaluate(x float64) float64 { return f.A*x + f.B }

func (f Function) Classify() Trend {
	switch {
	case f.A > 0:
		return Increasing
	case f.A < 0:
		return Decreasing
	default:
		return Constant
	}
}

func (f Function) YIntercept() float64 { return f.B }

func (f Function) XIntercept() Root {
	if f.A == 0 {
		if f.B == 0 {
			return Root{Kind: RootInfinite}
		}
		return Root{Kind: RootNone}
	}
	// Adding zero folds -0 into +0 so b = 0 reports x = 0.
	return Root{Kind: RootSingle, X: -f.B/f.A + 0}
}

// Validate rejects non-finite coefficients.
func Validate(a, b float64) error {
	if !finite(a) {
		return fmt.Errorf("coefficient a=%v: %w", a, ErrInvalidInput)
	}
	if !finite(b) {
		return fmt.Errorf("coefficient b=%v: %w", b, ErrInvalidInput)
	}
	return nil
}

// ParseValue parses a user-entered numeral.
//
// Surrounding whitespace is ignored. Empty strings, trailing garbage, NaN and
// infinities are rejected with ErrInvalidInput.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty value: %w", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidInput)
	}
	if !finite(v) {
		return 0, fmt.Errorf("value %q is not finite: %w", s, ErrInvalidInput)
	}
	return v, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
