// Package history keeps the table of probed points.
//
// Records are snapshots: they are computed from the function at probe time and
// never follow later coefficient changes.
package history

import (
	"fmt"

	"linviz/internal/linear"
)

// Record is one probed point.
type Record struct {
	X, Y         float64
	XText, YText string
}

// Row is the text form of a record as shown in the table.
type Row struct {
	X, Y string
}

func (r Record) Row() Row { return Row{X: r.XText, Y: r.YText} }

// Display is the single-point readout for the record.
func (r Record) Display() string { return linear.ProbeText(r.X, r.Y) }

// History is an ordered, newest-first collection of records.
type History struct {
	recs []Record
}

func New() *History { return &History{} }

// Record evaluates fn at x and prepends the result.
func (h *History) Record(fn linear.Function, x float64) (Record, error) {
	if err := linear.Validate(x, 0); err != nil {
		return Record{}, fmt.Errorf("probe x: %w", linear.ErrInvalidInput)
	}
	y := fn.Evaluate(x)
	rec := Record{
		X:     x,
		Y:     y,
		XText: linear.Fixed(x, 2),
		YText: linear.Fixed(y, 2),
	}
	h.recs = append(h.recs, Record{})
	copy(h.recs[1:], h.recs)
	h.recs[0] = rec
	return rec, nil
}

// RecordText parses raw and records it. Nothing is stored on a parse failure.
func (h *History) RecordText(fn linear.Function, raw string) (Record, error) {
	x, err := linear.ParseValue(raw)
	if err != nil {
		return Record{}, fmt.Errorf("probe x: %w", err)
	}
	return h.Record(fn, x)
}

// All returns a copy of the records, newest first.
func (h *History) All() []Record {
	out := make([]Record, len(h.recs))
	copy(out, h.recs)
	return out
}

// Rows returns the table rows, newest first.
func (h *History) Rows() []Row {
	out := make([]Row, len(h.recs))
	for i, r := range h.recs {
		out[i] = r.Row()
	}
	return out
}

func (h *History) Len() int { return len(h.recs) }

// Clear empties the table.
func (h *History) Clear() { h.recs = h.recs[:0] }
