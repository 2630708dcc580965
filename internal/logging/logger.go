// Package logging builds the application logger on top of a line sink.
package logging

import (
	"bytes"
	"io"
	"log/slog"
)

// LineSink receives whole log lines without the trailing newline.
// hal.Logger satisfies it.
type LineSink interface {
	WriteLineBytes(b []byte)
}

type sinkWriter struct {
	sink LineSink
}

// Write forwards each newline-terminated line to the sink.
func (w sinkWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		line, rest, _ := bytes.Cut(p, []byte{'\n'})
		if len(line) > 0 {
			w.sink.WriteLineBytes(line)
		}
		p = rest
	}
	return n, nil
}

// New creates a text logger writing to sink at the given level.
// The "error" key is shortened to "err".
func New(sink LineSink, level slog.Level) *slog.Logger {
	return ToWriter(sinkWriter{sink: sink}, level)
}

// ToWriter is New for a plain writer such as stderr or a log file.
func ToWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: shortenError,
	}))
}

func shortenError(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
