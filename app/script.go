package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"linviz/internal/controller"
)

// ReadScript reads one command per line. Blank lines and lines starting with
// '#' are skipped.
func ReadScript(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// runScript applies the next script line. A line that does not parse is
// reported and skipped like any other rejected input.
func (a *App) runScript() error {
	if len(a.script) == 0 {
		if a.quitEnd {
			a.quit = true
		}
		return nil
	}
	line := a.script[0]
	a.script = a.script[1:]

	in, err := controller.ParseIntent(line)
	if err != nil {
		a.log.Warn("script line rejected", "line", line, "error", err)
		a.printf("> %s\nerror: %v\n", line, err)
		return nil
	}
	a.dispatch(in)
	a.printf("> %s\n", line)
	for _, l := range a.ctrl.Panel().Lines(a.maxRows) {
		a.printf("%s\n", l)
	}
	return nil
}

func (a *App) printf(format string, args ...any) {
	if a.out == nil {
		return
	}
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		a.log.Error("write panel", "error", err)
		a.out = nil
	}
}
