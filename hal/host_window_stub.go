//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	Scale int
	TPS   int
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
