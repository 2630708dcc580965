// Package app is the visualizer as the HAL sees it: a step function that
// drains input, dispatches intents and presents a frame when something
// changed.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"linviz/hal"
	"linviz/internal/config"
	"linviz/internal/controller"
	"linviz/internal/controls"
	"linviz/internal/logging"
	"linviz/internal/metrics"
	"linviz/internal/view"
	"linviz/quarkgl"
)

// Config wires an App.
type Config struct {
	Settings config.Config
	LogLevel slog.Level
	Metrics  *metrics.Metrics

	// Script holds command lines run one per step, see controller.ParseIntent.
	Script []string
	// QuitAfterScript ends the run once the script is exhausted.
	QuitAfterScript bool
	// Out receives the panel after each script line; nil disables it.
	Out io.Writer
	// MaxRows limits the table rows on screen; 0 uses 8.
	MaxRows int
}

type focus uint8

const (
	focusControls focus = iota
	focusField
)

type App struct {
	h   hal.HAL
	fb  hal.Framebuffer
	log *slog.Logger

	ctrl  *controller.Controller
	view  *view.View
	a, b  controls.Slider
	field *controls.Field
	focus focus

	presetKeys map[rune]string
	held       map[hal.KeyCode]uint64
	now        uint64

	script  []string
	quitEnd bool
	out     io.Writer
	maxRows int

	dirty bool
	quit  bool
}

// New builds the scene and seeds the controller.
func New(h hal.HAL, cfg Config) (*App, error) {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 8
	}
	s := cfg.Settings
	log := logging.New(h.Logger(), cfg.LogLevel)

	a := &App{
		h:          h,
		log:        log,
		view:       view.New(s.Extent),
		a:          controls.Slider{Min: s.Sliders.A.Min, Max: s.Sliders.A.Max, Step: s.Sliders.A.Step},
		b:          controls.Slider{Min: s.Sliders.B.Min, Max: s.Sliders.B.Max, Step: s.Sliders.B.Step},
		field:      controls.NewField(16),
		presetKeys: make(map[rune]string),
		held:       make(map[hal.KeyCode]uint64),
		script:     cfg.Script,
		quitEnd:    cfg.QuitAfterScript,
		out:        cfg.Out,
		maxRows:    cfg.MaxRows,
		dirty:      true,
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if a.fb != nil && a.fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("unsupported pixel format %d", a.fb.Format())
	}
	opts := controller.OptionsFromConfig(s)
	opts.Log = log
	opts.Metrics = cfg.Metrics
	a.ctrl = controller.New(a.view.Surface(), opts)
	if err := a.ctrl.Init(); err != nil {
		return nil, fmt.Errorf("init controller: %w", err)
	}
	for _, p := range a.ctrl.Presets() {
		if p.Key != "" {
			a.presetKeys[[]rune(p.Key)[0]] = p.Name
		}
	}
	a.syncSliders()
	log.Info("visualizer ready", "a", s.Function.A, "b", s.Function.B, "extent", s.Extent)
	return a, nil
}

// Factory adapts New to the HAL run loops. An init error is returned from
// the first step.
func Factory(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}
}

func (a *App) Controller() *controller.Controller { return a.ctrl }

// Step runs one frame.
func (a *App) Step() error {
	return a.guard(func() error {
		a.drainTicks()
		a.drainKeys()
		a.repeatHeld()
		if err := a.runScript(); err != nil {
			return err
		}
		if a.dirty {
			a.present()
		}
		if a.quit {
			return hal.ErrQuit
		}
		return nil
	})
}

func (a *App) drainTicks() {
	t := a.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case seq := <-ch:
			a.now = seq
		default:
			return
		}
	}
}

func (a *App) drainKeys() {
	in := a.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			a.handleKey(ev)
		default:
			return
		}
	}
}

// dispatch forwards an intent and re-reads the coefficients into the sliders,
// so the next nudge starts from the function's current value. Rejections are
// already logged and shown in the panel, so the loop keeps running.
func (a *App) dispatch(in controller.Intent) bool {
	err := a.ctrl.Dispatch(in)
	a.syncSliders()
	a.dirty = true
	return err == nil
}

func (a *App) syncSliders() {
	fn := a.ctrl.Function()
	a.a.Value = fn.A
	a.b.Value = fn.B
}

func (a *App) nudgeA(n int) { a.dispatch(controller.SetA{A: a.a.Nudge(n)}) }

func (a *App) nudgeB(n int) { a.dispatch(controller.SetB{B: a.b.Nudge(n)}) }

func (a *App) probe() {
	if a.dispatch(controller.Probe{Raw: a.field.Text()}) {
		a.field.Clear()
	}
}

func (a *App) lines() []string {
	lines := a.ctrl.Panel().Lines(a.maxRows)
	cursor := ""
	if a.focus == focusField {
		cursor = "_"
	}
	return append(lines, "x: "+a.field.Text()+cursor)
}

func (a *App) present() {
	a.dirty = false
	if a.fb == nil {
		return
	}
	t := &quarkgl.RGB565Target{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
	}
	a.view.Frame(t, a.lines())
	_ = a.fb.Present()
}
