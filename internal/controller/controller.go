// Package controller keeps the function, the probe table and the scene in
// step.
//
// Every user action arrives as an Intent. Dispatch mutates the explicit State,
// recomputes the geometry when the function changed, and pushes the result to
// the scene projection. The text panel is derived from State on demand.
//
// The controller is single-threaded: all calls must come from the loop that
// owns it.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"linviz/internal/config"
	"linviz/internal/geometry"
	"linviz/internal/history"
	"linviz/internal/linear"
	"linviz/internal/logging"
	"linviz/internal/metrics"
	"linviz/internal/scene"
)

// ErrInvalidInput is returned for any value that is not an acceptable number.
var ErrInvalidInput = linear.ErrInvalidInput

// InvalidProbeMessage is shown when the probe field does not hold a number.
const InvalidProbeMessage = "Please enter a valid number for x."

// Options configures a Controller.
type Options struct {
	Extent    float64
	Defaults  linear.Function
	RangeA    config.Range
	RangeB    config.Range
	Presets   []config.Preset
	SeedProbe string

	Log     *slog.Logger
	Metrics *metrics.Metrics
}

// OptionsFromConfig maps settings onto controller options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Extent:    cfg.Extent,
		Defaults:  linear.New(cfg.Function.A, cfg.Function.B),
		RangeA:    cfg.Sliders.A,
		RangeB:    cfg.Sliders.B,
		Presets:   cfg.Presets,
		SeedProbe: cfg.SeedProbe,
	}
}

// State is the whole mutable model.
type State struct {
	Function linear.Function
	History  *history.History
	Snapshot geometry.Snapshot

	// ProbeResult is the readout of the last successful probe.
	ProbeResult string
	// Message is feedback for the last intent; empty when it succeeded quietly.
	Message string
}

type Controller struct {
	opts  Options
	log   *slog.Logger
	state State
	proj  *scene.Projection
}

func New(surface scene.Surface, opts Options) *Controller {
	if opts.Extent <= 0 {
		opts.Extent = geometry.DefaultExtent
	}
	log := opts.Log
	if log == nil {
		log = logging.NewNop()
	}
	return &Controller{
		opts: opts,
		log:  log,
		state: State{
			Function: opts.Defaults,
			History:  history.New(),
		},
		proj: scene.NewProjection(surface, log),
	}
}

// Init applies the defaults, builds the scene and seeds the table with one
// probe.
func (c *Controller) Init() error {
	c.state.Function = c.opts.Defaults
	c.state.Snapshot = geometry.Derive(c.state.Function, c.opts.Extent)
	c.proj.Init(c.state.Snapshot)
	if c.opts.SeedProbe == "" {
		c.observe()
		return nil
	}
	return c.Dispatch(Probe{Raw: c.opts.SeedProbe})
}

// Dispatch applies one intent. Recognized failures leave the state as it was,
// set a panel message and return an error wrapping ErrInvalidInput.
func (c *Controller) Dispatch(in Intent) error {
	c.opts.Metrics.Intent(in.Name())
	c.log.Debug("intent", "intent", in.Name())

	err := c.apply(in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.opts.Metrics.InvalidInput()
		}
		c.log.Warn("intent rejected", "intent", in.Name(), "error", err)
	}
	c.observe()
	return err
}

func (c *Controller) apply(in Intent) error {
	switch in := in.(type) {
	case SetA:
		return c.setCoefficients(in.A, c.state.Function.B)
	case SetB:
		return c.setCoefficients(c.state.Function.A, in.B)
	case SetCoefficients:
		return c.setCoefficients(in.A, in.B)
	case LoadPreset:
		p, ok := c.preset(in.Preset)
		if !ok {
			c.state.Message = fmt.Sprintf("Unknown preset %q.", in.Preset)
			return fmt.Errorf("preset %q: %w", in.Preset, ErrInvalidInput)
		}
		return c.setCoefficients(p.A, p.B)
	case Probe:
		return c.probe(in.Raw)
	case VisualizePoints:
		shown, skipped := c.proj.ShowPoints(c.state.History.Rows())
		c.state.Message = fmt.Sprintf("Showing %d point(s).", shown)
		if skipped > 0 {
			c.state.Message += fmt.Sprintf(" Skipped %d.", skipped)
		}
		return nil
	case ClearHistory:
		c.state.History.Clear()
		c.state.Message = ""
		return nil
	default:
		return fmt.Errorf("unsupported intent %T", in)
	}
}

func (c *Controller) preset(name string) (config.Preset, bool) {
	for _, p := range c.opts.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return config.Preset{}, false
}

func inRange(r config.Range, v float64) bool {
	if r.Max <= r.Min {
		return true
	}
	return r.Contains(v)
}

// setCoefficients is the shared path for sliders and presets.
func (c *Controller) setCoefficients(a, b float64) error {
	if err := linear.Validate(a, b); err != nil {
		c.state.Message = "Coefficients must be finite numbers."
		return err
	}
	if !inRange(c.opts.RangeA, a) || !inRange(c.opts.RangeB, b) {
		c.state.Message = "Coefficients out of range."
		return fmt.Errorf("coefficients (%v, %v) out of range: %w", a, b, ErrInvalidInput)
	}
	c.state.Function.SetCoefficients(a, b)
	c.state.Snapshot = geometry.Derive(c.state.Function, c.opts.Extent)
	c.proj.ApplyGeometry(c.state.Snapshot)
	// A new function invalidates the drawn points; the table stays.
	c.proj.ClearPointMarkers()
	c.state.Message = ""
	return nil
}

func (c *Controller) probe(raw string) error {
	rec, err := c.state.History.RecordText(c.state.Function, raw)
	if err != nil {
		c.state.Message = InvalidProbeMessage
		return err
	}
	c.state.ProbeResult = rec.Display()
	c.state.Message = ""
	c.log.Info("probe", "x", rec.X, "y", rec.Y)
	return nil
}

func (c *Controller) observe() {
	c.opts.Metrics.Observe(c.state.History.Len(), c.proj.PointMarkers())
}

// Function returns the current coefficients.
func (c *Controller) Function() linear.Function { return c.state.Function }

// Snapshot returns the geometry last applied to the scene.
func (c *Controller) Snapshot() geometry.Snapshot { return c.state.Snapshot }

// Records returns the probe table, newest first.
func (c *Controller) Records() []history.Record { return c.state.History.All() }

// Projection exposes the scene projection for presentation and tests.
func (c *Controller) Projection() *scene.Projection { return c.proj }

// Presets returns the configured presets.
func (c *Controller) Presets() []config.Preset { return c.opts.Presets }
