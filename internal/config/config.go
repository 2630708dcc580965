// Package config loads the visualizer settings.
//
// Settings come from Default, optionally overlaid with a YAML file, and are
// validated before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Range is the domain of a coefficient slider.
type Range struct {
	Min  float64 `yaml:"min" validate:"ltfield=Max"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step" validate:"gt=0"`
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Preset is a named (a, b) pair bound to a key.
type Preset struct {
	Name string  `yaml:"name" validate:"required"`
	Key  string  `yaml:"key" validate:"omitempty,len=1"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
}

type Function struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

type Sliders struct {
	A Range `yaml:"a"`
	B Range `yaml:"b"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width" validate:"gte=160,lte=4096"`
	Height int    `yaml:"height" validate:"gte=120,lte=4096"`
	Scale  int    `yaml:"scale" validate:"gte=1,lte=8"`
	TPS    int    `yaml:"tps" validate:"gte=1,lte=240"`
}

type Headless struct {
	Hz    int    `yaml:"hz" validate:"gte=1,lte=1000"`
	Ticks uint64 `yaml:"ticks"`
}

// Config is the full settings tree.
type Config struct {
	Extent      float64  `yaml:"extent" validate:"gte=1,lte=50"`
	Function    Function `yaml:"function"`
	Sliders     Sliders  `yaml:"sliders"`
	Presets     []Preset `yaml:"presets" validate:"dive"`
	SeedProbe   string   `yaml:"seed_probe"`
	Window      Window   `yaml:"window"`
	Headless    Headless `yaml:"headless"`
	LogLevel    string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr string   `yaml:"metrics_addr"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Extent:   10,
		Function: Function{A: 2, B: -1},
		Sliders: Sliders{
			A: Range{Min: -5, Max: 5, Step: 0.1},
			B: Range{Min: -10, Max: 10, Step: 0.1},
		},
		Presets: []Preset{
			{Name: "example-1", Key: "1", A: 2, B: 1},
			{Name: "example-2", Key: "2", A: -2, B: -1},
			{Name: "reset", Key: "r", A: 0, B: 0},
		},
		SeedProbe: "1",
		Window: Window{
			Title:  "linviz",
			Width:  480,
			Height: 360,
			Scale:  2,
			TPS:    60,
		},
		Headless: Headless{Hz: 60},
		LogLevel: "info",
	}
}

// Load reads path over Default. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Parse(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields that b does not mention.
func Parse(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that the defaults and every preset
// fall inside the slider ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var errs []error
	if !c.Sliders.A.Contains(c.Function.A) || !c.Sliders.B.Contains(c.Function.B) {
		errs = append(errs, fmt.Errorf("function (%v, %v) outside slider ranges", c.Function.A, c.Function.B))
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("duplicate preset %q", p.Name))
		}
		seen[p.Name] = true
		if !c.Sliders.A.Contains(p.A) || !c.Sliders.B.Contains(p.B) {
			errs = append(errs, fmt.Errorf("preset %q (%v, %v) outside slider ranges", p.Name, p.A, p.B))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
