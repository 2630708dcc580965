package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, Preset{Name: "reset", Key: "r"}, cfg.Presets[2])
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
extent: 6
function:
  a: 1.5
log_level: debug
presets:
  - name: flat
    key: f
    a: 0
    b: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Extent)
	assert.Equal(t, 1.5, cfg.Function.A)
	assert.Equal(t, -1.0, cfg.Function.B, "unset keys keep defaults")
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "flat", cfg.Presets[0].Name)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "extnt: 3\n"))
	assert.Error(t, err)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"extent too small", func(c *Config) { c.Extent = 0 }},
		{"inverted slider", func(c *Config) { c.Sliders.A.Min, c.Sliders.A.Max = 3, -3 }},
		{"zero step", func(c *Config) { c.Sliders.B.Step = 0 }},
		{"default outside range", func(c *Config) { c.Function.A = 9 }},
		{"preset outside range", func(c *Config) { c.Presets[0].B = 50 }},
		{"duplicate preset", func(c *Config) { c.Presets[1].Name = c.Presets[0].Name }},
		{"long key", func(c *Config) { c.Presets[0].Key = "ab" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Presets = append([]Preset(nil), cfg.Presets...)
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
