package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linviz/internal/config"
	"linviz/internal/controller"
)

func TestRenderSnapshot(t *testing.T) {
	var img, text bytes.Buffer
	err := renderSnapshot(config.Default(), snapshotOptions{
		a: 2, b: 1, setAB: true,
		probes:    []string{"3", "-2"},
		visualize: true,
		width:     120, height: 90,
	}, &img, &text)
	require.NoError(t, err)

	decoded, err := png.Decode(&img)
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())

	out := text.String()
	assert.Contains(t, out, "f(x) = 2.0x + 1.0")
	assert.Contains(t, out, "x = -0.50")
	assert.Contains(t, out, "Showing 3 point(s).")
	assert.Contains(t, out, "-2.00    -3.00")
}

func TestRenderSnapshotRejectsBadProbe(t *testing.T) {
	var img, text bytes.Buffer
	err := renderSnapshot(config.Default(), snapshotOptions{
		probes: []string{"abc"},
		width:  10, height: 10,
	}, &img, &text)
	assert.ErrorIs(t, err, controller.ErrInvalidInput)
	assert.Zero(t, img.Len())
}

func TestHeadlessScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "demo.txt")
	require.NoError(t, os.WriteFile(script, []byte("# demo\npreset reset\nprobe 5\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"headless", "--script", script, "--hz", "500", "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	s := out.String()
	assert.Contains(t, s, "> preset reset")
	assert.Contains(t, s, "root: infinitely many roots")
	assert.Contains(t, s, "f(5.00) = 0.00")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "linviz version dev")
}
