package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"linviz/internal/config"
	"linviz/internal/controller"
	"linviz/internal/view"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to a PNG file",
	Example: `  linviz snapshot --a 2 --b 1 --probe 3 --probe -2 --visualize -o line.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		opts := snapshotOptions{}
		opts.a, _ = cmd.Flags().GetFloat64("a")
		opts.b, _ = cmd.Flags().GetFloat64("b")
		opts.setAB = cmd.Flags().Changed("a") || cmd.Flags().Changed("b")
		if !cmd.Flags().Changed("a") {
			opts.a = cfg.Function.A
		}
		if !cmd.Flags().Changed("b") {
			opts.b = cfg.Function.B
		}
		opts.preset, _ = cmd.Flags().GetString("preset")
		opts.probes, _ = cmd.Flags().GetStringArray("probe")
		opts.visualize, _ = cmd.Flags().GetBool("visualize")
		opts.width, _ = cmd.Flags().GetInt("width")
		opts.height, _ = cmd.Flags().GetInt("height")
		out, _ := cmd.Flags().GetString("output")

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		if err := renderSnapshot(cfg, opts, f, cmd.OutOrStdout()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

type snapshotOptions struct {
	a, b          float64
	setAB         bool
	preset        string
	probes        []string
	visualize     bool
	width, height int
}

// renderSnapshot applies the options as intents, writes the PNG to img and
// the panel text to text.
func renderSnapshot(cfg config.Config, opts snapshotOptions, img, text io.Writer) error {
	v := view.New(cfg.Extent)
	c := controller.New(v.Surface(), controller.OptionsFromConfig(cfg))
	if err := c.Init(); err != nil {
		return err
	}

	var intents []controller.Intent
	if opts.preset != "" {
		intents = append(intents, controller.LoadPreset{Preset: opts.preset})
	}
	if opts.setAB {
		intents = append(intents, controller.SetCoefficients{A: opts.a, B: opts.b})
	}
	for _, p := range opts.probes {
		intents = append(intents, controller.Probe{Raw: p})
	}
	if opts.visualize {
		intents = append(intents, controller.VisualizePoints{})
	}
	for _, in := range intents {
		if err := c.Dispatch(in); err != nil {
			return fmt.Errorf("%s: %w", in.Name(), err)
		}
	}

	lines := c.Panel().Lines(8)
	if err := v.WritePNG(img, opts.width, opts.height, lines); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(text, l); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().Float64("a", 0, "Slope (default from config)")
	snapshotCmd.Flags().Float64("b", 0, "Intercept (default from config)")
	snapshotCmd.Flags().String("preset", "", "Load a named preset first")
	snapshotCmd.Flags().StringArray("probe", nil, "Probe f at x; repeatable")
	snapshotCmd.Flags().Bool("visualize", false, "Draw the probed points")
	snapshotCmd.Flags().Int("width", 640, "Image width")
	snapshotCmd.Flags().Int("height", 480, "Image height")
	snapshotCmd.Flags().StringP("output", "o", "linviz.png", "Output PNG path")
}
