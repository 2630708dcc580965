package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"linviz/app"
	"linviz/hal"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the visualizer in a desktop window",
	Long: `Opens an ebiten window. Keys: a/A b/B or arrows change the coefficients,
1 2 r load presets, tab edits x and enter probes it, v shows the table
points, c clears the table, i j k l and +/- move the camera, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log := stderrLogger(cfg)

		w := cfg.Window
		return hal.RunWindow(app.Factory(app.Config{
			Settings: cfg,
			LogLevel: cfg.SlogLevel(),
			Metrics:  startMetrics(ctx, cfg, log),
		}), hal.WindowConfig{
			Title: w.Title,
			Scale: w.Scale,
			TPS:   w.TPS,
		}, hal.Options{Width: w.Width, Height: w.Height})
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
	rootCmd.RunE = windowCmd.RunE
}
