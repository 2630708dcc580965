package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"linviz/app"
	"linviz/hal"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without a window, optionally from a command script",
	Long: `Runs the visualizer on a fixed tick loop. With --script, one command is
applied per tick and the panel is printed after each:

  a 1.5 | b -2 | ab 2 1 | probe 3 | preset reset | visualize | clear

The run ends after the script unless --ticks is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("hz") {
			cfg.Headless.Hz, _ = cmd.Flags().GetInt("hz")
		}
		if cmd.Flags().Changed("ticks") {
			cfg.Headless.Ticks, _ = cmd.Flags().GetUint64("ticks")
		}

		var script []string
		if path, _ := cmd.Flags().GetString("script"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			script, err = app.ReadScript(f)
			f.Close()
			if err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log := stderrLogger(cfg)

		err = hal.RunHeadless(ctx, app.Factory(app.Config{
			Settings:        cfg,
			LogLevel:        cfg.SlogLevel(),
			Metrics:         startMetrics(ctx, cfg, log),
			Script:          script,
			QuitAfterScript: script != nil && cfg.Headless.Ticks == 0,
			Out:             cmd.OutOrStdout(),
		}), hal.HeadlessConfig{
			Hz:    cfg.Headless.Hz,
			Ticks: cfg.Headless.Ticks,
		}, hal.Options{Width: cfg.Window.Width, Height: cfg.Window.Height})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(headlessCmd)

	headlessCmd.Flags().String("script", "", "File with one command per line")
	headlessCmd.Flags().Int("hz", 60, "Tick rate")
	headlessCmd.Flags().Uint64("ticks", 0, "Stop after N ticks (0 = until the script ends or interrupted)")
}
