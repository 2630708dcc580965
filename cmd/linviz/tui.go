package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linviz/internal/logging"
	"linviz/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the visualizer in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		// The terminal is taken over, so logs only go to an explicit file.
		log := logging.NewNop()
		if path, _ := cmd.Flags().GetString("log-file"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			log = logging.ToWriter(f, cfg.SlogLevel())
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		return tui.Run(cfg, log, startMetrics(ctx, cfg, log))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().String("log-file", "", "Append logs to this file")
}
