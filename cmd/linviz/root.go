package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"linviz/internal/config"
	"linviz/internal/logging"
	"linviz/internal/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "linviz",
	Short: "Linviz is an interactive visualizer for linear functions",
	Long: `Linviz plots f(x) = ax + b in a small 3D scene, shows its intercepts and
classification, and keeps a table of probed points that can be drawn back
into the scene.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML settings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9464")
}

// loadSettings reads --config and applies the persistent flag overrides.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func stderrLogger(cfg config.Config) *slog.Logger {
	return logging.ToWriter(os.Stderr, cfg.SlogLevel())
}

// startMetrics serves /metrics in the background when an address is set.
// It returns nil otherwise; the metrics methods accept a nil receiver.
func startMetrics(ctx context.Context, cfg config.Config, log *slog.Logger) *metrics.Metrics {
	if cfg.MetricsAddr == "" {
		return nil
	}
	m := metrics.New()
	go func() {
		if err := m.Serve(ctx, cfg.MetricsAddr, log); err != nil {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	return m
}
