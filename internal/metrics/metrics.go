// Package metrics exposes controller activity as Prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors updated by the controller.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	intents      *prometheus.CounterVec
	invalid      prometheus.Counter
	historyRows  prometheus.Gauge
	pointMarkers prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linviz_intents_total",
			Help: "Intents dispatched to the controller.",
		}, []string{"intent"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linviz_invalid_input_total",
			Help: "Intents rejected because a value was not a finite number.",
		}),
		historyRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linviz_history_rows",
			Help: "Rows currently in the probe table.",
		}),
		pointMarkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linviz_point_markers",
			Help: "Probed points currently drawn in the scene.",
		}),
	}
	m.Registry.MustRegister(m.intents, m.invalid, m.historyRows, m.pointMarkers)
	return m
}

func (m *Metrics) Intent(name string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(name).Inc()
}

func (m *Metrics) InvalidInput() {
	if m == nil {
		return
	}
	m.invalid.Inc()
}

// Observe records the current table and marker sizes.
func (m *Metrics) Observe(historyRows, pointMarkers int) {
	if m == nil {
		return
	}
	m.historyRows.Set(float64(historyRows))
	m.pointMarkers.Set(float64(pointMarkers))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("serving metrics", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics serve: %w", err)
	}
	return nil
}
