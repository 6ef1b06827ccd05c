package observability

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config holds observability settings.
type Config struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// Observability bundles the logger, prometheus registry, and tracer provider
// handed to every module.
type Observability struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	TracerProvider trace.TracerProvider

	metricsServer *http.Server
}

// Init builds the observability stack. Tracing defaults to a noop provider;
// deployments that export spans swap the provider in before modules start.
func Init(cfg Config) *Observability {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("environment", cfg.Environment))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:         logger,
		Registry:       registry,
		TracerProvider: noop.NewTracerProvider(),
	}
}

// ServeMetrics exposes the prometheus registry over HTTP until the context is
// cancelled. No-op when no address is configured.
func (o *Observability) ServeMetrics(ctx context.Context, addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{}))
	o.metricsServer = &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := o.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			o.Logger.Error("Metrics server stopped", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		_ = o.metricsServer.Close()
	}()

	o.Logger.Info("Metrics server listening", slog.String("address", addr))
}
