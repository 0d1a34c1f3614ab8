// Package otel configures OpenTelemetry tracing for tantoak processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/tantoak/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnvEnabled set to "false" disables tracing even with an endpoint.
	EnvEnabled = "TANTOAK_OTEL_ENABLED"
	// EnvEndpoint is the OTLP/HTTP collector URL.
	EnvEndpoint = "TANTOAK_OTEL_ENDPOINT"
	// EnvSampleRatio is the fraction of root traces kept, 0 to 1.
	EnvSampleRatio = "TANTOAK_OTEL_SAMPLE_RATIO"
)

// Config controls trace export.
type Config struct {
	Enabled     bool    `env:"TANTOAK_OTEL_ENABLED" envDefault:"true"`
	Endpoint    string  `env:"TANTOAK_OTEL_ENDPOINT"`
	SampleRatio float64 `env:"TANTOAK_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return Config{}, fmt.Errorf("%s must be within [0, 1], got %v", EnvSampleRatio, cfg.SampleRatio)
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	return cfg, nil
}

// Active reports whether spans will be exported.
func (c Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

// Setup initialises OpenTelemetry tracing for the given service from the
// environment. Tracing is opt-in: without an endpoint, or with tracing
// disabled, Setup returns a no-op shutdown and registers nothing.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	cfg, err := LoadConfig()
	if err != nil {
		return noopShutdown, err
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

// SetupWithConfig is Setup with an explicit Config.
func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Active() {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("create otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func noopShutdown(context.Context) error { return nil }
