package engine

import (
	"log"
	"time"

	"github.com/louisbranch/tantoak/internal/platform/timeouts"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/tantoak/internal/services/scoreboard/engine"

type options struct {
	defaultCeiling int
	logf           func(string, ...any)
	tracer         trace.Tracer
	saveTimeout    time.Duration
}

// Option customizes an Engine.
type Option func(*options)

// WithDefaultCeiling sets the ceiling used when no snapshot can be loaded.
// Non-positive values are ignored.
func WithDefaultCeiling(ceiling int) Option {
	return func(o *options) {
		if ceiling > 0 {
			o.defaultCeiling = ceiling
		}
	}
}

// WithLogf routes engine logs to logf.
func WithLogf(logf func(string, ...any)) Option {
	return func(o *options) {
		if logf != nil {
			o.logf = logf
		}
	}
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// WithSaveTimeout bounds each background save.
func WithSaveTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.saveTimeout = timeout
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		defaultCeiling: domain.DefaultCeiling,
		logf:           log.Printf,
		saveTimeout:    timeouts.StoreSave,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return o
}
