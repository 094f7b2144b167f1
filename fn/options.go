package fn

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hasbyte1/go-array-utils/fn"

// Option configures the time-based helpers ([NewDebouncer], [NewThrottler],
// [WithRetry]). Options a helper does not use are ignored.
type Option func(*config)

type config struct {
	clock  clock.Clock
	logger zerolog.Logger
	tracer trace.Tracer
}

func newConfig(opts []Option) config {
	cfg := config{
		clock:  clock.New(),
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(tracerName)
	}
	return cfg
}

// WithClock replaces the wall clock, typically with clock.NewMock() in tests.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithLogger sets the logger used to report retry attempts.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// WithTracer sets the tracer used for retry spans. The default is the
// global provider's tracer, a no-op until the host installs one.
func WithTracer(t trace.Tracer) Option {
	return func(cfg *config) { cfg.tracer = t }
}
