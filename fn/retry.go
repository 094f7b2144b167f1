package fn

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WithRetry wraps call so that a failing attempt is retried after delay, up
// to maxAttempts attempts in total. The first successful result is returned
// immediately. When every attempt fails the error wraps both
// [ErrRetryExhausted] and the last attempt's error.
//
// maxAttempts below 1 is treated as 1 and a delay <= 0 retries without
// waiting. Cancelling ctx stops the wait between attempts and returns
// ctx.Err() wrapped with the last failure.
//
//	fetch := fn.WithRetry(func(ctx context.Context) ([]byte, error) {
//	    return client.Get(ctx, url)
//	}, 3, 200*time.Millisecond, fn.WithLogger(log))
//	body, err := fetch(ctx)
func WithRetry[R any](call func(ctx context.Context) (R, error), maxAttempts int, delay time.Duration, opts ...Option) func(ctx context.Context) (R, error) {
	cfg := newConfig(opts)
	maxAttempts = max(maxAttempts, 1)

	return func(ctx context.Context) (R, error) {
		ctx, span := cfg.tracer.Start(ctx, "fn.WithRetry", trace.WithAttributes(
			attribute.Int("retry.max_attempts", maxAttempts),
			attribute.Int64("retry.delay_ms", delay.Milliseconds()),
		))
		defer span.End()

		var zero R
		var last error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			res, err := call(ctx)
			if err == nil {
				span.SetAttributes(attribute.Int("retry.attempts", attempt))
				return res, nil
			}
			last = err
			span.RecordError(err, trace.WithAttributes(attribute.Int("retry.attempt", attempt)))
			cfg.logger.Debug().Err(err).Int("attempt", attempt).Int("max_attempts", maxAttempts).Msg("fn: attempt failed")

			if attempt == maxAttempts {
				break
			}
			if err := sleep(ctx, cfg, delay); err != nil {
				span.SetStatus(codes.Error, err.Error())
				return zero, fmt.Errorf("fn: retry interrupted after %d attempts: %w (last error: %w)", attempt, err, last)
			}
		}

		span.SetAttributes(attribute.Int("retry.attempts", maxAttempts))
		span.SetStatus(codes.Error, last.Error())
		cfg.logger.Warn().Err(last).Int("attempts", maxAttempts).Msg("fn: retry attempts exhausted")
		return zero, fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, maxAttempts, last)
	}
}

// sleep waits for d on the configured clock or until ctx is done.
func sleep(ctx context.Context, cfg config, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := cfg.clock.Timer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
