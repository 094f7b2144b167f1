// Package fn provides higher-order function helpers: composition, currying,
// partial application, memoization, debounce, throttle and retry.
//
// # Composition
//
//	inc := func(n int) int { return n + 1 }
//	dbl := func(n int) int { return n * 2 }
//
//	fn.Pipe(3, inc, dbl)         // → 8, left to right
//	f, _ := fn.Compose(inc, dbl) // right to left
//	f(3)                         // → 7
//
// # Memoization
//
// [Memoize] keys results with package keyhash and keeps them in an unbounded
// [MapCache]. Build a [Memoized] with an [LRUCache] to bound memory.
//
// # Timing
//
// [Debouncer], [Throttler] and [WithRetry] read time through a
// github.com/benbjohnson/clock Clock. Pass [WithClock] with clock.NewMock()
// to drive them deterministically in tests. A Throttler's window is a
// golang.org/x/time/rate limiter evaluated at that clock's time.
//
// # Observability
//
// [WithRetry] logs failed attempts through a zerolog logger ([WithLogger],
// silent by default) and wraps each call in an OpenTelemetry span from the
// global tracer provider unless [WithTracer] supplies one.
package fn
