package fn

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/time/rate"
)

// Throttler runs fn on the first call and then drops every call for limit.
// The first call after the window has passed runs again and opens a new
// window. Dropped calls are not queued.
//
// A Throttler is either ready or cooling. The state is a token bucket of
// size one refilled once per limit, read at the configured clock's time.
// It is safe for concurrent use.
type Throttler[A any] struct {
	fn    func(A)
	limit time.Duration
	clock clock.Clock

	mu     sync.Mutex
	bucket *rate.Limiter
}

// NewThrottler returns a ready Throttler for fn. A limit <= 0 never drops a
// call.
func NewThrottler[A any](fn func(A), limit time.Duration, opts ...Option) *Throttler[A] {
	cfg := newConfig(opts)
	t := &Throttler[A]{fn: fn, limit: limit, clock: cfg.clock}
	t.bucket = t.newBucket()
	return t
}

func (t *Throttler[A]) newBucket() *rate.Limiter {
	if t.limit <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(t.limit), 1)
}

// Throttle returns a throttled form of fn.
//
//	report := fn.Throttle(sendProgress, time.Second)
func Throttle[A any](fn func(A), limit time.Duration, opts ...Option) func(A) {
	t := NewThrottler(fn, limit, opts...)
	return func(a A) { t.Call(a) }
}

// Call runs fn(a) if the Throttler is ready and reports whether it ran.
// fn runs on the calling goroutine, outside the lock.
func (t *Throttler[A]) Call(a A) bool {
	t.mu.Lock()
	ok := t.bucket.AllowN(t.clock.Now(), 1)
	t.mu.Unlock()
	if !ok {
		return false
	}
	t.fn(a)
	return true
}

// Ready reports whether the next call would run.
func (t *Throttler[A]) Ready() bool {
	if t.limit <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bucket.TokensAt(t.clock.Now()) >= 1
}

// Reset ends the current window so the next call runs.
func (t *Throttler[A]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bucket = t.newBucket()
}
