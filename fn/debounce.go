package fn

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer delays calls to fn until delay has passed without another call.
// Each call replaces the pending argument and restarts the timer, so only the
// last call in a burst runs.
//
// A Debouncer is either idle or pending. Call moves it to pending; the timer
// firing, [Debouncer.Flush] or [Debouncer.Cancel] move it back to idle.
// It is safe for concurrent use.
type Debouncer[A any] struct {
	fn    func(A)
	delay time.Duration
	clock clock.Clock

	mu      sync.Mutex
	timer   *clock.Timer
	arg     A
	pending bool
	gen     uint64 // bumped on every transition; stale timers compare against it
}

// NewDebouncer returns an idle Debouncer for fn.
func NewDebouncer[A any](fn func(A), delay time.Duration, opts ...Option) *Debouncer[A] {
	cfg := newConfig(opts)
	return &Debouncer[A]{fn: fn, delay: delay, clock: cfg.clock}
}

// Debounce returns a debounced form of fn. Use [NewDebouncer] to also get
// Cancel and Flush.
//
//	save := fn.Debounce(store.Save, 500*time.Millisecond)
//	save(doc) // runs once, 500ms after the last call
func Debounce[A any](fn func(A), delay time.Duration, opts ...Option) func(A) {
	return NewDebouncer(fn, delay, opts...).Call
}

// Call schedules fn(a) after the delay, dropping any call still pending.
func (d *Debouncer[A]) Call(a A) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.arg = a
	d.pending = true
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a call is waiting for its timer.
func (d *Debouncer[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Cancel drops the pending call, if any, and reports whether one was dropped.
func (d *Debouncer[A]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.pending
	d.stopLocked()
	return was
}

// Flush runs the pending call immediately on the calling goroutine and
// reports whether there was one.
func (d *Debouncer[A]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	arg := d.arg
	d.stopLocked()
	d.mu.Unlock()

	d.fn(arg)
	return true
}

func (d *Debouncer[A]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.stopLocked()
	d.mu.Unlock()

	d.fn(arg)
}

// stopLocked returns the Debouncer to idle. d.mu must be held.
func (d *Debouncer[A]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero A
	d.arg = zero
	d.pending = false
	d.gen++
}
