package fn

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hasbyte1/go-array-utils/keyhash"
)

// ─── Cache ────────────────────────────────────────────────────────────────────

// Cache stores memoized results by key. Implementations must be safe for
// concurrent use.
type Cache[R any] interface {
	// Get returns the result stored under key.
	Get(key string) (R, bool)

	// Set stores v under key, replacing any previous entry.
	Set(key string, v R)

	// Len returns the number of stored entries.
	Len() int

	// Clear removes every entry.
	Clear()
}

// MapCache is the default [Cache]: an unbounded map guarded by a RWMutex.
// Entries are never evicted, so memory grows with the number of distinct
// keys for as long as the memoized function is reachable.
type MapCache[R any] struct {
	mu      sync.RWMutex
	entries map[string]R
}

// NewMapCache creates an empty [MapCache].
func NewMapCache[R any]() *MapCache[R] {
	return &MapCache[R]{entries: make(map[string]R)}
}

// Get implements [Cache].
func (c *MapCache[R]) Get(key string) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set implements [Cache].
func (c *MapCache[R]) Set(key string, v R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Len implements [Cache].
func (c *MapCache[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear implements [Cache].
func (c *MapCache[R]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// ─── Memoized ─────────────────────────────────────────────────────────────────

// MemoOption configures how [Memoize] derives keys.
type MemoOption func(*memoConfig)

type memoConfig struct {
	keys   *keyhash.Manager
	driver keyhash.DriverName
}

// WithKeyManager derives keys through m instead of [keyhash.Default].
func WithKeyManager(m *keyhash.Manager) MemoOption {
	return func(c *memoConfig) { c.keys = m }
}

// WithKeyDriver derives keys with the named driver instead of the manager's
// default.
func WithKeyDriver(name keyhash.DriverName) MemoOption {
	return func(c *memoConfig) { c.driver = name }
}

// keyFunc returns a function deriving a key from args. A driver that is not
// registered is reported on first use, not here.
func (c memoConfig) keyFunc() func(args ...any) string {
	m := c.keys
	if m == nil {
		m = keyhash.Default()
	}
	return func(args ...any) string {
		var (
			k   string
			err error
		)
		if c.driver != "" {
			k, err = m.KeyWith(c.driver, args...)
		} else {
			k, err = m.Key(args...)
		}
		if err != nil {
			panic(fmt.Sprintf("fn: memoize key: %v", err))
		}
		return k
	}
}

// Memoized caches the results of fn by key. Concurrent calls for the same
// key share a single invocation of fn.
type Memoized[A, R any] struct {
	fn     func(A) R
	key    func(A) string
	cache  Cache[R]
	flight singleflight.Group
}

// NewMemoized wraps fn with cache, keying each argument with key. A nil
// cache selects a new [MapCache].
func NewMemoized[A, R any](fn func(A) R, key func(A) string, cache Cache[R]) *Memoized[A, R] {
	if cache == nil {
		cache = NewMapCache[R]()
	}
	return &Memoized[A, R]{fn: fn, key: key, cache: cache}
}

// Call returns the cached result for a, computing and storing it on a miss.
func (m *Memoized[A, R]) Call(a A) R {
	k := m.key(a)
	if v, ok := m.cache.Get(k); ok {
		return v
	}
	// Boxed so a nil interface R survives the trip through any.
	v, _, _ := m.flight.Do(k, func() (any, error) {
		if v, ok := m.cache.Get(k); ok {
			return box[R]{v}, nil
		}
		v := m.fn(a)
		m.cache.Set(k, v)
		return box[R]{v}, nil
	})
	return v.(box[R]).v
}

type box[R any] struct{ v R }

// Len returns the number of cached results.
func (m *Memoized[A, R]) Len() int { return m.cache.Len() }

// Reset drops every cached result.
func (m *Memoized[A, R]) Reset() { m.cache.Clear() }

// Memoize caches fn by the canonical encoding of its argument (see
// [keyhash.Canonical]). fn must be deterministic.
//
//	fib := fn.Memoize(slowFib)
func Memoize[A, R any](fn func(A) R, opts ...MemoOption) func(A) R {
	var cfg memoConfig
	for _, o := range opts {
		o(&cfg)
	}
	key := cfg.keyFunc()
	return NewMemoized(fn, func(a A) string { return key(a) }, nil).Call
}

// Memoize2 is [Memoize] for two-argument functions.
func Memoize2[A, B, R any](fn func(A, B) R, opts ...MemoOption) func(A, B) R {
	var cfg memoConfig
	for _, o := range opts {
		o(&cfg)
	}
	key := cfg.keyFunc()
	m := NewMemoized(
		func(p pair[A, B]) R { return fn(p.a, p.b) },
		func(p pair[A, B]) string { return key(p.a, p.b) },
		nil,
	)
	return func(a A, b B) R { return m.Call(pair[A, B]{a, b}) }
}

type pair[A, B any] struct {
	a A
	b B
}

// MemoizeBy caches fn by the key that sel derives from its argument. Keys
// are compared by their %#v form, so sel should return a string, number or
// small struct of those.
//
//	byID := fn.MemoizeBy(loadUser, func(r Request) int { return r.UserID })
func MemoizeBy[A any, K comparable, R any](fn func(A) R, sel func(A) K) func(A) R {
	return NewMemoized(fn, func(a A) string { return fmt.Sprintf("%#v", sel(a)) }, nil).Call
}
