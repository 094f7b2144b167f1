package fn

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is a bounded [Cache] that evicts the least recently used entry
// once size entries are stored. Use it with [NewMemoized] when the key space
// is open-ended.
//
//	cache, _ := fn.NewLRUCache[Profile](10_000)
//	profile := fn.NewMemoized(loadProfile, userKey, cache)
type LRUCache[R any] struct {
	entries *lru.Cache[string, R]
}

// NewLRUCache creates an LRUCache holding at most size entries.
// Returns an error wrapping [ErrInvalidArgument] if size <= 0.
func NewLRUCache[R any](size int) (*LRUCache[R], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidArgument, size)
	}
	c, err := lru.New[string, R](size)
	if err != nil {
		return nil, fmt.Errorf("fn: create lru cache: %w", err)
	}
	return &LRUCache[R]{entries: c}, nil
}

// Get implements [Cache]. A hit marks the entry as recently used.
func (c *LRUCache[R]) Get(key string) (R, bool) { return c.entries.Get(key) }

// Set implements [Cache].
func (c *LRUCache[R]) Set(key string, v R) { c.entries.Add(key, v) }

// Len implements [Cache].
func (c *LRUCache[R]) Len() int { return c.entries.Len() }

// Clear implements [Cache].
func (c *LRUCache[R]) Clear() { c.entries.Purge() }
