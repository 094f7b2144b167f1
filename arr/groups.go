package arr

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups is the result of [GroupBy]: an ordered mapping from key to the
// elements that produced it. Keys iterate in first-occurrence order and each
// bucket preserves source order.
//
// Accessors return copies, so a Groups value can be shared freely.
type Groups[K comparable, T any] struct {
	buckets *orderedmap.OrderedMap[K, []T]
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{buckets: orderedmap.New[K, []T]()}
}

func (g *Groups[K, T]) add(k K, item T) {
	bucket, _ := g.buckets.Get(k)
	g.buckets.Set(k, append(bucket, item))
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return g.buckets.Len() }

// Get returns a copy of the bucket for k and whether k is present.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	bucket, ok := g.buckets.Get(k)
	if !ok {
		return nil, false
	}
	return clone(bucket), true
}

// Has reports whether k is present.
func (g *Groups[K, T]) Has(k K) bool {
	_, ok := g.buckets.Get(k)
	return ok
}

// Keys returns the keys in first-occurrence order.
func (g *Groups[K, T]) Keys() []K {
	keys := make([]K, 0, g.buckets.Len())
	for pair := g.buckets.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All iterates over (key, bucket copy) in first-occurrence order.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for pair := g.buckets.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, clone(pair.Value)) {
				return
			}
		}
	}
}

// ToMap returns the groups as a plain map. Key order is lost.
func (g *Groups[K, T]) ToMap() map[K][]T {
	out := make(map[K][]T, g.buckets.Len())
	for k, bucket := range g.All() {
		out[k] = bucket
	}
	return out
}
