package arr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AsyncMapper transforms item into a U, possibly blocking. It should honour
// ctx cancellation.
type AsyncMapper[T, U any] func(ctx context.Context, item T, index int, items []T) (U, error)

// AsyncPredicate reports whether item is selected, possibly blocking.
type AsyncPredicate[T any] func(ctx context.Context, item T, index int, items []T) (bool, error)

// AsyncOption configures [MapAsync] and [FilterAsync].
type AsyncOption func(*asyncOptions)

type asyncOptions struct {
	limit int
}

// WithConcurrency caps the number of in-flight invocations. n <= 0 means no
// limit, which is the default.
func WithConcurrency(n int) AsyncOption {
	return func(o *asyncOptions) { o.limit = n }
}

// MapAsync invokes fn concurrently, once per element, and returns the
// results in source order once every invocation has completed.
//
// The first error is returned and no partial result is delivered. The
// context passed to fn is cancelled as soon as any invocation fails; siblings
// that are already running are not interrupted, their results are discarded.
func MapAsync[T, U any](ctx context.Context, items []T, fn AsyncMapper[T, U], opts ...AsyncOption) ([]U, error) {
	var o asyncOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]U, len(items))
	g, gctx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			v, err := fn(gctx, item, i, items)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait reports nil when the parent was cancelled before anything launched.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterAsync resolves fn concurrently for every element and returns the
// elements for which it reported true, in source order. It has the same
// all-or-nothing failure semantics as [MapAsync].
func FilterAsync[T any](ctx context.Context, items []T, fn AsyncPredicate[T], opts ...AsyncOption) ([]T, error) {
	pairs, err := MapAsync(ctx, items, func(ctx context.Context, item T, i int, all []T) (Pair[T, bool], error) {
		include, err := fn(ctx, item, i, all)
		return Pair[T, bool]{First: item, Second: include}, err
	}, opts...)
	if err != nil {
		return nil, err
	}
	kept := Filter(pairs, func(p Pair[T, bool], _ int, _ []Pair[T, bool]) bool { return p.Second })
	return Map(kept, func(p Pair[T, bool], _ int, _ []Pair[T, bool]) T { return p.First }), nil
}
