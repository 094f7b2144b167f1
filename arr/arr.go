package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index, items) to each element and returns a new slice
// of the same length.
func Map[T, U any](items []T, fn Mapper[T, U]) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i, items)
	}
	return out
}

// Filter returns the elements for which fn returns true, in source order.
func Filter[T any](items []T, fn Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i, items) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn Predicate[T]) []T {
	return Filter(items, func(item T, i int, all []T) bool { return !fn(item, i, all) })
}

// Narrow keeps the elements accepted by guard, converted to U.
//
// guard plays the role of a type guard: it reports whether the element has
// the wanted shape and, if so, returns it as a U.
func Narrow[T, U any](items []T, guard func(T) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		if u, ok := guard(item); ok {
			out = append(out, u)
		}
	}
	return out
}

// OfType keeps the elements of items whose dynamic type is U.
//
//	arr.OfType[string]([]any{1, "a", 2.5, "b"}) // → ["a" "b"]
func OfType[U any](items []any) []U {
	return Narrow(items, func(v any) (U, bool) {
		u, ok := v.(U)
		return u, ok
	})
}

// Reduce folds items into a single value of type U, starting from initial.
// An empty slice returns initial unchanged.
func Reduce[T, U any](items []T, fn Reducer[T, U], initial U) U {
	acc := initial
	for i, item := range items {
		acc = fn(acc, item, i, items)
	}
	return acc
}

// FlatMap applies fn to each element (producing a []U) and concatenates the
// results.
func FlatMap[T, U any](items []T, fn Mapper[T, []U]) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i, items)...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn Predicate[T]) int {
	for i, item := range items {
		if fn(item, i, items) {
			return i
		}
	}
	return -1
}

// FindLastIndex scans backwards and returns the index of the last element
// satisfying fn, or -1.
func FindLastIndex[T any](items []T, fn Predicate[T]) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i], i, items) {
			return i
		}
	}
	return -1
}

// Find returns the first element satisfying fn.
// Returns the zero value and false when nothing matches.
func Find[T any](items []T, fn Predicate[T]) (T, bool) {
	if i := FindIndex(items, fn); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Some reports whether at least one element satisfies fn.
func Some[T any](items []T, fn Predicate[T]) bool {
	return FindIndex(items, fn) != -1
}

// Every reports whether all elements satisfy fn. It is true for an empty slice.
func Every[T any](items []T, fn Predicate[T]) bool {
	return FindIndex(items, func(item T, i int, all []T) bool { return !fn(item, i, all) }) == -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy buckets items by the key returned by fn. Keys keep the order in
// which they were first seen and each bucket keeps source order.
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Groups[K, T] {
	return Reduce(items, func(g *Groups[K, T], item T, _ int, _ []T) *Groups[K, T] {
		g.add(fn(item), item)
		return g
	}, newGroups[K, T]())
}

// Partition splits items in a single pass: the first slice holds the elements
// satisfying fn, the second the rest. Both keep source order.
func Partition[T any](items []T, fn Predicate[T]) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range items {
		if fn(item, i, items) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, keeping the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy removes elements whose key (as returned by fn) was already seen.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of a that do not appear in b.
func Difference[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int, _ []T) bool {
		_, found := set[item]
		return !found
	})
}

// Intersection returns the distinct elements of a that also appear in b,
// in the order of a.
func Intersection[T comparable](a, b []T) []T {
	set := toSet(b)
	return Unique(Filter(a, func(item T, _ int, _ []T) bool {
		_, found := set[item]
		return found
	}))
}

// Union concatenates seqs left to right and removes duplicates, keeping the
// first occurrence.
func Union[T comparable](seqs ...[]T) []T {
	return Unique(Collapse(seqs))
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements. Each group is a fresh copy.
// Returns an error wrapping [ErrInvalidArgument] if size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be greater than 0, got %d", ErrInvalidArgument, size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Take returns a copy of the first n elements. n larger than len(items) is
// clamped. Returns an error wrapping [ErrInvalidArgument] if n < 0.
func Take[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: take count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return clone(items[:min(n, len(items))]), nil
}

// Skip returns a copy of items without the first n elements. n larger than
// len(items) yields an empty slice. Returns an error wrapping
// [ErrInvalidArgument] if n < 0.
func Skip[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: skip count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return clone(items[min(n, len(items)):]), nil
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// clone copies items into a new non-nil slice.
func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
