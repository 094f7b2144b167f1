package chain

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-array-utils/arr"
)

// Chain is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the chain returns a *new* Chain, leaving the
// original unchanged. Concurrent reads of the same chain are safe.
//
// # Creating a chain
//
//	c := chain.New(1, 2, 3, 4, 5)
//	c := chain.Of([]string{"a", "b", "c"})
//	c := chain.From([]int{1, 2}, []int{3})
//	c := chain.Empty[int]()
//
// # Method chaining
//
//	result := chain.New(5, 3, 1, 4, 2).
//	    Filter(func(n, _ int, _ []int) bool { return n > 1 }).
//	    Sort().
//	    Take(2).
//	    ToArray() // → [2 3]
type Chain[T any] struct {
	items []T
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Chain from a variadic list of items (copied).
func New[T any](items ...T) *Chain[T] {
	return Of(items)
}

// Of creates a Chain from a slice (the slice is copied).
func Of[T any](items []T) *Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Chain[T]{items: dst}
}

// From concatenates seqs into a single Chain.
func From[T any](seqs ...[]T) *Chain[T] {
	return &Chain[T]{items: arr.Collapse(seqs)}
}

// Empty creates an empty Chain of type T.
func Empty[T any]() *Chain[T] {
	return &Chain[T]{items: []T{}}
}

// Range returns start, start+step, … up to but excluding end. A positive step
// counts up and a negative step counts down; a step pointing away from end
// yields an empty chain. Returns an error wrapping [ErrInvalidArgument] if
// step is zero.
func Range(start, end, step float64) (*Chain[float64], error) {
	return rangeOf(start, end, step)
}

// RangeInt is the integer form of [Range].
func RangeInt(start, end, step int) (*Chain[int], error) {
	return rangeOf(start, end, step)
}

func rangeOf[N arr.Number](start, end, step N) (*Chain[N], error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: range step must be non-zero", ErrInvalidArgument)
	}
	out := []N{}
	for i := 0; ; i++ {
		// Computed from start each time so float steps do not accumulate error.
		v := start + N(i)*step
		if (step > 0 && v >= end) || (step < 0 && v <= end) || v != v {
			break
		}
		out = append(out, v)
	}
	return &Chain[N]{items: out}, nil
}

// Repeat returns a chain holding count copies of value.
// Returns an error wrapping [ErrInvalidArgument] if count < 0.
func Repeat[T any](value T, count int) (*Chain[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: repeat count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	out := make([]T, count)
	for i := range out {
		out[i] = value
	}
	return &Chain[T]{items: out}, nil
}

// owned wraps items without copying; items must not be shared with any
// other chain or caller.
func owned[T any](items []T) *Chain[T] {
	return &Chain[T]{items: items}
}

// view returns a copy of the items for handing to callbacks.
func (c *Chain[T]) view() []T {
	return slices.Clone(c.items)
}

// failed returns a chain carrying err and no items.
func failed[T any](err error) *Chain[T] {
	return &Chain[T]{items: []T{}, err: err}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Value returns a copy of the items together with the first error recorded
// along the chain. The items are empty when err is non-nil.
func (c *Chain[T]) Value() ([]T, error) {
	if c.err != nil {
		return []T{}, c.err
	}
	return c.view(), nil
}

// ToArray returns a copy of the items. It is Value without the error.
func (c *Chain[T]) ToArray() []T {
	items, _ := c.Value()
	return items
}

// Err returns the first error recorded by a non-terminal operation.
func (c *Chain[T]) Err() error { return c.err }

// ToJSON serialises the chain items to a JSON array.
func (c *Chain[T]) ToJSON() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	return json.Marshal(c.items)
}

// Count returns the number of items in the chain.
func (c *Chain[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the chain contains no items.
func (c *Chain[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the chain has at least one item.
func (c *Chain[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// At returns the item at index together with a presence flag. A negative
// index counts back from the end, so At(-1) is the last item.
func (c *Chain[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 {
		index += len(c.items)
	}
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// First returns the first item, or the zero value and false when empty.
func (c *Chain[T]) First() (T, bool) { return c.At(0) }

// Last returns the last item, or the zero value and false when empty.
func (c *Chain[T]) Last() (T, bool) { return c.At(-1) }

// Join converts every item with fmt.Sprint and joins them with sep.
func (c *Chain[T]) Join(sep string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}

// String returns a JSON representation of the chain.
// It implements [fmt.Stringer].
func (c *Chain[T]) String() string {
	if c.err != nil {
		return fmt.Sprintf("chain(error: %v)", c.err)
	}
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Iter returns an iterator over index/item pairs.
//
//	for i, v := range c.Iter() { … }
func (c *Chain[T]) Iter() iter.Seq2[int, T] {
	items := c.view()
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item and returns a Chain[any].
// Use the package-level [Map] for a typed result.
func (c *Chain[T]) Map(fn arr.Mapper[T, any]) *Chain[any] {
	return Map(c, fn)
}

// Filter returns a new chain with only the items for which fn returns true.
func (c *Chain[T]) Filter(fn arr.Predicate[T]) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.Filter(c.view(), fn))
}

// Reject is the inverse of [Chain.Filter].
func (c *Chain[T]) Reject(fn arr.Predicate[T]) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.Reject(c.view(), fn))
}

// Sort returns a stably sorted chain. With no comparator the natural
// ordering is used: numbers numerically, strings lexically, anything else by
// its fmt.Sprint form.
//
//	byAge := people.Sort(func(a, b Person) int { return cmp.Compare(a.Age, b.Age) })
func (c *Chain[T]) Sort(cmps ...func(a, b T) int) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	out := c.view()
	cmpFn := func(a, b T) int { return compareNatural(a, b) }
	if len(cmps) > 0 && cmps[0] != nil {
		cmpFn = cmps[0]
	}
	slices.SortStableFunc(out, cmpFn)
	return owned(out)
}

// Reverse returns a chain with the items in reverse order.
func (c *Chain[T]) Reverse() *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	out := c.view()
	slices.Reverse(out)
	return owned(out)
}

// Slice returns the items from start up to but excluding end. end defaults
// to Count(). Negative positions count back from the end; out of range
// positions are clamped, and end <= start yields an empty chain.
func (c *Chain[T]) Slice(start int, end ...int) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	n := len(c.items)
	lo := clampIndex(start, n)
	hi := n
	if len(end) > 0 {
		hi = clampIndex(end[0], n)
	}
	if hi <= lo {
		return Empty[T]()
	}
	return Of(c.items[lo:hi])
}

func clampIndex(i, n int) int {
	if i < 0 {
		return max(n+i, 0)
	}
	return min(i, n)
}

// Concat returns a chain with seqs appended after the current items.
func (c *Chain[T]) Concat(seqs ...[]T) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return From(append([][]T{c.items}, seqs...)...)
}

// Unique removes duplicates, keeping the first occurrence. Comparable values
// are compared by value; slices, maps and funcs by reference.
func (c *Chain[T]) Unique() *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.UniqueBy(c.items, func(item T) any { return identity(item) }))
}

// Flatten flattens one level of nested slices into a Chain[any].
// Use the package-level [Flatten] for a typed Chain[[]T].
func (c *Chain[T]) Flatten() *Chain[any] {
	if c.err != nil {
		return failed[any](c.err)
	}
	boxed := make([]any, len(c.items))
	for i, item := range c.items {
		boxed[i] = item
	}
	return &Chain[any]{items: arr.Flatten(boxed)}
}

// Take returns the first n items. n larger than Count() is clamped; a
// negative n records an error wrapping [ErrInvalidArgument].
func (c *Chain[T]) Take(n int) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	out, err := arr.Take(c.items, n)
	if err != nil {
		return failed[T](err)
	}
	return owned(out)
}

// Skip drops the first n items. A negative n records an error wrapping
// [ErrInvalidArgument].
func (c *Chain[T]) Skip(n int) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	out, err := arr.Skip(c.items, n)
	if err != nil {
		return failed[T](err)
	}
	return owned(out)
}

// ForEach calls fn for every item and returns a new chain with the same
// items.
func (c *Chain[T]) ForEach(fn func(item T, index int, items []T)) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	items := c.view()
	for i, item := range items {
		fn(item, i, items)
	}
	return Of(c.items)
}

// Tap calls fn with a copy of the items for side-effects (logging,
// debugging) and returns a new chain with the same items.
func (c *Chain[T]) Tap(fn func(items []T)) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	fn(c.view())
	return Of(c.items)
}

// Shuffle returns a randomly permuted chain.
func (c *Chain[T]) Shuffle() *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.Shuffle(c.items))
}

// Sample returns a chain of count items drawn without replacement. A
// negative count records an error wrapping [ErrInvalidArgument].
func (c *Chain[T]) Sample(count int) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	out, err := arr.Sample(c.items, count)
	if err != nil {
		return failed[T](err)
	}
	return owned(out)
}

// Compact drops nil items.
func (c *Chain[T]) Compact() *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.Compact(c.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the items into a single T starting from initial.
// Use the package-level [Reduce] for a different accumulator type.
func (c *Chain[T]) Reduce(fn arr.Reducer[T, T], initial T) T {
	return arr.Reduce(c.view(), fn, initial)
}

// Partition splits the items into those satisfying fn and the rest.
func (c *Chain[T]) Partition(fn arr.Predicate[T]) ([]T, []T) {
	return arr.Partition(c.view(), fn)
}

// Stats summarises numeric items. Returns an error wrapping
// [ErrTypeMismatch] if the chain is empty or any item is not a number.
func (c *Chain[T]) Stats() (arr.Stats, error) {
	if c.err != nil {
		return arr.Stats{}, c.err
	}
	if len(c.items) == 0 {
		return arr.Stats{}, fmt.Errorf("%w: stats of an empty chain", ErrTypeMismatch)
	}
	values := make([]float64, len(c.items))
	for i, item := range c.items {
		f, ok := toFloat(item)
		if !ok {
			return arr.Stats{}, fmt.Errorf("%w: item %d is %T, not a number", ErrTypeMismatch, i, item)
		}
		values[i] = f
	}
	return arr.GetStats(values), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Includes reports whether value is present, compared as in [Chain.Unique].
func (c *Chain[T]) Includes(value T) bool {
	return c.IndexOf(value) >= 0
}

// IndexOf returns the first index of value at or after from (default 0), or
// -1. A negative from counts back from the end.
func (c *Chain[T]) IndexOf(value T, from ...int) int {
	start := 0
	if len(from) > 0 {
		start = clampIndex(from[0], len(c.items))
	}
	key := identity(value)
	for i := start; i < len(c.items); i++ {
		if identity(c.items[i]) == key {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of value at or before from (default
// Count()-1), or -1. A negative from counts back from the end.
func (c *Chain[T]) LastIndexOf(value T, from ...int) int {
	start := len(c.items) - 1
	if len(from) > 0 {
		if from[0] < 0 {
			start = len(c.items) + from[0]
		} else {
			start = min(from[0], start)
		}
	}
	key := identity(value)
	for i := start; i >= 0; i-- {
		if identity(c.items[i]) == key {
			return i
		}
	}
	return -1
}

// Some reports whether fn returns true for any item.
func (c *Chain[T]) Some(fn arr.Predicate[T]) bool {
	return arr.Some(c.view(), fn)
}

// Every reports whether fn returns true for all items. True when empty.
func (c *Chain[T]) Every(fn arr.Predicate[T]) bool {
	return arr.Every(c.view(), fn)
}

// Find returns the first item satisfying fn.
func (c *Chain[T]) Find(fn arr.Predicate[T]) (T, bool) {
	return arr.Find(c.view(), fn)
}

// FindIndex returns the index of the first item satisfying fn, or -1.
func (c *Chain[T]) FindIndex(fn arr.Predicate[T]) int {
	return arr.FindIndex(c.view(), fn)
}

// FindLastIndex returns the index of the last item satisfying fn, or -1.
func (c *Chain[T]) FindLastIndex(fn arr.Predicate[T]) int {
	return arr.FindLastIndex(c.view(), fn)
}
