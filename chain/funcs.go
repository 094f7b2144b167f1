package chain

import "github.com/hasbyte1/go-array-utils/arr"

// This file contains package-level generic functions for operations that
// transform a Chain[T] into a Chain[U] or into a value of another type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chaining:
//
//	labels := chain.Map(
//	    chain.New(1, 2, 3, 4, 5).Filter(func(n, _ int, _ []int) bool { return n%2 == 0 }),
//	    func(n, _ int, _ []int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Chain[U]. A recorded error
// is carried over to the result.
//
//	labels := chain.Map(chain.New(1, 2, 3),
//	    func(n, _ int, _ []int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Chain[T], fn arr.Mapper[T, U]) *Chain[U] {
	if c.err != nil {
		return failed[U](c.err)
	}
	return owned(arr.Map(c.view(), fn))
}

// FlatMap applies fn to every item and concatenates the resulting slices.
//
//	words := chain.FlatMap(chain.New("hello world", "foo bar"),
//	    func(s string, _ int, _ []string) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Chain[T], fn arr.Mapper[T, []U]) *Chain[U] {
	if c.err != nil {
		return failed[U](c.err)
	}
	return owned(arr.FlatMap(c.view(), fn))
}

// Flatten concatenates a chain of slices into a chain of their elements.
func Flatten[T any](c *Chain[[]T]) *Chain[T] {
	if c.err != nil {
		return failed[T](c.err)
	}
	return owned(arr.Collapse(c.items))
}

// Reduce folds Chain[T] into a single value of type U.
//
//	total := chain.Reduce(chain.New("a", "bb", "ccc"),
//	    func(acc int, s string, _ int, _ []string) int { return acc + len(s) }, 0)
func Reduce[T, U any](c *Chain[T], fn arr.Reducer[T, U], initial U) U {
	return arr.Reduce(c.view(), fn, initial)
}

// GroupBy groups items by the comparable key K extracted by fn, keeping keys
// in first-seen order.
//
//	byDept := chain.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Chain[T], fn func(T) K) *arr.Groups[K, T] {
	return arr.GroupBy(c.items, fn)
}

// StatsOf summarises a numeric chain without the type checks of
// [Chain.Stats]. An empty chain yields Stats with only Length set.
func StatsOf[N arr.Number](c *Chain[N]) arr.Stats {
	return arr.GetStats(c.items)
}

// Zip pairs the items of a and b index by index, stopping at the shorter.
func Zip[A, B any](a *Chain[A], b *Chain[B]) *Chain[arr.Pair[A, B]] {
	if a.err != nil {
		return failed[arr.Pair[A, B]](a.err)
	}
	if b.err != nil {
		return failed[arr.Pair[A, B]](b.err)
	}
	return owned(arr.Zip(a.items, b.items))
}
