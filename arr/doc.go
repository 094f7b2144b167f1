// Package arr provides standalone, generic helper functions over plain Go
// slices: map/filter/reduce, grouping and partitioning, set algebra,
// flattening, chunking, sampling and summary statistics.
//
// # Slice helpers
//
// Every helper operates on a plain []T value — no wrapper type required —
// and never mutates its input. Operations that "change" a slice return a new
// one:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int, _ []int) bool { return n%2 == 0 })
//	names  := arr.Map(users, func(u User, _ int, _ []User) string { return u.Name })
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// Callbacks receive (item, index, items) so index-dependent logic does not
// need a separate helper. Ignore what you do not need with _.
//
// # Errors
//
// Helpers with numeric preconditions (Chunk, Take, Skip, Sample) return an
// error wrapping [ErrInvalidArgument] when the precondition is violated.
// Empty input is never an error: non-terminal helpers return an empty slice.
//
// # Grouping
//
// [GroupBy] returns a [Groups] value that remembers the order in which keys
// were first seen, so iteration is deterministic:
//
//	g := arr.GroupBy(words, func(w string) int { return len(w) })
//	for k, ws := range g.All() {
//	    fmt.Println(k, ws)
//	}
//
// # Async helpers
//
// [MapAsync] and [FilterAsync] run one goroutine per element (optionally
// capped with [WithConcurrency]) and return results in source order. The
// first failure is returned and the shared context is cancelled.
package arr
