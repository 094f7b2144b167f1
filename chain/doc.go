// Package chain provides a generic, fluent Chain type that wraps a slice and
// exposes the [arr] helpers as chainable methods.
//
// # Overview
//
// The central type is [Chain][T], an immutable wrapper around a slice of T:
//
//	total := chain.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int, _ []int) bool { return n%2 == 0 }).
//	    Take(3).
//	    Reduce(func(acc, n, _ int, _ []int) int { return acc + n }, 0) // → 12
//
// # Immutability
//
// Constructors copy their input and every non-terminal method returns a new
// Chain built on a fresh slice, leaving the receiver unchanged. Terminal
// methods read the private slice but never hand it out: [Chain.Value] and
// [Chain.ToArray] return copies and callbacks receive a copy.
//
// # Errors
//
// Non-terminal methods with preconditions (Take, Skip, Sample) cannot return
// an error without breaking the chain, so the first failure is recorded and
// carried through the rest of the chain:
//
//	items, err := chain.New(1, 2, 3).Take(-1).Reverse().Value()
//	// errors.Is(err, chain.ErrInvalidArgument) == true
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns *Chain[any]):
//	c.Map(func(n, _ int, _ []int) any { return n * 2 })
//
//	// Package-level (returns *Chain[string], fully typed):
//	chain.Map(c, func(n, _ int, _ []int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [Reduce], [GroupBy], [Flatten], [StatsOf].
package chain
