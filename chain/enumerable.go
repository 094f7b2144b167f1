package chain

import "github.com/hasbyte1/go-array-utils/arr"

// Enumerable is the interface satisfied by [Chain][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Chain type.
type Enumerable[T any] interface {
	// ToArray returns a copy of every item as a plain Go slice.
	ToArray() []T

	// Count returns the number of items.
	Count() int

	// Err returns the first error recorded by a non-terminal operation.
	Err() error

	// Filter returns a new chain containing only items for which fn
	// returns true.
	Filter(fn arr.Predicate[T]) *Chain[T]

	// First returns the first item, or the zero value and false when empty.
	First() (T, bool)

	// IsEmpty reports whether the chain contains no items.
	IsEmpty() bool

	// Last returns the last item, or the zero value and false when empty.
	Last() (T, bool)
}

var _ Enumerable[int] = (*Chain[int])(nil)
