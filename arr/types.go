package arr

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Predicate reports whether item (found at index in items) is selected.
type Predicate[T any] func(item T, index int, items []T) bool

// Mapper transforms item (found at index in items) into a U.
type Mapper[T, U any] func(item T, index int, items []T) U

// Reducer folds item into the accumulator acc.
type Reducer[T, U any] func(acc U, item T, index int, items []T) U

// Number is the set of element types accepted by [GetStats].
type Number interface {
	constraints.Integer | constraints.Float
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
