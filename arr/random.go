package arr

import (
	"fmt"
	"math/rand/v2"
)

// Source supplies the randomness used by [ShuffleWith] and [SampleWith].
// *rand.Rand from math/rand/v2 satisfies it, so tests can inject a seeded
// generator:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	arr.ShuffleWith(items, src)
type Source interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is the package-level math/rand/v2 generator.
var DefaultSource Source = globalSource{}

// Shuffle returns a randomly permuted copy of items using [DefaultSource].
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, DefaultSource)
}

// ShuffleWith returns a randomly permuted copy of items. It runs a
// Fisher–Yates pass on the copy, swapping from the last index down to 1, so
// every permutation is equally likely given a uniform src.
func ShuffleWith[T any](items []T, src Source) []T {
	out := clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns count elements drawn without replacement using
// [DefaultSource].
func Sample[T any](items []T, count int) ([]T, error) {
	return SampleWith(items, count, DefaultSource)
}

// SampleWith returns count elements drawn without replacement. When count is
// at least len(items) every element is returned in shuffled order.
// Returns an error wrapping [ErrInvalidArgument] if count < 0.
func SampleWith[T any](items []T, count int, src Source) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: sample count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	shuffled := ShuffleWith(items, src)
	if count >= len(shuffled) {
		return shuffled, nil
	}
	return shuffled[:count], nil
}
