package chain

import "github.com/hasbyte1/go-array-utils/arr"

// Sentinel errors returned by Chain operations. They are the [arr] sentinels,
// so errors.Is matches across both packages.
var (
	// ErrInvalidArgument is returned when a numeric parameter violates its
	// precondition (zero Range step, negative Repeat/Take/Skip/Sample count).
	ErrInvalidArgument = arr.ErrInvalidArgument

	// ErrTypeMismatch is returned by [Chain.Stats] when the elements are not
	// numeric or the chain is empty.
	ErrTypeMismatch = arr.ErrTypeMismatch
)
