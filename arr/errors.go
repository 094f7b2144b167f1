package arr

import "errors"

// Sentinel errors returned by arr helpers.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.Chunk(items, 0)
//	if errors.Is(err, arr.ErrInvalidArgument) {
//	    // size was not positive
//	}
var (
	// ErrInvalidArgument is returned when a numeric parameter violates its
	// precondition (non-positive chunk size, negative take/skip/sample count).
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrTypeMismatch is returned when an operation is invoked on data of the
	// wrong shape, e.g. statistics requested on non-numeric elements.
	ErrTypeMismatch = errors.New("arr: type mismatch")
)
