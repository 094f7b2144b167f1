package fn

import "errors"

// Sentinel errors returned by fn helpers.
var (
	// ErrInvalidArgument is returned when a helper is configured with an
	// unusable argument, such as composing zero functions or a negative
	// curry arity.
	ErrInvalidArgument = errors.New("fn: invalid argument")

	// ErrRetryExhausted is returned by a [WithRetry] wrapper when every
	// attempt failed. The error also wraps the last attempt's failure:
	//
	//	_, err := call(ctx)
	//	errors.Is(err, fn.ErrRetryExhausted) // true
	//	errors.Is(err, io.ErrUnexpectedEOF)  // true if the last attempt failed with it
	ErrRetryExhausted = errors.New("fn: retry attempts exhausted")
)
