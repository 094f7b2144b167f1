package keyhash

import "errors"

// Sentinel errors returned by keyhash operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := m.Driver("md5")
//	if errors.Is(err, keyhash.ErrDriverNotFound) {
//	    // register it first
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a blake2b
	// digest size above 64 bytes).
	ErrInvalidOption = errors.New("keyhash: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Key] when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("keyhash: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("keyhash: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("keyhash: hasher must not be nil")
)
