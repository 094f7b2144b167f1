package keyhash

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DriverName identifies a key hashing driver.
type DriverName string

const (
	// DriverPlain keeps the canonical text as the key.
	DriverPlain DriverName = "plain"
	// DriverBlake2b selects the BLAKE2b driver (the default).
	DriverBlake2b DriverName = "blake2b"
	// DriverSHA3 selects the SHA-3 driver.
	DriverSHA3 DriverName = "sha3"
	// DriverXXHash selects the non-cryptographic 64-bit xxHash driver.
	DriverXXHash DriverName = "xxhash"
)

// Hasher condenses a canonical payload into a key string.
//
// All implementations must be safe for concurrent use by multiple goroutines
// and deterministic: equal payloads must give equal keys.
type Hasher interface {
	// Sum returns the key for payload.
	Sum(payload []byte) string

	// Driver returns the driver name this hasher is registered under by
	// default.
	Driver() DriverName
}

// ─── Plain ────────────────────────────────────────────────────────────────────

// PlainHasher returns the canonical payload unchanged. Keys are readable and
// never collide, at the cost of holding the full argument text per entry.
type PlainHasher struct{}

// Sum implements [Hasher].
func (PlainHasher) Sum(payload []byte) string { return string(payload) }

// Driver implements [Hasher].
func (PlainHasher) Driver() DriverName { return DriverPlain }

// ─── BLAKE2b ──────────────────────────────────────────────────────────────────

// Blake2bOptions configures a [Blake2bHasher].
type Blake2bOptions struct {
	// Size is the digest length in bytes, 1 to 64.
	Size int
}

// DefaultBlake2bOptions returns a 32-byte digest.
func DefaultBlake2bOptions() Blake2bOptions {
	return Blake2bOptions{Size: blake2b.Size256}
}

// Blake2bHasher hashes payloads with unkeyed BLAKE2b and hex-encodes the
// digest.
type Blake2bHasher struct {
	size int
}

// NewBlake2bHasher validates opts and returns a hasher.
func NewBlake2bHasher(opts Blake2bOptions) (*Blake2bHasher, error) {
	if opts.Size < 1 || opts.Size > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b size must be between 1 and %d, got %d",
			ErrInvalidOption, blake2b.Size, opts.Size)
	}
	return &Blake2bHasher{size: opts.Size}, nil
}

// Sum implements [Hasher].
func (h *Blake2bHasher) Sum(payload []byte) string {
	// Size was validated in the constructor and the key is nil, so New cannot fail.
	d, _ := blake2b.New(h.size, nil)
	return digest(d, payload)
}

// Driver implements [Hasher].
func (h *Blake2bHasher) Driver() DriverName { return DriverBlake2b }

// ─── SHA-3 ────────────────────────────────────────────────────────────────────

// SHA3Options configures a [SHA3Hasher].
type SHA3Options struct {
	// Bits is the output size: 224, 256, 384 or 512.
	Bits int
}

// DefaultSHA3Options returns SHA3-256.
func DefaultSHA3Options() SHA3Options {
	return SHA3Options{Bits: 256}
}

// SHA3Hasher hashes payloads with SHA-3 and hex-encodes the digest.
type SHA3Hasher struct {
	newHash func() hash.Hash
}

// NewSHA3Hasher validates opts and returns a hasher.
func NewSHA3Hasher(opts SHA3Options) (*SHA3Hasher, error) {
	var fn func() hash.Hash
	switch opts.Bits {
	case 224:
		fn = sha3.New224
	case 256:
		fn = sha3.New256
	case 384:
		fn = sha3.New384
	case 512:
		fn = sha3.New512
	default:
		return nil, fmt.Errorf("%w: sha3 bits must be 224, 256, 384 or 512, got %d",
			ErrInvalidOption, opts.Bits)
	}
	return &SHA3Hasher{newHash: fn}, nil
}

// Sum implements [Hasher].
func (h *SHA3Hasher) Sum(payload []byte) string {
	return digest(h.newHash(), payload)
}

// Driver implements [Hasher].
func (h *SHA3Hasher) Driver() DriverName { return DriverSHA3 }

// ─── xxHash ───────────────────────────────────────────────────────────────────

// XXHasher hashes payloads with 64-bit xxHash. It is the fastest driver but
// its 16-character keys are only collision-resistant against accidental, not
// crafted, input.
type XXHasher struct{}

// Sum implements [Hasher].
func (XXHasher) Sum(payload []byte) string {
	return strconv.FormatUint(xxhash.Sum64(payload), 16)
}

// Driver implements [Hasher].
func (XXHasher) Driver() DriverName { return DriverXXHash }

func digest(h hash.Hash, payload []byte) string {
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
