// Package hash wraps the keyed hash primitive the toolkit is built on,
// BLAKE2b, behind a fixed byte-layout contract. The cipher derives per-message
// subkeys through DeriveSubkey, the PRF expands keyed digests through
// NewKeyed, and the multiset hash maps elements to curve points through Sum.
package hash

import (
	"fmt"
	stdhash "hash"

	"golang.org/x/crypto/blake2b"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
)

const (
	// DigestSize is the full output size of the hash function.
	DigestSize = blake2b.Size

	// BlockSize is the internal block size of the hash function.
	BlockSize = blake2b.BlockSize

	// KeySize is the key size expected by the keyed mode.
	KeySize = 32

	// personalSize is the width of the domain-separation tag mixed into
	// subkey derivation. Shorter tags are zero padded to this width so the
	// derivation input layout is fixed.
	personalSize = 16
)

// Sum returns the unkeyed digest of data.
func Sum(data []byte) [DigestSize]byte {
	return blake2b.Sum512(data)
}

// NewKeyed returns a keyed hash producing DigestSize-byte digests. The key
// must be KeySize bytes.
func NewKeyed(key []byte) (stdhash.Hash, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("hash: keyed hash wants %d key bytes, got %d: %w",
			KeySize, len(key), cryptotk.ErrInvalidKeySize)
	}
	return blake2b.New512(key)
}

// DeriveSubkey derives n bytes of subkey material from a master key, a salt,
// and a fixed domain-separation tag. The derivation is a keyed hash over
// `personal || salt` with personal zero padded to a fixed 16-byte field, so
// subkeys for different purposes are unrelated even under the same master key
// and salt. n must be between 1 and DigestSize.
func DeriveSubkey(key, salt []byte, personal string, n int) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("hash: subkey derivation wants %d key bytes, got %d: %w",
			KeySize, len(key), cryptotk.ErrInvalidKeySize)
	}
	if len(personal) > personalSize {
		return nil, fmt.Errorf("hash: personalization %q longer than %d bytes: %w",
			personal, personalSize, cryptotk.ErrInvalidInput)
	}
	h, err := blake2b.New(n, key)
	if err != nil {
		return nil, fmt.Errorf("hash: subkey length %d: %w", n, cryptotk.ErrInvalidInput)
	}

	var tag [personalSize]byte
	copy(tag[:], personal)
	h.Write(tag[:])
	h.Write(salt)
	return h.Sum(nil), nil
}
