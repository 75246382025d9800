package prf

import (
	"fmt"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/hash"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/key"
)

// KeySize is the PRF key size, fixed by the underlying keyed hash.
const KeySize = hash.KeySize

// maxOutputLength bounds the counter-mode expansion: the counter is a single
// byte, so at most 256 digest-sized blocks can be produced under one input.
const maxOutputLength = 256 * hash.DigestSize

// OutputLength is the marker constraint carrying a PRF instantiation's output
// size. Implementations must be stateless; the method is called on the zero
// value.
type OutputLength interface {
	PrfOutputLength() int
}

// Common output lengths. Protocols needing another size declare their own
// marker type; two markers reporting the same length still name two distinct
// PRF types, which is exactly the point.
type (
	// Out16 selects 16-byte outputs.
	Out16 struct{}
	// Out32 selects 32-byte outputs.
	Out32 struct{}
	// Out64 selects full-digest 64-byte outputs.
	Out64 struct{}
	// Out128 selects 128-byte outputs, exercising counter-mode expansion.
	Out128 struct{}
)

func (Out16) PrfOutputLength() int  { return 16 }
func (Out32) PrfOutputLength() int  { return 32 }
func (Out64) PrfOutputLength() int  { return 64 }
func (Out128) PrfOutputLength() int { return 128 }

// Prf is a keyed pseudo-random function with a fixed, type-level output
// length. Instances are safe for sequential use only.
type Prf[L OutputLength] struct {
	key *key.Key
}

// outputLength returns the length selected by the marker type L.
func outputLength[L OutputLength]() int {
	var l L
	return l.PrfOutputLength()
}

// New constructs a PRF from a KeySize-byte key. Ownership of the key
// transfers to the PRF; in particular the caller must never thread the same
// key into a PRF of another output length.
func New[L OutputLength](k *key.Key) (*Prf[L], error) {
	if n := outputLength[L](); n <= 0 || n > maxOutputLength {
		return nil, fmt.Errorf("prf: output length %d out of range [1, %d]: %w",
			n, maxOutputLength, cryptotk.ErrInvalidInput)
	}
	if k == nil {
		return nil, fmt.Errorf("prf: nil key: %w", cryptotk.ErrInvalidInput)
	}
	if k.Size() != KeySize {
		return nil, fmt.Errorf("prf: key wants %d bytes, got %d: %w",
			KeySize, k.Size(), cryptotk.ErrInvalidKeySize)
	}
	return &Prf[L]{key: k}, nil
}

// NewRandom constructs a PRF under a fresh random key.
func NewRandom[L OutputLength]() (*Prf[L], error) {
	k, err := key.NewRandom(KeySize)
	if err != nil {
		return nil, err
	}
	return New[L](k)
}

// OutputLength returns the fixed output size of this PRF instance.
func (p *Prf[L]) OutputLength() int {
	return outputLength[L]()
}

// Evaluate computes the PRF over input, returning exactly OutputLength bytes.
// The computation is deterministic for a fixed key. A nil input is rejected;
// the empty (non-nil) input is a valid message.
func (p *Prf[L]) Evaluate(input []byte) ([]byte, error) {
	if input == nil {
		return nil, fmt.Errorf("prf: nil input: %w", cryptotk.ErrInvalidInput)
	}

	n := outputLength[L]()
	out := make([]byte, 0, n)
	err := p.key.Use(func(secret []byte) error {
		if n <= hash.DigestSize {
			digest, err := keyedDigest(secret, input, nil)
			if err != nil {
				return err
			}
			out = append(out, digest[:n]...)
			cryptotk.ZeroizeBytes(digest)
			return nil
		}

		// Counter-mode expansion: block i is the keyed digest of
		// input || byte(i), the last block truncated to what remains.
		for block := 0; len(out) < n; block++ {
			digest, err := keyedDigest(secret, input, []byte{byte(block)})
			if err != nil {
				return err
			}
			take := min(hash.DigestSize, n-len(out))
			out = append(out, digest[:take]...)
			cryptotk.ZeroizeBytes(digest)
		}
		return nil
	})
	if err != nil {
		return nil, cryptotk.NewError("prf.Evaluate", err)
	}
	return out, nil
}

// DeriveKey evaluates the PRF over input and seals the result as a new key of
// OutputLength bytes. The intermediate output buffer is consumed by the key
// construction and never survives in the clear.
func (p *Prf[L]) DeriveKey(input []byte) (*key.Key, error) {
	out, err := p.Evaluate(input)
	if err != nil {
		return nil, err
	}
	k, err := key.New(out)
	if err != nil {
		cryptotk.ZeroizeBytes(out)
		return nil, cryptotk.NewError("prf.DeriveKey", err)
	}
	return k, nil
}

func keyedDigest(secret, input, suffix []byte) ([]byte, error) {
	h, err := hash.NewKeyed(secret)
	if err != nil {
		return nil, err
	}
	h.Write(input)
	if len(suffix) > 0 {
		h.Write(suffix)
	}
	return h.Sum(nil), nil
}
