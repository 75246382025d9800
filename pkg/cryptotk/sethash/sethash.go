package sethash

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
)

// SetHash is the accumulated hash of a multiset of byte strings. The zero
// element (empty set) is produced by New; all other states are reached by
// Add/Remove/AddSet/RemoveSet or loaded with FromHex. Instances are safe for
// sequential use only.
type SetHash struct {
	engine *Engine
	state  secp256k1.JacobianPoint
}

// New returns the hash of the empty set under the default engine.
func New() *SetHash {
	return NewWithEngine(DefaultEngine())
}

// NewWithEngine returns the hash of the empty set under an explicit engine.
func NewWithEngine(e *Engine) *SetHash {
	return &SetHash{engine: e}
}

// NewFromElements returns the hash of the given elements under the default
// engine.
func NewFromElements(elements ...[]byte) *SetHash {
	h := New()
	for _, el := range elements {
		h.Add(el)
	}
	return h
}

// FromHex reconstructs a state persisted with Hex, under the default engine.
func FromHex(s string) (*SetHash, error) {
	return FromHexWithEngine(DefaultEngine(), s)
}

// FromHexWithEngine reconstructs a persisted state under an explicit engine.
func FromHexWithEngine(e *Engine, s string) (*SetHash, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("sethash: %v: %w", err, cryptotk.ErrInvalidInput)
	}
	h := NewWithEngine(e)
	if err := e.decode(raw, &h.state); err != nil {
		return nil, err
	}
	return h, nil
}

// Add folds one element into the hash.
func (h *SetHash) Add(element []byte) {
	var p secp256k1.JacobianPoint
	h.engine.mapToPoint(element, &p)
	h.engine.add(&h.state, &p)
}

// Remove cancels one copy of element out of the hash. Removing an element
// that was never added yields a well-formed but meaningless state; the caller
// is responsible for only removing real members.
func (h *SetHash) Remove(element []byte) {
	var p secp256k1.JacobianPoint
	h.engine.mapToPoint(element, &p)
	h.engine.negate(&p)
	h.engine.add(&h.state, &p)
}

// AddSet folds other's whole multiset into the hash in a single group
// operation, regardless of how many elements other represents.
func (h *SetHash) AddSet(other *SetHash) {
	// Copy first so h.AddSet(h) doubles cleanly.
	var p secp256k1.JacobianPoint
	p.Set(&other.state)
	h.engine.add(&h.state, &p)
}

// RemoveSet cancels other's whole multiset out of the hash in a single group
// operation. The same caller contract as Remove applies.
func (h *SetHash) RemoveSet(other *SetHash) {
	var p secp256k1.JacobianPoint
	p.Set(&other.state)
	h.engine.negate(&p)
	h.engine.add(&h.state, &p)
}

// Invert returns the inverse state: combining it with h via AddSet yields the
// empty-set hash. h itself is unchanged.
func (h *SetHash) Invert() *SetHash {
	inv := NewWithEngine(h.engine)
	inv.state.Set(&h.state)
	h.engine.negate(&inv.state)
	return inv
}

// Copy returns an independent SetHash with the same state and engine.
func (h *SetHash) Copy() *SetHash {
	c := NewWithEngine(h.engine)
	c.state.Set(&h.state)
	return c
}

// Hex returns the canonical, lossless encoding of the state: 66 hex
// characters, all zeros for the empty set, a compressed curve point
// otherwise.
func (h *SetHash) Hex() string {
	return hex.EncodeToString(h.engine.encode(&h.state))
}

// String implements fmt.Stringer with the Hex encoding.
func (h *SetHash) String() string {
	return h.Hex()
}

// Equal reports whether two hashes represent the same group element. The
// comparison is algebraic, not an encoding comparison, and is only meaningful
// for states built under the same engine configuration.
func (h *SetHash) Equal(other *SetHash) bool {
	if other == nil {
		return false
	}
	return h.engine.equal(&h.state, &other.state)
}
