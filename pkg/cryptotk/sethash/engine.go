package sethash

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/hash"
)

// EncodedSize is the serialized size of a set hash state: one compressed
// secp256k1 point, with the identity spelled as all zero bytes.
const EncodedSize = 33

// Engine is the shared multiset-hash configuration: the curve group together
// with the hash-to-point mapping. Engines are immutable after construction
// and safe to share between any number of SetHash instances. Two states are
// only comparable under the same engine.
type Engine struct {
	hashFn func([]byte) [hash.DigestSize]byte
}

// NewEngine constructs the standard engine: secp256k1 with a
// try-and-increment BLAKE2b mapping.
func NewEngine() *Engine {
	return &Engine{hashFn: hash.Sum}
}

// defaultEngine is built once, on first use, so there is no package init
// ordering to reason about.
var defaultEngine = sync.OnceValue(NewEngine)

// DefaultEngine returns the process-wide shared engine.
func DefaultEngine() *Engine {
	return defaultEngine()
}

// mapToPoint maps data to a curve point by try-and-increment: the candidate x
// coordinate is the leading field-width bytes of hashFn(counter || data), and
// the first counter giving a point on the curve wins, taking the even-y root.
// Roughly half the candidates succeed, so the loop terminates after a couple
// of iterations in expectation. The mapping is deterministic in data and not
// constant time; elements fed to the multiset hash are identifiers, not
// secrets.
func (e *Engine) mapToPoint(data []byte, result *secp256k1.JacobianPoint) {
	buf := make([]byte, 4+len(data))
	copy(buf[4:], data)

	for counter := uint32(0); ; counter++ {
		binary.LittleEndian.PutUint32(buf[:4], counter)
		digest := e.hashFn(buf)

		var x secp256k1.FieldVal
		if x.SetByteSlice(digest[:32]) {
			// Candidate exceeded the field prime.
			continue
		}
		var y secp256k1.FieldVal
		if !secp256k1.DecompressY(&x, false, &y) {
			// x is not on the curve.
			continue
		}
		result.X.Set(&x)
		result.Y.Set(y.Normalize())
		result.Z.SetInt(1)
		return
	}
}

// encode serializes a state to its canonical EncodedSize-byte form.
func (e *Engine) encode(state *secp256k1.JacobianPoint) []byte {
	out := make([]byte, EncodedSize)
	if isInfinity(state) {
		return out
	}

	var p secp256k1.JacobianPoint
	p.Set(state)
	p.ToAffine()
	p.X.Normalize()
	p.Y.Normalize()

	out[0] = 0x02
	if p.Y.IsOdd() {
		out[0] = 0x03
	}
	p.X.PutBytesUnchecked(out[1:])
	return out
}

// decode parses the canonical encoding back into a state.
func (e *Engine) decode(encoded []byte, state *secp256k1.JacobianPoint) error {
	if len(encoded) != EncodedSize {
		return fmt.Errorf("sethash: encoded state wants %d bytes, got %d: %w",
			EncodedSize, len(encoded), cryptotk.ErrInvalidInput)
	}

	allZero := true
	for _, b := range encoded {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		*state = secp256k1.JacobianPoint{}
		return nil
	}

	if encoded[0] != 0x02 && encoded[0] != 0x03 {
		return fmt.Errorf("sethash: unknown point prefix %#02x: %w",
			encoded[0], cryptotk.ErrInvalidInput)
	}

	var x secp256k1.FieldVal
	if x.SetByteSlice(encoded[1:]) {
		return fmt.Errorf("sethash: x coordinate overflows the field: %w",
			cryptotk.ErrInvalidInput)
	}
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&x, encoded[0] == 0x03, &y) {
		return fmt.Errorf("sethash: x coordinate is not on the curve: %w",
			cryptotk.ErrInvalidInput)
	}

	state.X.Set(&x)
	state.Y.Set(y.Normalize())
	state.Z.SetInt(1)
	return nil
}

// add accumulates p into state: state <- state + p.
func (e *Engine) add(state, p *secp256k1.JacobianPoint) {
	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(state, p, &sum)
	normalize(&sum)
	state.Set(&sum)
}

// negate flips p in place: p <- -p. Negating the identity is a no-op.
func (e *Engine) negate(p *secp256k1.JacobianPoint) {
	if isInfinity(p) {
		return
	}
	p.Y.Normalize()
	p.Y.Negate(1).Normalize()
}

// equal reports group-element equality of two Jacobian states without
// converting to affine coordinates: (X1, Y1, Z1) and (X2, Y2, Z2) denote the
// same point iff X1*Z2^2 == X2*Z1^2 and Y1*Z2^3 == Y2*Z1^3.
func (e *Engine) equal(a, b *secp256k1.JacobianPoint) bool {
	if isInfinity(a) || isInfinity(b) {
		return isInfinity(a) == isInfinity(b)
	}

	var p, q secp256k1.JacobianPoint
	p.Set(a)
	q.Set(b)
	normalize(&p)
	normalize(&q)

	var z1z1, z2z2, u1, u2 secp256k1.FieldVal
	z1z1.SquareVal(&p.Z)
	z2z2.SquareVal(&q.Z)
	u1.Mul2(&p.X, &z2z2)
	u2.Mul2(&q.X, &z1z1)
	if !u1.Normalize().Equals(u2.Normalize()) {
		return false
	}

	var z1cubed, z2cubed, s1, s2 secp256k1.FieldVal
	z1cubed.Mul2(&z1z1, &p.Z)
	z2cubed.Mul2(&z2z2, &q.Z)
	s1.Mul2(&p.Y, &z2cubed)
	s2.Mul2(&q.Y, &z1cubed)
	return s1.Normalize().Equals(s2.Normalize())
}

func normalize(p *secp256k1.JacobianPoint) {
	p.X.Normalize()
	p.Y.Normalize()
	p.Z.Normalize()
}

func isInfinity(p *secp256k1.JacobianPoint) bool {
	return p.Z.IsZero()
}
