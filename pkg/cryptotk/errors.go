package cryptotk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates an input the primitive rejects outright:
	// an empty plaintext, a nil PRF input, or a ciphertext shorter than the
	// minimum valid length. Nothing is computed and no state changes.
	ErrInvalidInput = errors.New("cryptotk: invalid input")

	// ErrDecryptionFailure indicates AEAD tag verification failed. The
	// ciphertext must be treated as tampered or corrupt; no plaintext is
	// ever returned alongside this error.
	ErrDecryptionFailure = errors.New("cryptotk: decryption failed")

	// ErrInvalidKeySize indicates a key of the wrong size was supplied to a
	// primitive constructor. This is a programming error, not a condition to
	// recover from at runtime.
	ErrInvalidKeySize = errors.New("cryptotk: invalid key size")

	// ErrKeyLocked indicates the secret material of a key could not be
	// unlocked for a scoped access.
	ErrKeyLocked = errors.New("cryptotk: key material unavailable")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // operation that failed, e.g. "cipher.Encrypt"
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cryptotk.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with operation context. Sentinel errors remain reachable
// through errors.Is.
func NewError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
