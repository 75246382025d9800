// Package random supplies cryptographically secure random bytes.
//
// Every nonce and fresh key in the toolkit is drawn through this package. An
// entropy source failure is not a recoverable condition for a cryptographic
// library, so the functions panic instead of returning an error; callers must
// not attempt to retry with weaker randomness.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Fill overwrites buf with random bytes from the platform CSPRNG.
func Fill(buf []byte) {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(fmt.Sprintf("random: entropy source failed: %v", err))
	}
}

// Bytes returns n fresh random bytes.
func Bytes(n int) []byte {
	buf := make([]byte, n)
	Fill(buf)
	return buf
}
