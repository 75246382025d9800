package cryptotk

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern discussed in golang/go#33325 and used by security-
// focused libraries. It cannot guarantee complete memory sanitization, since
// the garbage collector may have copied the data, but it is the expected
// hygiene for buffers that held derived key material or rejected plaintext.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
