// Package key implements the fixed-size secret container used by every keyed
// primitive in the toolkit.
//
// A Key holds its material sealed in a memguard enclave: encrypted at rest in
// memory, outside of any reachable Go heap value, and zeroed when the process
// tears it down. The plaintext bytes are only visible inside the callback
// passed to Use, which is the scoped unlock/lock pair of the design: the
// unlocked view is destroyed on every exit path, including panics.
//
// Construction is move-only. New wipes the caller's buffer as the material is
// sealed, so a byte slice that was turned into a Key cannot be read back or
// reused. Handing a *Key to a primitive constructor transfers ownership; the
// caller must not keep using it.
package key
