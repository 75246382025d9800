// Package cryptotk exposes opaque, high-level cryptographic primitives for
// searchable-encryption protocol implementations: an authenticated cipher with
// per-message subkey derivation, a keyed pseudo-random function with a
// type-level output length, and an incremental elliptic-curve multiset hash.
// The low-level cipher, hash, and curve arithmetic come from established
// libraries; this module only layers the construction semantics on top, so the
// public contracts never change when a backend is swapped.
package cryptotk
