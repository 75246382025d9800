// Package sethash implements an incremental multiset hash over sets of byte
// strings, backed by elliptic-curve group arithmetic (ECMH).
//
// Each element maps to a point on secp256k1 and the hash of a multiset is the
// group sum of its element points. Updates are incremental: adding or removing
// an element is one group operation, and two accumulated hashes combine in one
// group operation regardless of how many elements each one represents. The
// hash is order independent and cancels exactly, so add(x) followed by
// remove(x) restores the previous state.
//
// Removing an element (or a set) that was never added produces a well-formed
// group element that does not correspond to any real multiset. The group
// cannot tell a legitimate negative count from misuse; tracking membership is
// the caller's contract.
package sethash
