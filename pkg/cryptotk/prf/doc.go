// Package prf implements a keyed pseudo-random function whose output length
// is part of the type.
//
// A PRF producing n bytes and a PRF producing m bytes are different function
// families even under the same key, and protocols layered on top rely on that
// separation. The output length is therefore a generic marker type rather
// than a call-time argument: Prf[Out16] and Prf[Out32] are distinct Go types,
// and a key threaded into one cannot silently serve the other.
//
// Outputs up to one digest are a single keyed-hash call truncated to length.
// Longer outputs are produced in counter mode, hashing input || counter for
// one digest-sized block per counter value.
package prf
