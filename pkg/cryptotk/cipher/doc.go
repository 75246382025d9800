// Package cipher implements authenticated encryption with per-message subkey
// derivation.
//
// Every message is sealed under a one-time subkey derived from the master key
// and a fresh random nonce, so compromise of a subkey exposes exactly one
// message. The master key is unlocked only for the duration of the derivation.
//
// Wire format: [nonce (16 bytes) || AEAD ciphertext and tag]. Ciphertexts are
// self-contained; nothing besides the master key is needed to decrypt.
package cipher
