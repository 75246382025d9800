package cipher

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/hash"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/key"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/random"
)

const (
	// NonceSize is the number of random bytes prefixed to every ciphertext.
	// The full nonce salts the subkey derivation; the AEAD consumes its
	// first chacha20poly1305.NonceSize bytes.
	NonceSize = 16

	// TagSize is the authentication tag size appended by the AEAD.
	TagSize = chacha20poly1305.Overhead

	// KeySize is the master key size, fixed by the keyed hash used for
	// subkey derivation.
	KeySize = hash.KeySize
)

// subkeyPersonal is the domain-separation tag for per-message subkeys.
const subkeyPersonal = "encryption_key"

// Cipher performs authenticated encryption of byte strings under a single
// master key. Implementations are safe for sequential use only; callers must
// add their own synchronization to share an instance between goroutines.
type Cipher interface {
	// Encrypt seals plaintext into a self-contained ciphertext. The
	// plaintext must not be empty.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a ciphertext produced by Encrypt. A ciphertext that
	// fails authentication yields ErrDecryptionFailure and no plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aeadCipher is the ChaCha20-Poly1305 backed implementation.
type aeadCipher struct {
	master *key.Key
}

// New constructs a Cipher from a KeySize-byte master key. Ownership of the
// key transfers to the cipher; the caller must not use it afterwards.
func New(k *key.Key) (Cipher, error) {
	if k == nil {
		return nil, fmt.Errorf("cipher: nil key: %w", cryptotk.ErrInvalidInput)
	}
	if k.Size() != KeySize {
		return nil, fmt.Errorf("cipher: master key wants %d bytes, got %d: %w",
			KeySize, k.Size(), cryptotk.ErrInvalidKeySize)
	}
	return &aeadCipher{master: k}, nil
}

// NewRandom constructs a Cipher under a fresh random master key.
func NewRandom() (Cipher, error) {
	k, err := key.NewRandom(KeySize)
	if err != nil {
		return nil, err
	}
	return New(k)
}

// CiphertextLength returns the ciphertext size for a plaintext of the given
// length.
func CiphertextLength(plaintextLen int) int {
	return plaintextLen + NonceSize + TagSize
}

// PlaintextLength returns the plaintext size recovered from a ciphertext of
// the given length, or 0 if the ciphertext is too short to be valid.
func PlaintextLength(ciphertextLen int) int {
	if ciphertextLen > NonceSize+TagSize {
		return ciphertextLen - NonceSize - TagSize
	}
	return 0
}

// subkey derives the one-time key for the message carrying nonce. The master
// key is unlocked only while the derivation runs.
func (c *aeadCipher) subkey(nonce []byte) ([]byte, error) {
	var sub []byte
	err := c.master.Use(func(secret []byte) error {
		var derr error
		sub, derr = hash.DeriveSubkey(secret, nonce, subkeyPersonal, chacha20poly1305.KeySize)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *aeadCipher) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("cipher: at least 1 byte must be encrypted: %w",
			cryptotk.ErrInvalidInput)
	}

	out := make([]byte, NonceSize, CiphertextLength(len(plaintext)))
	random.Fill(out[:NonceSize])

	sub, err := c.subkey(out[:NonceSize])
	if err != nil {
		return nil, cryptotk.NewError("cipher.Encrypt", err)
	}
	defer cryptotk.ZeroizeBytes(sub)

	aead, err := chacha20poly1305.New(sub)
	if err != nil {
		return nil, cryptotk.NewError("cipher.Encrypt", err)
	}
	return aead.Seal(out, out[:chacha20poly1305.NonceSize], plaintext, nil), nil
}

func (c *aeadCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) <= NonceSize+TagSize {
		return nil, fmt.Errorf("cipher: ciphertext of %d bytes is below the %d byte minimum: %w",
			len(ciphertext), NonceSize+TagSize+1, cryptotk.ErrInvalidInput)
	}

	nonce := ciphertext[:NonceSize]
	sub, err := c.subkey(nonce)
	if err != nil {
		return nil, cryptotk.NewError("cipher.Decrypt", err)
	}
	defer cryptotk.ZeroizeBytes(sub)

	aead, err := chacha20poly1305.New(sub)
	if err != nil {
		return nil, cryptotk.NewError("cipher.Decrypt", err)
	}

	buf := make([]byte, 0, PlaintextLength(len(ciphertext)))
	plaintext, err := aead.Open(buf, nonce[:chacha20poly1305.NonceSize], ciphertext[NonceSize:], nil)
	if err != nil {
		// Open wipes whatever it wrote before the tag check failed; wipe
		// again here so no partial plaintext survives any code path.
		cryptotk.ZeroizeBytes(buf[:cap(buf)])
		return nil, cryptotk.NewError("cipher.Decrypt", cryptotk.ErrDecryptionFailure)
	}
	return plaintext, nil
}
