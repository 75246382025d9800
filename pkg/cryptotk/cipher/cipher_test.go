package cipher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/cipher"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/key"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/random"
)

func newCipher(t *testing.T) cipher.Cipher {
	t.Helper()
	c, err := cipher.NewRandom()
	require.NoError(t, err)
	return c
}

func TestRoundTrip(t *testing.T) {
	c := newCipher(t)

	for _, n := range []int{1, 13, 16, 64, 1000, 65536} {
		plaintext := random.Bytes(n)

		ciphertext, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		require.Len(t, ciphertext, cipher.CiphertextLength(n))

		got, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

// Encrypting a 13-byte plaintext yields a 45-byte ciphertext with the 16-byte
// nonce and 16-byte tag embedded; decryption restores the original bytes and
// a corrupted final byte is rejected.
func TestThirteenByteScenario(t *testing.T) {
	c := newCipher(t)
	plaintext := []byte("13 byte input")
	require.Len(t, plaintext, 13)

	ciphertext, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	require.Len(t, ciphertext, 45)

	got, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)

	ciphertext[len(ciphertext)-1]++
	_, err = c.Decrypt(ciphertext)
	require.ErrorIs(t, err, cryptotk.ErrDecryptionFailure)
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	c := newCipher(t)

	_, err := c.Encrypt(nil)
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)

	_, err = c.Encrypt([]byte{})
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)
}

func TestDecryptTooShort(t *testing.T) {
	c := newCipher(t)

	for _, n := range []int{0, 1, cipher.NonceSize, cipher.NonceSize + cipher.TagSize} {
		_, err := c.Decrypt(make([]byte, n))
		require.ErrorIs(t, err, cryptotk.ErrInvalidInput, "length %d", n)
	}
}

func TestTamperDetection(t *testing.T) {
	c := newCipher(t)
	plaintext := []byte("integrity matters")

	ciphertext, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	// Flip every bit of the ciphertext in turn, covering the nonce, the
	// body, and the tag. Each altered message must be rejected.
	for i := range ciphertext {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), ciphertext...)
			tampered[i] ^= 1 << bit

			_, err := c.Decrypt(tampered)
			require.ErrorIs(t, err, cryptotk.ErrDecryptionFailure,
				"flip byte %d bit %d went undetected", i, bit)
		}
	}
}

func TestFreshNoncePerMessage(t *testing.T) {
	c := newCipher(t)
	plaintext := []byte("same plaintext")

	c1, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	c2, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	require.False(t, bytes.Equal(c1, c2), "two encryptions produced identical ciphertexts")
	require.False(t, bytes.Equal(c1[:cipher.NonceSize], c2[:cipher.NonceSize]),
		"nonce reused across messages")
}

func TestDistinctKeysCannotDecrypt(t *testing.T) {
	c1 := newCipher(t)
	c2 := newCipher(t)

	ciphertext, err := c1.Encrypt([]byte("for c1 only"))
	require.NoError(t, err)

	_, err = c2.Decrypt(ciphertext)
	require.ErrorIs(t, err, cryptotk.ErrDecryptionFailure)
}

func TestLengthContracts(t *testing.T) {
	for _, l := range []int{1, 13, 255, 4096} {
		cl := cipher.CiphertextLength(l)
		require.Equal(t, l+cipher.NonceSize+cipher.TagSize, cl)
		require.Equal(t, l, cipher.PlaintextLength(cl))
	}
	require.Equal(t, 0, cipher.PlaintextLength(0))
	require.Equal(t, 0, cipher.PlaintextLength(cipher.NonceSize+cipher.TagSize))
}

func TestNewRejectsWrongKeySize(t *testing.T) {
	k, err := key.NewRandom(16)
	require.NoError(t, err)

	_, err = cipher.New(k)
	require.ErrorIs(t, err, cryptotk.ErrInvalidKeySize)

	_, err = cipher.New(nil)
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)
}

func TestSameKeySameCiphertexts(t *testing.T) {
	material := random.Bytes(cipher.KeySize)

	k1, err := key.New(append([]byte(nil), material...))
	require.NoError(t, err)
	k2, err := key.New(material)
	require.NoError(t, err)

	c1, err := cipher.New(k1)
	require.NoError(t, err)
	c2, err := cipher.New(k2)
	require.NoError(t, err)

	ciphertext, err := c1.Encrypt([]byte("cross-instance"))
	require.NoError(t, err)

	got, err := c2.Decrypt(ciphertext)
	require.NoError(t, err)
	require.Equal(t, []byte("cross-instance"), got)
}
