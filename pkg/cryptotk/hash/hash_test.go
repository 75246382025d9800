package hash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/hash"
	"github.com/hemingteng/crypto-tk/pkg/cryptotk/random"
)

func TestSumDeterministic(t *testing.T) {
	a := hash.Sum([]byte("input"))
	b := hash.Sum([]byte("input"))
	c := hash.Sum([]byte("inpuu"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a[:], hash.DigestSize)
}

func TestNewKeyedMatchesKey(t *testing.T) {
	k := random.Bytes(hash.KeySize)

	h1, err := hash.NewKeyed(k)
	require.NoError(t, err)
	h1.Write([]byte("message"))

	h2, err := hash.NewKeyed(k)
	require.NoError(t, err)
	h2.Write([]byte("message"))

	require.Equal(t, h1.Sum(nil), h2.Sum(nil))

	_, err = hash.NewKeyed(k[:16])
	require.ErrorIs(t, err, cryptotk.ErrInvalidKeySize)
}

func TestDeriveSubkeySeparation(t *testing.T) {
	k := random.Bytes(hash.KeySize)
	salt := random.Bytes(16)

	sub, err := hash.DeriveSubkey(k, salt, "encryption_key", 32)
	require.NoError(t, err)
	require.Len(t, sub, 32)

	// Same inputs, same subkey.
	again, err := hash.DeriveSubkey(k, salt, "encryption_key", 32)
	require.NoError(t, err)
	require.Equal(t, sub, again)

	// A different domain tag yields an unrelated subkey.
	other, err := hash.DeriveSubkey(k, salt, "token_key", 32)
	require.NoError(t, err)
	require.NotEqual(t, sub, other)

	// So does a different salt.
	salted, err := hash.DeriveSubkey(k, random.Bytes(16), "encryption_key", 32)
	require.NoError(t, err)
	require.NotEqual(t, sub, salted)
}

func TestDeriveSubkeyRejectsBadParams(t *testing.T) {
	k := random.Bytes(hash.KeySize)

	_, err := hash.DeriveSubkey(k[:8], nil, "x", 32)
	require.ErrorIs(t, err, cryptotk.ErrInvalidKeySize)

	_, err = hash.DeriveSubkey(k, nil, "seventeen bytes!!", 32)
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)

	_, err = hash.DeriveSubkey(k, nil, "x", 0)
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)

	_, err = hash.DeriveSubkey(k, nil, "x", hash.DigestSize+1)
	require.ErrorIs(t, err, cryptotk.ErrInvalidInput)
}
