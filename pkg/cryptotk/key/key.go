package key

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/hemingteng/crypto-tk/pkg/cryptotk"
)

// Key owns a fixed amount of secret material. The zero value is unusable;
// construct keys with New or NewRandom.
type Key struct {
	size    int
	enclave *memguard.Enclave
}

// New seals material into a fresh Key. The input buffer is wiped before New
// returns: a Key consumes its material, it does not share it.
func New(material []byte) (*Key, error) {
	if len(material) == 0 {
		return nil, fmt.Errorf("key: empty material: %w", cryptotk.ErrInvalidInput)
	}
	size := len(material)
	return &Key{size: size, enclave: memguard.NewEnclave(material)}, nil
}

// NewRandom creates a Key of the given size from the secure random source.
func NewRandom(size int) (*Key, error) {
	if size <= 0 {
		return nil, fmt.Errorf("key: non-positive size %d: %w", size, cryptotk.ErrInvalidInput)
	}
	return &Key{size: size, enclave: memguard.NewEnclaveRandom(size)}, nil
}

// Size returns the number of secret bytes the key holds.
func (k *Key) Size() int {
	if k == nil {
		return 0
	}
	return k.size
}

// Use runs fn with the unlocked secret bytes. The unlocked view exists only
// for the duration of the call and is destroyed on every exit path. fn must
// not retain the slice; writes to it affect only the transient view, never
// the sealed material. Use is not reentrant on the same key.
func (k *Key) Use(fn func(secret []byte) error) error {
	if k == nil || k.enclave == nil {
		return cryptotk.ErrKeyLocked
	}
	buf, err := k.enclave.Open()
	if err != nil {
		return fmt.Errorf("key: unlock: %v: %w", err, cryptotk.ErrKeyLocked)
	}
	defer buf.Destroy()
	return fn(buf.Bytes())
}
