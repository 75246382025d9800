package cryptotk

import (
	"errors"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	err := NewError("cipher.Decrypt", ErrDecryptionFailure)

	if !errors.Is(err, ErrDecryptionFailure) {
		t.Fatal("sentinel not reachable through wrapper")
	}

	var opErr *Error
	if !errors.As(err, &opErr) {
		t.Fatal("expected *Error")
	}
	if opErr.Op != "cipher.Decrypt" {
		t.Fatalf("unexpected op %q", opErr.Op)
	}

	want := "cryptotk.cipher.Decrypt: cryptotk: decryption failed"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
