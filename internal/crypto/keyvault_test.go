package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyVaultService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateNonce_LengthAndRandomness(t *testing.T) {
	svc := NewKeyVaultService()

	n1, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}
	n2, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}

	if len(n1) != 12 {
		t.Fatalf("nonce length = %d, want 12", len(n1))
	}
	if bytes.Equal(n1, n2) {
		t.Fatalf("expected nonces to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyVaultService()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(password, salt)
	k2 := svc.DeriveKey(password, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyVaultService()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	if bytes.Equal(svc.DeriveKey(password, salt1), svc.DeriveKey(password, salt2)) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyVaultService()

	key := bytes.Repeat([]byte{0x2A}, 32)
	nonce := bytes.Repeat([]byte{0x0C}, 12)
	plaintext := []byte("a very secret private key")

	blob, err := svc.Seal(key, nonce, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatalf("ciphertext contains plaintext")
	}

	got, err := svc.Open(key, nonce, blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestOpen_WrongKeyFailsClosed(t *testing.T) {
	svc := NewKeyVaultService()

	nonce := bytes.Repeat([]byte{0x0C}, 12)
	blob, err := svc.Seal(bytes.Repeat([]byte{0x11}, 32), nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = svc.Open(bytes.Repeat([]byte{0x22}, 32), nonce, blob)
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got: %v", err)
	}
}

func TestOpen_CorruptedCiphertextFailsClosed(t *testing.T) {
	svc := NewKeyVaultService()

	key := bytes.Repeat([]byte{0x11}, 32)
	nonce := bytes.Repeat([]byte{0x0C}, 12)
	blob, err := svc.Seal(key, nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	blob[0] ^= 0xFF

	if _, err = svc.Open(key, nonce, blob); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed for corrupted ciphertext, got: %v", err)
	}

	// Too-short input must fail the same way, not panic.
	if _, err = svc.Open(key, nonce[:4], blob); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed for short nonce, got: %v", err)
	}
}
