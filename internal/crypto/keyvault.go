// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ErrAuthFailed is returned by Open whenever the GCM tag does not verify.
// It deliberately does not distinguish a wrong key from corrupted data, so
// callers cannot build a password oracle out of the error.
var ErrAuthFailed = errors.New("authentication failed")

// keyVaultService is the private implementation of [KeyVaultService].
type keyVaultService struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	iterations int
	keyLen     int
}

const (
	saltLen  = 16
	nonceLen = 12
)

// NewKeyVaultService constructs a [KeyVaultService] using PBKDF2-SHA256 with
// 120,000 iterations and a 32-byte (256-bit) output key. The iteration count
// stays above the OWASP floor for SHA-256 while keeping a single derivation
// well under a second on desktop hardware.
func NewKeyVaultService() KeyVaultService {
	return &keyVaultService{
		iterations: 120_000,
		keyLen:     32, // 256 bits
	}
}

// GenerateSalt implements [KeyVaultService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyVaultService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateNonce implements [KeyVaultService]. It reads 12 random bytes from
// the OS CSPRNG, the standard GCM nonce size. Returns an error if the random
// read fails.
func (k *keyVaultService) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}

// DeriveKey implements [KeyVaultService]. The result exists only in memory
// and is never persisted or transmitted.
func (k *keyVaultService) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New)
}

// Seal implements [KeyVaultService] with AES-256-GCM. The nonce is supplied
// by the caller and stored by the caller; unlike a prepended-nonce blob this
// keeps the wire format of the vault record explicit.
func (k *keyVaultService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonce))
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyVaultService]. Any tag mismatch is collapsed into
// [ErrAuthFailed].
func (k *keyVaultService) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrAuthFailed
	}

	// An error here almost always means the caller derived the key from a
	// wrong password.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
