package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyvault_service_mock.go -package=mock

// KeyVaultService owns the two cryptographic primitives the wallet vault is
// built from: a deliberately slow password KDF and an authenticated cipher.
// It knows nothing about storage, the node, or wallet state.
//
// Usage:
//
//	salt, _  = GenerateSalt()
//	nonce, _ = GenerateNonce()
//	key      = DeriveKey(password, salt)
//	blob, _  = Seal(key, nonce, secret)
//	...
//	key      = DeriveKey(password, storedSalt)   // decrypt-time re-derivation
//	secret   = Open(key, storedNonce, blob)      // ErrAuthFailed on wrong key
type KeyVaultService interface {
	// GenerateSalt returns a fresh random KDF salt (16 bytes / 128 bits).
	// The salt is not a secret; it is persisted in cleartext next to the
	// ciphertext so the key can be re-derived at decrypt time.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns a fresh random AES-GCM nonce (12 bytes).
	// A nonce must never be reused under the same key; callers obtain a new
	// one for every Seal and persist it alongside the ciphertext.
	GenerateNonce() ([]byte, error)

	// DeriveKey derives a 256-bit encryption key from password and salt.
	// Deterministic: the same password+salt always yields the same key, and
	// different salts yield unrelated keys even for the same password. The
	// construction is an iterated hash tuned to make offline brute force
	// expensive.
	DeriveKey(password string, salt []byte) []byte

	// Seal encrypts plaintext under key with the given nonce using an
	// authenticated cipher. The returned ciphertext includes the integrity
	// tag; it does not include the nonce.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open decrypts ciphertext produced by Seal. A wrong key, wrong nonce or
	// corrupted ciphertext fails closed with ErrAuthFailed; corrupted
	// plaintext is never returned.
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}
