// Package identity implements the deterministic derivation of the wallet's
// public identity from its private key, and message signing against it.
//
// The scheme is fixed by the chain: secp256k1 keys, addresses of the form
// "AG" + the first 33 hex characters of SHA-256 over the compressed public
// key (35 characters total), and ECDSA signatures over SHA-256 of the message
// serialized as r‖s (64 bytes, 128 hex characters).
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// AddressPrefix starts every wallet address on the chain.
	AddressPrefix = "AG"

	// AddressLen is the fixed address length: the prefix plus 33 hex chars.
	AddressLen = 35

	// PrivateKeyHexLen is the exact hex length of a raw private key.
	PrivateKeyHexLen = 64

	// PublicKeyHexLen is the hex length of a compressed secp256k1 point.
	PublicKeyHexLen = 66

	// SignatureHexLen is the hex length of an r‖s signature.
	SignatureHexLen = 128
)

// ErrInvalidPrivateKey is returned when key material is not exactly 32 bytes
// of hex, or encodes a value outside the curve order.
var ErrInvalidPrivateKey = errors.New("invalid private key")

var privateKeyHexRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// KeyPair wraps a secp256k1 private key together with its derived public
// identity. The zero value is unusable; construct via Generate or FromHex.
type KeyPair struct {
	priv *secp256k1.PrivateKey
}

// Generate creates a fresh random keypair from the OS CSPRNG.
func Generate() (*KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return &KeyPair{priv: priv}, nil
}

// FromHex reconstructs a keypair from a 64-hex-character private key, with or
// without a "0x" prefix. The format is checked before any curve math so
// malformed input is rejected cheaply and uniformly.
func FromHex(keyHex string) (*KeyPair, error) {
	normalized := NormalizeHex(keyHex)
	if !privateKeyHexRe.MatchString(normalized) {
		return nil, ErrInvalidPrivateKey
	}

	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		// Zero or >= curve order is not a usable secp256k1 key.
		return nil, ErrInvalidPrivateKey
	}

	return &KeyPair{priv: secp256k1.NewPrivateKey(&scalar)}, nil
}

// FromBytes reconstructs a keypair from a raw 32-byte private key.
func FromBytes(raw []byte) (*KeyPair, error) {
	if len(raw) != 32 {
		return nil, ErrInvalidPrivateKey
	}
	return FromHex(hex.EncodeToString(raw))
}

// NormalizeHex strips an optional "0x"/"0X" prefix and lowercases the rest.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	return strings.ToLower(s)
}

// IsValidPrivateKeyHex reports whether s is exactly 64 hex characters after
// prefix normalization. It performs no curve math.
func IsValidPrivateKeyHex(s string) bool {
	return privateKeyHexRe.MatchString(NormalizeHex(s))
}

// PrivateKeyBytes returns the raw 32-byte private key. The caller owns the
// copy and should zero it when done.
func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.priv.Serialize()
}

// PrivateKeyHex returns the private key as 64 hex characters.
func (k *KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.priv.Serialize())
}

// PublicKeyHex returns the compressed public key as 66 hex characters.
func (k *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.priv.PubKey().SerializeCompressed())
}

// Address derives the wallet address from the public key.
func (k *KeyPair) Address() string {
	return DeriveAddress(k.priv.PubKey().SerializeCompressed())
}

// Sign produces an ECDSA signature over SHA-256 of message, serialized as
// r‖s hex. Signing is deterministic (RFC 6979), so equal inputs yield equal
// signatures.
func (k *KeyPair) Sign(message []byte) string {
	digest := sha256.Sum256(message)

	// SignCompact yields [recovery id ‖ R (32) ‖ S (32)]; the chain's wire
	// format is the bare r‖s pair.
	compact := ecdsa.SignCompact(k.priv, digest[:], true)
	return hex.EncodeToString(compact[1:])
}

// DeriveAddress maps a compressed public key to its wallet address.
func DeriveAddress(compressedPub []byte) string {
	sum := sha256.Sum256(compressedPub)
	return AddressPrefix + hex.EncodeToString(sum[:])[:AddressLen-len(AddressPrefix)]
}

// IsValidAddress reports whether s has the chain's address shape.
func IsValidAddress(s string) bool {
	if len(s) != AddressLen || !strings.HasPrefix(s, AddressPrefix) {
		return false
	}
	for _, c := range s[len(AddressPrefix):] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// Verify checks an r‖s hex signature over message against a compressed
// public key in hex. It returns false for any malformed input; it never
// panics on attacker-controlled data.
func Verify(pubKeyHex string, message []byte, sigHex string) bool {
	pubRaw, err := hex.DecodeString(NormalizeHex(pubKeyHex))
	if err != nil {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubRaw)
	if err != nil {
		return false
	}

	sigRaw, err := hex.DecodeString(NormalizeHex(sigHex))
	if err != nil || len(sigRaw) != 64 {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sigRaw[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sigRaw[32:]); overflow {
		return false
	}

	digest := sha256.Sum256(message)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], pub)
}
