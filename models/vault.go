// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is the single persisted wallet slot. At most one record exists
// per device; the wallet session service is its only mutator.
//
// All binary material (ciphertext, nonce, salt) is stored base64-encoded so
// the record can be moved through SQL and JSON without re-encoding.
type VaultRecord struct {
	// Address is the public wallet identity, deterministically derived from
	// the keypair ("AG" + first 33 hex chars of SHA-256 of the compressed
	// public key).
	Address string `json:"address"`

	// PublicKey is the compressed secp256k1 public key, hex-encoded
	// (66 characters).
	PublicKey string `json:"public_key"`

	// EncryptedPrivateKey is the AES-256-GCM ciphertext of the raw private
	// key under a key derived from the wallet password. Base64-encoded.
	EncryptedPrivateKey string `json:"encrypted_private_key"`

	// EncryptionIV is the GCM nonce used for EncryptedPrivateKey.
	// Generated fresh for every encryption, never reused. Base64-encoded.
	EncryptionIV string `json:"encryption_iv"`

	// EncryptionSalt is the KDF salt used to derive the encryption key from
	// the wallet password. Base64-encoded.
	EncryptionSalt string `json:"encryption_salt"`

	// Balance is a cached, non-authoritative mirror of the confirmed balance
	// reported by the node. It may be stale and is never derived locally.
	Balance float64 `json:"balance"`

	// PendingSpends mirrors the node-reported sum of unconfirmed outgoing
	// transactions. Cached, non-authoritative.
	PendingSpends float64 `json:"pending_spends"`

	// CreatedAt is when the wallet was generated or imported on this device.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last time any field of the record was written.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultRecord model.
func (v VaultRecord) TableName() string {
	return "vault"
}
