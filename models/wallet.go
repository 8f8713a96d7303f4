// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the tagged state of the wallet session. Exactly one of the
// three states holds at any time; only the session service transitions
// between them.
type SessionState int

const (
	// StateUninitialized: no vault record exists on this device.
	StateUninitialized SessionState = iota

	// StateLocked: a vault record exists but no decrypted secret is held.
	StateLocked

	// StateUnlocked: a vault record exists and the decrypted private key is
	// held in memory.
	StateUnlocked
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// WalletState is the public, non-secret view of the wallet exposed to the UI
// and other callers. It never carries key material beyond the public key.
type WalletState struct {
	Address       string  `json:"address"`
	PublicKey     string  `json:"public_key"`
	Balance       float64 `json:"balance"`
	PendingSpends float64 `json:"pending_spends"`

	// Unlocked reports whether the decrypted private key is currently held
	// in memory.
	Unlocked bool `json:"unlocked"`
}

// Signature is the output of signing a message with the in-memory private
// key. Both fields are hex strings in the node's wire format: 128 characters
// of r‖s for the signature, 66 characters of compressed point for the key.
type Signature struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
}
