package service

import "errors"

// Public error taxonomy of the wallet session. Every lower-layer failure is
// collapsed into one of these before leaving the service boundary, so callers
// (and log readers) never learn more about a failure than the taxonomy
// allows.
var (
	// ErrWalletExists is returned by Generate when the single vault slot is
	// already occupied.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrNoWallet is returned when an operation needs a vault record and the
	// slot is empty (e.g. Unlock after Logout).
	ErrNoWallet = errors.New("no wallet initialized")

	// ErrAddressMismatch is returned by Import when the supplied key derives
	// a different address than the stored vault record.
	ErrAddressMismatch = errors.New("private key does not match stored wallet address")

	// ErrInvalidKeyFormat is returned by Import before any cryptographic or
	// storage work when the key is not 64 hex characters.
	ErrInvalidKeyFormat = errors.New("private key must be 64 hex characters")

	// ErrInvalidPassword is returned on any authenticated-decrypt failure.
	// It deliberately covers both a wrong password and a corrupted vault, so
	// the error is not an oracle for which one occurred.
	ErrInvalidPassword = errors.New("invalid password or corrupted vault")

	// ErrWalletLocked is returned by Sign when no decrypted secret is in
	// memory and no auto-unlock path succeeds.
	ErrWalletLocked = errors.New("wallet is locked")
)

// Transfer validation errors, checked before the wallet or the node is
// touched.
var (
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
)
