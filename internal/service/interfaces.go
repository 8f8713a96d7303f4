// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService implements the durable, password-encrypted wallet slot.
// Sealing (pure crypto) and persistence are separate steps so the session
// service can persist the vault and the session wrapper in one transaction.
type VaultService interface {
	// Seal derives a fresh key from password and encrypts the keypair's
	// private key into a new VaultRecord. Nothing is persisted.
	Seal(kp *identity.KeyPair, password string) (models.VaultRecord, error)

	// Create persists a sealed vault record together with its session
	// wrapper atomically. Returns [ErrWalletExists] when the slot is taken.
	Create(ctx context.Context, record models.VaultRecord, wrap models.SessionWrapperRecord) error

	// Get loads the vault slot. Returns [ErrNoWallet] when empty.
	Get(ctx context.Context) (models.VaultRecord, error)

	// DecryptSecret re-derives the key from password and the record's stored
	// salt and opens the ciphertext. Any authentication or decoding failure
	// surfaces uniformly as [ErrInvalidPassword].
	DecryptSecret(record models.VaultRecord, password string) ([]byte, error)

	// UpdateBalance overwrites the cached balance mirror of the vault slot.
	UpdateBalance(ctx context.Context, balance, pendingSpends float64) error

	// Delete removes the vault record and the session wrapper. This is the
	// only erasure path; there is no update-in-place for key material.
	Delete(ctx context.Context) error
}

// SessionWrapService implements the auto-unlock convenience layer: the wallet
// password encrypted under a key derived from a fixed, application-embedded
// passphrase. It is not a security boundary against an attacker who can read
// this binary; see the package documentation of the implementation.
type SessionWrapService interface {
	// Wrap encrypts password into a new SessionWrapperRecord with a fresh
	// salt and nonce. Nothing is persisted.
	Wrap(password string) (models.SessionWrapperRecord, error)

	// Persist upserts the wrapper slot.
	Persist(ctx context.Context, record models.SessionWrapperRecord) error

	// Load reads the wrapper slot. Returns [store.ErrSessionNotFound] when
	// empty.
	Load(ctx context.Context) (models.SessionWrapperRecord, error)

	// Unwrap recovers the password from a wrapper record. A corrupted record
	// fails with [ErrInvalidPassword]; callers must treat that as
	// "auto-unlock unavailable", not as fatal.
	Unwrap(record models.SessionWrapperRecord) (string, error)

	// Clear empties the wrapper slot without touching the vault.
	Clear(ctx context.Context) error
}

// WalletSessionService is the single owner of the decrypted private key and
// the only mutator of the vault and session wrapper slots. All methods are
// safe for concurrent use; the session assumes one running process per
// device.
type WalletSessionService interface {
	// Bootstrap loads the persisted state and attempts a silent auto-unlock.
	// Called once at process start.
	Bootstrap(ctx context.Context) (models.SessionState, error)

	// Generate creates a fresh keypair, seals it under password and persists
	// vault and session wrapper. Uninitialized → Unlocked, or
	// [ErrWalletExists].
	Generate(ctx context.Context, password string) (models.WalletState, error)

	// Import behaves like Generate with a caller-supplied key, or validates
	// the key and password against an existing vault without mutating it.
	Import(ctx context.Context, privateKeyHex, password string) (models.WalletState, error)

	// Unlock decrypts the vault secret into memory and refreshes the session
	// wrapper. Locked → Unlocked, or [ErrInvalidPassword] (state unchanged).
	Unlock(ctx context.Context, password string) (models.WalletState, error)

	// AutoUnlock replays the wrapped password, if any. Every failure is
	// silent: the state stays Locked and a stale wrapper is cleared so it
	// cannot fail on every start.
	AutoUnlock(ctx context.Context) (models.SessionState, error)

	// Sign produces a signature over message with the in-memory secret,
	// attempting AutoUnlock first when currently Locked. Does not change
	// state. Fails with [ErrWalletLocked] when no secret is recoverable.
	Sign(ctx context.Context, message []byte) (models.Signature, error)

	// ExportPrivateKey returns the raw private key as 64 hex characters.
	// Requires Unlocked; this is the caller's only backup path before
	// Logout.
	ExportPrivateKey() (string, error)

	// RefreshBalance fetches the node-side balance for the stored address
	// and updates the cached mirror.
	RefreshBalance(ctx context.Context) (models.WalletState, error)

	// GetPublicState returns the public view of the wallet, or nil when
	// Uninitialized.
	GetPublicState(ctx context.Context) (*models.WalletState, error)

	// Logout wipes the in-memory secret and deletes both persisted slots.
	// Irreversible; there is no recovery path once the vault is gone.
	Logout(ctx context.Context) error

	// State reports the current session state.
	State() models.SessionState
}

// BalanceRefreshJob defines the contract for a background worker that
// periodically refreshes the cached balance from the node.
type BalanceRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 1 minute if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// TransferService builds, signs and submits transactions to the node.
type TransferService interface {
	// Send validates the transfer, signs the node's canonical transaction
	// string via the wallet session, and posts it to the mempool.
	Send(ctx context.Context, recipient string, amount float64, priority string) (models.TransactResponse, error)

	// FeeRate fetches the node's current fee rate.
	FeeRate(ctx context.Context) (models.FeeRate, error)
}
