// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/agchain/agwallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WalletRepository is the low-level persistence layer for the two single-slot
// records: the vault and the session wrapper. It performs no cryptography and
// enforces no wallet semantics beyond slot occupancy; that is the service
// layer's job.
type WalletRepository interface {
	// GetVault loads the vault slot. Returns [ErrVaultNotFound] when empty.
	GetVault(ctx context.Context) (models.VaultRecord, error)

	// CreateWallet persists a fresh vault record together with its session
	// wrapper in one transaction, so a crash can never leave one of the two
	// behind. Returns [ErrVaultAlreadyExists] when the vault slot is taken.
	CreateWallet(ctx context.Context, vault models.VaultRecord, wrap models.SessionWrapperRecord) error

	// UpdateBalance overwrites the cached balance mirror of the vault record.
	// Returns [ErrVaultNotFound] when the slot is empty.
	UpdateBalance(ctx context.Context, balance, pendingSpends float64) error

	// DeleteWallet removes the vault record and the session wrapper in one
	// transaction. Deleting an empty slot is not an error.
	DeleteWallet(ctx context.Context) error

	// GetSession loads the session wrapper slot. Returns [ErrSessionNotFound]
	// when empty.
	GetSession(ctx context.Context) (models.SessionWrapperRecord, error)

	// SaveSession upserts the session wrapper slot.
	SaveSession(ctx context.Context, wrap models.SessionWrapperRecord) error

	// ClearSession empties the session wrapper slot without touching the
	// vault. Clearing an empty slot is not an error.
	ClearSession(ctx context.Context) error
}
