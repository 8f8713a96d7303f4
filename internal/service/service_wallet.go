// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/models"
)

// walletSessionService is the single owner of the decrypted private key.
// The secret lives only in the keypair field; it is never copied into any
// persisted structure, and every state transition happens under mu.
type walletSessionService struct {
	vault       VaultService
	sessionWrap SessionWrapService
	node        adapter.NodeAdapter
	logger      *logger.Logger

	mu sync.Mutex
	// hasVault mirrors the persisted vault slot so State() needs no query.
	hasVault bool
	// keypair is non-nil exactly in the Unlocked state.
	keypair *identity.KeyPair
}

// NewWalletSessionService constructs the [WalletSessionService]. Call
// Bootstrap once before serving requests.
func NewWalletSessionService(vault VaultService, wrap SessionWrapService, node adapter.NodeAdapter, log *logger.Logger) WalletSessionService {
	return &walletSessionService{
		vault:       vault,
		sessionWrap: wrap,
		node:        node,
		logger:      log,
	}
}

func (w *walletSessionService) Bootstrap(ctx context.Context) (models.SessionState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.vault.Get(ctx)
	switch {
	case err == nil:
		w.hasVault = true
	case errors.Is(err, ErrNoWallet):
		w.hasVault = false
		return models.StateUninitialized, nil
	default:
		return models.StateUninitialized, err
	}

	return w.autoUnlockLocked(ctx), nil
}

func (w *walletSessionService) Generate(ctx context.Context, password string) (models.WalletState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.hasVault {
		return models.WalletState{}, ErrWalletExists
	}

	kp, err := identity.Generate()
	if err != nil {
		return models.WalletState{}, fmt.Errorf("generate keypair: %w", err)
	}

	return w.createWalletLocked(ctx, kp, password)
}

func (w *walletSessionService) Import(ctx context.Context, privateKeyHex, password string) (models.WalletState, error) {
	// Format validation happens before any cryptographic or storage work.
	if !identity.IsValidPrivateKeyHex(privateKeyHex) {
		return models.WalletState{}, ErrInvalidKeyFormat
	}

	kp, err := identity.FromHex(privateKeyHex)
	if err != nil {
		return models.WalletState{}, ErrInvalidKeyFormat
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.hasVault {
		return w.createWalletLocked(ctx, kp, password)
	}

	// A vault already exists: the supplied key must derive the stored
	// address AND the password must open the stored record. Nothing is
	// mutated until both checks pass.
	record, err := w.vault.Get(ctx)
	if err != nil {
		return models.WalletState{}, err
	}
	if kp.Address() != record.Address {
		return models.WalletState{}, ErrAddressMismatch
	}
	if _, err = w.vault.DecryptSecret(record, password); err != nil {
		return models.WalletState{}, err
	}

	w.keypair = kp
	w.refreshWrapperLocked(ctx, password)

	return w.stateFromRecordLocked(record), nil
}

func (w *walletSessionService) Unlock(ctx context.Context, password string) (models.WalletState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.unlockLocked(ctx, password)
}

func (w *walletSessionService) AutoUnlock(ctx context.Context) (models.SessionState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.autoUnlockLocked(ctx), nil
}

func (w *walletSessionService) Sign(ctx context.Context, message []byte) (models.Signature, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.keypair == nil {
		w.autoUnlockLocked(ctx)
	}
	if w.keypair == nil {
		return models.Signature{}, ErrWalletLocked
	}

	return models.Signature{
		Signature: w.keypair.Sign(message),
		PublicKey: w.keypair.PublicKeyHex(),
	}, nil
}

func (w *walletSessionService) ExportPrivateKey() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.keypair == nil {
		return "", ErrWalletLocked
	}
	return w.keypair.PrivateKeyHex(), nil
}

func (w *walletSessionService) RefreshBalance(ctx context.Context) (models.WalletState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	record, err := w.vault.Get(ctx)
	if err != nil {
		return models.WalletState{}, err
	}

	info, err := w.node.WalletInfo(ctx, record.Address)
	if err != nil {
		return models.WalletState{}, fmt.Errorf("fetch wallet info: %w", err)
	}

	if err = w.vault.UpdateBalance(ctx, info.Balance, info.PendingSpends); err != nil {
		return models.WalletState{}, err
	}

	record.Balance = info.Balance
	record.PendingSpends = info.PendingSpends
	return w.stateFromRecordLocked(record), nil
}

func (w *walletSessionService) GetPublicState(ctx context.Context) (*models.WalletState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	record, err := w.vault.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNoWallet) {
			return nil, nil
		}
		return nil, err
	}

	state := w.stateFromRecordLocked(record)
	return &state, nil
}

func (w *walletSessionService) Logout(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.vault.Delete(ctx); err != nil {
		return err
	}

	w.keypair = nil
	w.hasVault = false
	w.logger.Info().Msg("wallet removed from device")
	return nil
}

func (w *walletSessionService) State() models.SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stateLocked()
}

func (w *walletSessionService) stateLocked() models.SessionState {
	switch {
	case !w.hasVault:
		return models.StateUninitialized
	case w.keypair == nil:
		return models.StateLocked
	default:
		return models.StateUnlocked
	}
}

// createWalletLocked seals kp under password and persists vault plus session
// wrapper in one transaction. Shared by Generate and the fresh-device Import
// path.
func (w *walletSessionService) createWalletLocked(ctx context.Context, kp *identity.KeyPair, password string) (models.WalletState, error) {
	record, err := w.vault.Seal(kp, password)
	if err != nil {
		return models.WalletState{}, err
	}
	wrap, err := w.sessionWrap.Wrap(password)
	if err != nil {
		return models.WalletState{}, err
	}

	if err = w.vault.Create(ctx, record, wrap); err != nil {
		return models.WalletState{}, err
	}

	w.hasVault = true
	w.keypair = kp
	w.logger.Info().Str("address", record.Address).Msg("wallet created")

	return w.stateFromRecordLocked(record), nil
}

func (w *walletSessionService) unlockLocked(ctx context.Context, password string) (models.WalletState, error) {
	record, err := w.vault.Get(ctx)
	if err != nil {
		return models.WalletState{}, err
	}
	w.hasVault = true

	secret, err := w.vault.DecryptSecret(record, password)
	if err != nil {
		// Stays Locked; the caller sees only the collapsed credential error.
		return models.WalletState{}, err
	}

	kp, err := identity.FromBytes(secret)
	if err != nil || kp.Address() != record.Address {
		// The record decrypted but does not hold the key it claims to hold.
		// Treat it exactly like a corrupted vault.
		return models.WalletState{}, ErrInvalidPassword
	}

	w.keypair = kp
	w.refreshWrapperLocked(ctx, password)

	return w.stateFromRecordLocked(record), nil
}

// autoUnlockLocked replays the wrapped password. All failures are silent by
// contract: the wrapper is cleared so a corrupt record cannot fail again on
// the next start, and the state simply stays Locked.
func (w *walletSessionService) autoUnlockLocked(ctx context.Context) models.SessionState {
	if w.keypair != nil {
		return w.stateLocked()
	}

	record, err := w.sessionWrap.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			w.logger.Warn().Err(err).Msg("session wrapper unreadable, clearing")
			w.clearWrapperLocked(ctx)
		}
		return w.stateLocked()
	}

	password, err := w.sessionWrap.Unwrap(record)
	if err != nil {
		w.logger.Warn().Msg("session wrapper failed to unwrap, clearing")
		w.clearWrapperLocked(ctx)
		return w.stateLocked()
	}

	if _, err = w.unlockLocked(ctx, password); err != nil {
		w.logger.Warn().Msg("auto-unlock rejected by vault, clearing wrapper")
		w.clearWrapperLocked(ctx)
	}

	return w.stateLocked()
}

// refreshWrapperLocked re-wraps password after a successful unlock so the
// next start replays the current credentials. Failure here never fails the
// unlock: the wrapper is convenience, not correctness.
func (w *walletSessionService) refreshWrapperLocked(ctx context.Context, password string) {
	wrap, err := w.sessionWrap.Wrap(password)
	if err == nil {
		err = w.sessionWrap.Persist(ctx, wrap)
	}
	if err != nil {
		w.logger.Warn().Err(err).Msg("failed to refresh session wrapper")
	}
}

func (w *walletSessionService) clearWrapperLocked(ctx context.Context) {
	if err := w.sessionWrap.Clear(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("failed to clear session wrapper")
	}
}

func (w *walletSessionService) stateFromRecordLocked(record models.VaultRecord) models.WalletState {
	return models.WalletState{
		Address:       record.Address,
		PublicKey:     record.PublicKey,
		Balance:       record.Balance,
		PendingSpends: record.PendingSpends,
		Unlocked:      w.keypair != nil,
	}
}
