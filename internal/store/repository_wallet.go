// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/models"
)

type walletRepository struct {
	*DB
	logger *logger.Logger
}

func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	return &walletRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *walletRepository) GetVault(ctx context.Context) (models.VaultRecord, error) {
	query, args, err := buildSelectVaultQuery()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var record models.VaultRecord
	row := w.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&record.Address,
		&record.PublicKey,
		&record.EncryptedPrivateKey,
		&record.EncryptionIV,
		&record.EncryptionSalt,
		&record.Balance,
		&record.PendingSpends,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrVaultNotFound
		}
		w.logger.Err(scanErr).
			Str("func", "walletRepository.GetVault").
			Msg("failed to scan vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, scanErr)
	}

	return record, nil
}

func (w *walletRepository) CreateWallet(ctx context.Context, vault models.VaultRecord, wrap models.SessionWrapperRecord) error {
	insertVault, vaultArgs, err := buildInsertVaultQuery(vault)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	upsertSession, sessionArgs, err := buildUpsertSessionQuery(wrap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertVault, vaultArgs...); err != nil {
		if isConstraintViolation(err) {
			return ErrVaultAlreadyExists
		}
		w.logger.Err(err).
			Str("func", "walletRepository.CreateWallet").
			Str("address", vault.Address).
			Msg("failed to insert vault record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, upsertSession, sessionArgs...); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.CreateWallet").
			Msg("failed to insert session wrapper record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *walletRepository) UpdateBalance(ctx context.Context, balance, pendingSpends float64) error {
	query, args, err := buildUpdateBalanceQuery(balance, pendingSpends, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := w.DB.ExecContext(ctx, query, args...)
	if err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.UpdateBalance").
			Msg("failed to update cached balance")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}

func (w *walletRepository) DeleteWallet(ctx context.Context) error {
	deleteVault, vaultArgs, err := buildDeleteVaultQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	deleteSession, sessionArgs, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteVault, vaultArgs...); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.DeleteWallet").
			Msg("failed to delete vault record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteSession, sessionArgs...); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.DeleteWallet").
			Msg("failed to delete session wrapper record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *walletRepository) GetSession(ctx context.Context) (models.SessionWrapperRecord, error) {
	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.SessionWrapperRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var record models.SessionWrapperRecord
	row := w.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&record.WrappedPassword,
		&record.WrapIV,
		&record.WrapSalt,
		&record.WrappedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SessionWrapperRecord{}, ErrSessionNotFound
		}
		w.logger.Err(scanErr).
			Str("func", "walletRepository.GetSession").
			Msg("failed to scan session wrapper record")
		return models.SessionWrapperRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, scanErr)
	}

	return record, nil
}

func (w *walletRepository) SaveSession(ctx context.Context, wrap models.SessionWrapperRecord) error {
	query, args, err := buildUpsertSessionQuery(wrap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = w.DB.ExecContext(ctx, query, args...); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.SaveSession").
			Msg("failed to upsert session wrapper record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (w *walletRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = w.DB.ExecContext(ctx, query, args...); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.ClearSession").
			Msg("failed to clear session wrapper record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
