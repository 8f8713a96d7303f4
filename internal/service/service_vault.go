// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/agchain/agwallet/internal/crypto"
	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/models"
)

type vaultService struct {
	repo   store.WalletRepository
	crypto crypto.KeyVaultService
}

// NewVaultService constructs the [VaultService] over the given repository and
// crypto primitives.
func NewVaultService(repo store.WalletRepository, kv crypto.KeyVaultService) VaultService {
	return &vaultService{repo: repo, crypto: kv}
}

func (v *vaultService) Seal(kp *identity.KeyPair, password string) (models.VaultRecord, error) {
	salt, err := v.crypto.GenerateSalt()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("generate vault salt: %w", err)
	}
	nonce, err := v.crypto.GenerateNonce()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("generate vault nonce: %w", err)
	}

	key := v.crypto.DeriveKey(password, salt)
	ciphertext, err := v.crypto.Seal(key, nonce, kp.PrivateKeyBytes())
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("seal private key: %w", err)
	}

	now := time.Now().UTC()
	// All byte slices are base64-encoded for safe storage in the database.
	return models.VaultRecord{
		Address:             kp.Address(),
		PublicKey:           kp.PublicKeyHex(),
		EncryptedPrivateKey: base64.StdEncoding.EncodeToString(ciphertext),
		EncryptionIV:        base64.StdEncoding.EncodeToString(nonce),
		EncryptionSalt:      base64.StdEncoding.EncodeToString(salt),
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

func (v *vaultService) Create(ctx context.Context, record models.VaultRecord, wrap models.SessionWrapperRecord) error {
	if err := v.repo.CreateWallet(ctx, record, wrap); err != nil {
		if errors.Is(err, store.ErrVaultAlreadyExists) {
			return ErrWalletExists
		}
		return fmt.Errorf("persist wallet: %w", err)
	}
	return nil
}

func (v *vaultService) Get(ctx context.Context) (models.VaultRecord, error) {
	record, err := v.repo.GetVault(ctx)
	if err != nil {
		if errors.Is(err, store.ErrVaultNotFound) {
			return models.VaultRecord{}, ErrNoWallet
		}
		return models.VaultRecord{}, fmt.Errorf("load vault: %w", err)
	}
	return record, nil
}

// DecryptSecret implements [VaultService]. Wrong password, corrupted
// ciphertext and undecodable record fields all return the same
// [ErrInvalidPassword]; distinguishing them would leak which case occurred.
func (v *vaultService) DecryptSecret(record models.VaultRecord, password string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(record.EncryptionSalt)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	nonce, err := base64.StdEncoding.DecodeString(record.EncryptionIV)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	ciphertext, err := base64.StdEncoding.DecodeString(record.EncryptedPrivateKey)
	if err != nil {
		return nil, ErrInvalidPassword
	}

	key := v.crypto.DeriveKey(password, salt)
	secret, err := v.crypto.Open(key, nonce, ciphertext)
	if err != nil {
		return nil, ErrInvalidPassword
	}

	return secret, nil
}

func (v *vaultService) UpdateBalance(ctx context.Context, balance, pendingSpends float64) error {
	if err := v.repo.UpdateBalance(ctx, balance, pendingSpends); err != nil {
		if errors.Is(err, store.ErrVaultNotFound) {
			return ErrNoWallet
		}
		return fmt.Errorf("update cached balance: %w", err)
	}
	return nil
}

func (v *vaultService) Delete(ctx context.Context) error {
	if err := v.repo.DeleteWallet(ctx); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	return nil
}
