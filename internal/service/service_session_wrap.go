// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/agchain/agwallet/internal/crypto"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/models"
)

// sessionWrapPassphrase is the fixed, build-time passphrase the session
// wrapper derives its key from.
//
// Known limitation, on purpose: anyone who can read this binary can read the
// passphrase, so the wrapper only defends against casual scraping of the
// database file, not against a fully compromised device. Strengthening it
// (OS keychain, TTL policies) is a product decision, not something to slip
// in silently here.
const sessionWrapPassphrase = "agwallet-session-wrap-v1"

type sessionWrapService struct {
	repo   store.WalletRepository
	crypto crypto.KeyVaultService
}

// NewSessionWrapService constructs the [SessionWrapService] over the given
// repository and crypto primitives.
func NewSessionWrapService(repo store.WalletRepository, kv crypto.KeyVaultService) SessionWrapService {
	return &sessionWrapService{repo: repo, crypto: kv}
}

func (s *sessionWrapService) Wrap(password string) (models.SessionWrapperRecord, error) {
	salt, err := s.crypto.GenerateSalt()
	if err != nil {
		return models.SessionWrapperRecord{}, fmt.Errorf("generate wrap salt: %w", err)
	}
	nonce, err := s.crypto.GenerateNonce()
	if err != nil {
		return models.SessionWrapperRecord{}, fmt.Errorf("generate wrap nonce: %w", err)
	}

	key := s.crypto.DeriveKey(sessionWrapPassphrase, salt)
	ciphertext, err := s.crypto.Seal(key, nonce, []byte(password))
	if err != nil {
		return models.SessionWrapperRecord{}, fmt.Errorf("wrap password: %w", err)
	}

	return models.SessionWrapperRecord{
		WrappedPassword: base64.StdEncoding.EncodeToString(ciphertext),
		WrapIV:          base64.StdEncoding.EncodeToString(nonce),
		WrapSalt:        base64.StdEncoding.EncodeToString(salt),
		WrappedAt:       time.Now().UTC(),
	}, nil
}

func (s *sessionWrapService) Persist(ctx context.Context, record models.SessionWrapperRecord) error {
	if err := s.repo.SaveSession(ctx, record); err != nil {
		return fmt.Errorf("persist session wrapper: %w", err)
	}
	return nil
}

func (s *sessionWrapService) Load(ctx context.Context) (models.SessionWrapperRecord, error) {
	return s.repo.GetSession(ctx)
}

// Unwrap implements [SessionWrapService]. Like the vault's DecryptSecret, any
// decoding or authentication failure collapses into [ErrInvalidPassword].
func (s *sessionWrapService) Unwrap(record models.SessionWrapperRecord) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(record.WrapSalt)
	if err != nil {
		return "", ErrInvalidPassword
	}
	nonce, err := base64.StdEncoding.DecodeString(record.WrapIV)
	if err != nil {
		return "", ErrInvalidPassword
	}
	ciphertext, err := base64.StdEncoding.DecodeString(record.WrappedPassword)
	if err != nil {
		return "", ErrInvalidPassword
	}

	key := s.crypto.DeriveKey(sessionWrapPassphrase, salt)
	password, err := s.crypto.Open(key, nonce, ciphertext)
	if err != nil {
		return "", ErrInvalidPassword
	}

	return string(password), nil
}

func (s *sessionWrapService) Clear(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session wrapper: %w", err)
	}
	return nil
}
