// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/crypto"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/store"
)

// Services bundles the client's service layer. The TUI and workers depend on
// this struct, never on the concrete implementations.
type Services struct {
	Wallet     WalletSessionService
	Transfer   TransferService
	RefreshJob BalanceRefreshJob
}

// NewClientServices wires repositories, crypto and the node adapter into the
// service layer.
func NewClientServices(repo store.WalletRepository, keyVault crypto.KeyVaultService, node adapter.NodeAdapter, log *logger.Logger) *Services {
	vault := NewVaultService(repo, keyVault)
	wrap := NewSessionWrapService(repo, keyVault)
	wallet := NewWalletSessionService(vault, wrap, node, log.GetChildLogger())

	return &Services{
		Wallet:     wallet,
		Transfer:   NewTransferService(wallet, node, log.GetChildLogger()),
		RefreshJob: NewBalanceRefreshJob(wallet, log.GetChildLogger()),
	}
}
