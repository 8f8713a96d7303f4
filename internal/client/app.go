// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/agchain/agwallet/internal/config"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/service"
	"github.com/agchain/agwallet/internal/tui"
	"github.com/agchain/agwallet/models"
)

// App is the interactive wallet application. It drives the unlock flow,
// starts background jobs and hands control to the dashboard loop.
type App struct {
	services *service.Services
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewApp wires the client runtime from already-constructed services and UI.
func NewApp(services *service.Services, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and tui")
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   log.GetChildLogger(),
	}, nil
}

// Run starts the application and blocks until the user exits.
//
// The session state decides the entry screen: a fresh device gets the
// create/import menu, a device with a vault but no valid session wrapper gets
// the unlock prompt, and a wallet already unlocked via the session wrapper
// goes straight to the dashboard. After logout the whole flow restarts from
// the top.
func (a *App) Run() error {
	ctx := context.Background()

	sessionState, err := a.services.Wallet.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap wallet: %w", err)
	}

	var state models.WalletState
	switch sessionState {
	case models.StateUnlocked:
		public, err := a.services.Wallet.GetPublicState(ctx)
		if err != nil {
			return fmt.Errorf("read wallet state: %w", err)
		}
		state = *public
	case models.StateLocked:
		state, err = a.tui.AuthFlow(ctx, "unlock")
	default:
		state, err = a.tui.AuthFlow(ctx, "welcome")
	}
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Str("address", state.Address).Msg("wallet session opened")

	a.services.RefreshJob.Start(ctx, a.workers.BalanceRefreshInterval)
	defer a.services.RefreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx, state)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}
	if logout {
		a.services.RefreshJob.Stop()
		return a.Run()
	}

	return nil
}
