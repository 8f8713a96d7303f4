// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/service"
	"github.com/agchain/agwallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// AuthFlow runs the screens that take the wallet to the Unlocked state:
// create/import for a fresh device, unlock for an existing vault. startPage
// is "welcome" or "unlock" depending on the bootstrapped session state.
func (t *TUI) AuthFlow(ctx context.Context, startPage string) (models.WalletState, error) {
	pages := map[string]tea.Model{
		"welcome": NewWelcomeModel(),
		"create":  NewCreateModel(ctx, t.services.Wallet),
		"import":  NewImportModel(ctx, t.services.Wallet),
		"unlock":  NewUnlockModel(ctx, t.services.Wallet),
	}

	root := NewRootModel(pages, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.WalletState{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.WalletState{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.WalletState{}, ErrUserQuit
	}

	return result.resultState, nil
}

// MainLoop runs the wallet dashboard until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, state models.WalletState) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, state)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
