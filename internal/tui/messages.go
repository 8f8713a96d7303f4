package tui

import (
	"github.com/agchain/agwallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the RootModel to another page. Payload, when non-nil,
// is delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// WalletReady finalizes the auth flow: the wallet is unlocked and the main
// loop can start.
type WalletReady struct {
	State models.WalletState
	Err   error
}

type sendDoneMsg struct {
	resp models.TransactResponse
	err  error
}

type feeRateMsg struct {
	rate models.FeeRate
	err  error
}

type refreshDoneMsg struct {
	state models.WalletState
	err   error
}

type exportedKeyMsg struct {
	keyHex string
	err    error
}

type logoutDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
