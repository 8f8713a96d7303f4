package tui

import (
	"context"
	"strings"

	"github.com/agchain/agwallet/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the Bubble Tea model for the unlock screen shown when a
// vault exists but auto-unlock did not succeed. A wrong password keeps the
// screen open with an error; there is no attempt limit.
type UnlockModel struct {
	ctx    context.Context
	wallet service.WalletSessionService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewUnlockModel(ctx context.Context, wallet service.WalletSessionService) *UnlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &UnlockModel{
		ctx:    ctx,
		wallet: wallet,
		input:  passwordInput,
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ready, ok := msg.(WalletReady); ok {
		m.submitting = false
		if ready.Err != nil {
			m.errMsg = humanizeError(ready.Err)
			m.input.SetValue("")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.submitting {
			return m, nil
		}

		pass := m.input.Value()
		if pass == "" {
			m.errMsg = "Пароль обязателен"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdUnlock(pass)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Пароль │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Открываю...]\n")
	} else {
		b.WriteString("\n[Открыть]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("КОШЕЛЁК ЗАБЛОКИРОВАН", strings.TrimRight(b.String(), "\n"), "enter: открыть")
}

func (m *UnlockModel) cmdUnlock(pass string) tea.Cmd {
	ctx := m.ctx
	wallet := m.wallet

	return func() tea.Msg {
		state, err := wallet.Unlock(ctx, pass)
		return WalletReady{State: state, Err: err}
	}
}
