package tui

import (
	"context"
	"strings"

	"github.com/agchain/agwallet/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ImportModel is the Bubble Tea model for the key-import screen: one input
// for the 64-hex private key and one for the password the vault will be
// encrypted under.
type ImportModel struct {
	ctx    context.Context
	wallet service.WalletSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewImportModel(ctx context.Context, wallet service.WalletSessionService) *ImportModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "приватный ключ (64 hex)"
	keyInput.CharLimit = 66 // allows an optional 0x prefix
	keyInput.Width = 40
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'
	keyInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &ImportModel{
		ctx:    ctx,
		wallet: wallet,
		inputs: []textinput.Model{keyInput, passwordInput},
	}
}

func (m *ImportModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ready, ok := msg.(WalletReady); ok {
		m.submitting = false
		if ready.Err != nil {
			m.errMsg = humanizeError(ready.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			keyHex := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if keyHex == "" || pass == "" {
				m.errMsg = "Ключ и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdImport(keyHex, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ImportModel) View() string {
	var b strings.Builder
	b.WriteString("Поле   │ Значение\n")
	b.WriteString("───────┼────────────────────────────────────────────\n")
	b.WriteString("Ключ   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Импортирую...]\n")
	} else {
		b.WriteString("\n[Импортировать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ИМПОРТ КЛЮЧА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *ImportModel) cmdImport(keyHex, pass string) tea.Cmd {
	ctx := m.ctx
	wallet := m.wallet

	return func() tea.Msg {
		state, err := wallet.Import(ctx, keyHex, pass)
		return WalletReady{State: state, Err: err}
	}
}

func (m *ImportModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ImportModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
