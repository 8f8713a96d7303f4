package tui

import (
	"context"
	"strings"

	"github.com/agchain/agwallet/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateModel is the Bubble Tea model for the new-wallet screen. It asks for
// a password twice and dispatches an async generate command on submission.
// On success a [WalletReady] message is produced and handled by [RootModel]
// to finish the auth flow.
type CreateModel struct {
	ctx    context.Context
	wallet service.WalletSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewCreateModel(ctx context.Context, wallet service.WalletSessionService) *CreateModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	confirmInput := textinput.New()
	confirmInput.Placeholder = "пароль ещё раз"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &CreateModel{
		ctx:    ctx,
		wallet: wallet,
		inputs: []textinput.Model{passwordInput, confirmInput},
	}
}

func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			pass := m.inputs[0].Value()
			confirm := m.inputs[1].Value()
			if pass == "" {
				m.errMsg = "Пароль обязателен"
				return m, nil
			}
			if pass != confirm {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdGenerate(pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CreateModel) View() string {
	var b strings.Builder
	b.WriteString("Поле          │ Значение\n")
	b.WriteString("──────────────┼────────────────────────────────────────────\n")
	b.WriteString("Пароль        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Подтверждение │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Создаю кошелёк...]\n")
	} else {
		b.WriteString("\n[Создать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("НОВЫЙ КОШЕЛЁК", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *CreateModel) cmdGenerate(pass string) tea.Cmd {
	ctx := m.ctx
	wallet := m.wallet

	return func() tea.Msg {
		state, err := wallet.Generate(ctx, pass)
		return WalletReady{State: state, Err: err}
	}
}

func (m *CreateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CreateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
