package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agchain/agwallet/internal/service"
	"github.com/agchain/agwallet/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loopMode int

const (
	modeDashboard loopMode = iota
	modeSend
	modeExport
	modeConfirmLogout
)

var priorities = []string{"low", "medium", "high"}

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	state    models.WalletState

	mode       loopMode
	refreshing bool
	sending    bool
	status     string
	errMsg     string

	sendInputs  []textinput.Model
	sendFocus   int
	priorityIdx int

	feeRate     *models.FeeRate
	exportedKey string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, state models.WalletState) mainLoopModel {
	recipientInput := textinput.New()
	recipientInput.Placeholder = "AG..."
	recipientInput.CharLimit = 35
	recipientInput.Width = 40

	amountInput := textinput.New()
	amountInput.Placeholder = "0.00000"
	amountInput.CharLimit = 20
	amountInput.Width = 40

	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		state:      state,
		sendInputs: []textinput.Model{recipientInput, amountInput},
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case refreshDoneMsg:
		m.refreshing = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		} else {
			m.errMsg = ""
			m.state = result.state
		}
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.mode = modeDashboard
		m.errMsg = ""
		m.status = fmt.Sprintf("Транзакция отправлена, комиссия %s", formatAmount(result.resp.Fee))
		m.resetSendForm()
		return m, tea.Batch(m.cmdRefresh(), m.cmdClearStatus())

	case feeRateMsg:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.feeRate = &result.rate
		return m, nil

	case exportedKeyMsg:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.exportedKey = result.keyHex
		m.mode = modeExport
		return m, nil

	case logoutDoneMsg:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			m.mode = modeDashboard
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeSend:
		return m.updateSend(keyMsg)
	case modeExport:
		return m.updateExport(keyMsg)
	case modeConfirmLogout:
		return m.updateConfirmLogout(keyMsg)
	default:
		return m.updateDashboard(keyMsg)
	}
}

func (m mainLoopModel) updateDashboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.send):
		m.mode = modeSend
		m.errMsg = ""
		m.sendInputs[0].Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.fee):
		return m, m.cmdFeeRate()
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(m.state.Address); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Адрес скопирован"
		return m, m.cmdClearStatus()
	case key.Matches(keyMsg, keys.logout):
		m.mode = modeConfirmLogout
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) updateSend(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeDashboard
		m.errMsg = ""
		m.resetSendForm()
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.sendFocusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.sendFocusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.left):
		m.priorityIdx = (m.priorityIdx - 1 + len(priorities)) % len(priorities)
		return m, nil
	case key.Matches(keyMsg, keys.right):
		m.priorityIdx = (m.priorityIdx + 1) % len(priorities)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.sending {
			return m, nil
		}

		recipient := strings.TrimSpace(m.sendInputs[0].Value())
		amountRaw := strings.TrimSpace(m.sendInputs[1].Value())
		if recipient == "" || amountRaw == "" {
			m.errMsg = "Адрес и сумма обязательны"
			return m, nil
		}
		amount, err := strconv.ParseFloat(amountRaw, 64)
		if err != nil {
			m.errMsg = "Сумма должна быть числом"
			return m, nil
		}

		m.errMsg = ""
		m.sending = true
		return m, m.cmdSend(recipient, amount, priorities[m.priorityIdx])
	}

	var cmd tea.Cmd
	m.sendInputs[m.sendFocus], cmd = m.sendInputs[m.sendFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateExport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeDashboard
		m.exportedKey = ""
		m.status = ""
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(m.exportedKey); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Ключ скопирован"
		return m, m.cmdClearStatus()
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmLogout(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = modeDashboard
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeSend:
		return m.viewSend()
	case modeExport:
		return m.viewExport()
	case modeConfirmLogout:
		return m.viewConfirmLogout()
	default:
		return m.viewDashboard()
	}
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString("Адрес            │ ")
	b.WriteString(m.state.Address)
	b.WriteString("\n")
	b.WriteString("Баланс           │ ")
	b.WriteString(formatAmount(m.state.Balance))
	b.WriteString("\n")
	b.WriteString("В ожидании       │ ")
	b.WriteString(formatAmount(m.state.PendingSpends))
	b.WriteString("\n")

	if m.feeRate != nil {
		b.WriteString("Базовая комиссия │ ")
		b.WriteString(formatAmount(m.feeRate.FeeRate))
		b.WriteString(fmt.Sprintf("  (мемпул: %d)", m.feeRate.MempoolSize))
		b.WriteString("\n")
	}

	if m.refreshing {
		b.WriteString("\nОбновляю баланс...\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	hotKeys := "s: отправить │ r: обновить │ f: комиссия │ e: экспорт ключа │ c: копировать адрес │ ctrl+l: выйти из кошелька │ q: выход"
	return renderPage("AG КОШЕЛЁК", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewSend() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Кому      │ [")
	b.WriteString(m.sendInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Сумма     │ [")
	b.WriteString(m.sendInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Приоритет │ < ")
	b.WriteString(priorities[m.priorityIdx])
	b.WriteString(" >\n")

	if m.sending {
		b.WriteString("\n[Отправляю...]\n")
	} else {
		b.WriteString("\n[Отправить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПЕРЕВОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ←/→: приоритет │ enter: отправить")
}

func (m mainLoopModel) viewExport() string {
	var b strings.Builder
	b.WriteString("Приватный ключ │ ")
	b.WriteString(m.exportedKey)
	b.WriteString("\n\n")
	b.WriteString("Никому не показывайте этот ключ: он даёт полный доступ к средствам.\n")

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ЭКСПОРТ КЛЮЧА", strings.TrimRight(b.String(), "\n"), "c: копировать │ esc: закрыть")
}

func (m mainLoopModel) viewConfirmLogout() string {
	content := "Удалить кошелёк с этого устройства?\n\n"
	content += "Без резервной копии приватного ключа доступ к средствам будет утерян.\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

func (m *mainLoopModel) resetSendForm() {
	m.sendInputs[0].SetValue("")
	m.sendInputs[1].SetValue("")
	m.sendInputs[0].Blur()
	m.sendInputs[1].Blur()
	m.sendFocus = 0
	m.priorityIdx = 0
	m.sending = false
}

func (m *mainLoopModel) sendFocusNext() {
	m.sendInputs[m.sendFocus].Blur()
	m.sendFocus = (m.sendFocus + 1) % len(m.sendInputs)
	m.sendInputs[m.sendFocus].Focus()
}

func (m *mainLoopModel) sendFocusPrev() {
	m.sendInputs[m.sendFocus].Blur()
	m.sendFocus = (m.sendFocus - 1 + len(m.sendInputs)) % len(m.sendInputs)
	m.sendInputs[m.sendFocus].Focus()
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	wallet := m.services.Wallet

	return func() tea.Msg {
		state, err := wallet.RefreshBalance(ctx)
		return refreshDoneMsg{state: state, err: err}
	}
}

func (m mainLoopModel) cmdSend(recipient string, amount float64, priority string) tea.Cmd {
	ctx := m.ctx
	transfer := m.services.Transfer

	return func() tea.Msg {
		resp, err := transfer.Send(ctx, recipient, amount, priority)
		return sendDoneMsg{resp: resp, err: err}
	}
}

func (m mainLoopModel) cmdFeeRate() tea.Cmd {
	ctx := m.ctx
	transfer := m.services.Transfer

	return func() tea.Msg {
		rate, err := transfer.FeeRate(ctx)
		return feeRateMsg{rate: rate, err: err}
	}
}

func (m mainLoopModel) cmdExport() tea.Cmd {
	wallet := m.services.Wallet

	return func() tea.Msg {
		keyHex, err := wallet.ExportPrivateKey()
		return exportedKeyMsg{keyHex: keyHex, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	wallet := m.services.Wallet

	return func() tea.Msg {
		return logoutDoneMsg{err: wallet.Logout(ctx)}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
