package tui

import (
	"errors"
	"strings"

	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/service"
)

// humanizeError maps service and transport errors to short Russian messages
// for the status line. Unknown errors pass through verbatim.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidPassword):
		return "Неверный пароль или повреждено хранилище"
	case errors.Is(err, service.ErrWalletExists):
		return "Кошелёк уже существует на этом устройстве"
	case errors.Is(err, service.ErrNoWallet):
		return "Кошелёк не найден"
	case errors.Is(err, service.ErrWalletLocked):
		return "Кошелёк заблокирован"
	case errors.Is(err, service.ErrInvalidKeyFormat):
		return "Приватный ключ должен быть 64 hex-символа"
	case errors.Is(err, service.ErrAddressMismatch):
		return "Ключ не соответствует адресу сохранённого кошелька"
	case errors.Is(err, service.ErrInvalidRecipient):
		return "Некорректный адрес получателя"
	case errors.Is(err, service.ErrInvalidAmount):
		return "Сумма должна быть больше нуля"
	case errors.Is(err, service.ErrInvalidPriority):
		return "Приоритет: low, medium или high"
	case errors.Is(err, adapter.ErrNodeUnavailable):
		return "Узел сети недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Узел недоступен"
	}

	return err.Error()
}
