package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rodnan-bot/internal/domain/port"
)

const sessionPrefix = "tg:"

// SessionID сеанс оценки привязан к чату
func SessionID(chatID int64) string {
	return sessionPrefix + strconv.FormatInt(chatID, 10)
}

// ChatID извлекает чат из идентификатора сеанса
func ChatID(sessionID string) (int64, error) {
	if !strings.HasPrefix(sessionID, sessionPrefix) {
		return 0, fmt.Errorf("session %q is not a telegram chat", sessionID)
	}
	return strconv.ParseInt(strings.TrimPrefix(sessionID, sessionPrefix), 10, 64)
}

// ChatNotifier отправляет уведомления сообщением в чат сеанса
type ChatNotifier struct {
	sender Sender
}

func NewChatNotifier(sender Sender) *ChatNotifier {
	return &ChatNotifier{sender: sender}
}

func (n *ChatNotifier) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	chatID, err := ChatID(sessionID)
	if err != nil {
		return err
	}

	icon := "ℹ️"
	if notice.Kind == port.NoticeSuccess {
		icon = "✅"
	}
	if _, err := n.sender.Send(tgbotapi.NewMessage(chatID, icon+" "+notice.Text)); err != nil {
		return fmt.Errorf("send notice: %w", err)
	}
	return nil
}

var _ port.Notifier = (*ChatNotifier)(nil)
