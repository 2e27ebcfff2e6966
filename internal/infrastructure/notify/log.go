package notify

import (
	"context"
	"log"

	"rodnan-bot/internal/domain/port"
)

// LogNotifier пишет уведомления в журнал
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	log.Printf("session %s: [%s] %s (total=%d)", sessionID, notice.Kind, notice.Text, notice.Total)
	return nil
}

// Multi рассылает уведомление всем получателям и возвращает первую ошибку
type Multi []port.Notifier

func (m Multi) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	var first error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, sessionID, notice); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var (
	_ port.Notifier = LogNotifier{}
	_ port.Notifier = Multi(nil)
)
