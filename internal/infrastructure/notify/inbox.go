package notify

import (
	"context"
	"sync"

	"rodnan-bot/internal/domain/port"
)

// maxPending сколько непрочитанных уведомлений хранится на сеанс
const maxPending = 16

// Inbox копит уведомления, пока поверхность не заберёт их (веб-тосты)
type Inbox struct {
	mu      sync.Mutex
	pending map[string][]port.Notice
}

func NewInbox() *Inbox {
	return &Inbox{pending: make(map[string][]port.Notice)}
}

func (b *Inbox) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue := append(b.pending[sessionID], notice)
	if len(queue) > maxPending {
		queue = queue[len(queue)-maxPending:]
	}
	b.pending[sessionID] = queue
	return nil
}

// Drain забирает и очищает уведомления сеанса.
func (b *Inbox) Drain(sessionID string) []port.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue := b.pending[sessionID]
	delete(b.pending, sessionID)
	return queue
}

var _ port.Notifier = (*Inbox)(nil)
