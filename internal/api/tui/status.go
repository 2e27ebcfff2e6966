package tui

import (
	"context"
	"sync"

	"rodnan-bot/internal/domain/port"
)

// StatusLine последнее уведомление, показывается внизу экрана
type StatusLine struct {
	mu     sync.Mutex
	notice port.Notice
	set    bool
}

func (s *StatusLine) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	s.mu.Lock()
	s.notice = notice
	s.set = true
	s.mu.Unlock()
	return nil
}

// Current возвращает последнее уведомление.
func (s *StatusLine) Current() (port.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice, s.set
}

// Clear убирает уведомление.
func (s *StatusLine) Clear() {
	s.mu.Lock()
	s.set = false
	s.mu.Unlock()
}

var _ port.Notifier = (*StatusLine)(nil)
