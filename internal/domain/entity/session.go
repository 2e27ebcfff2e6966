package entity

import (
	"sync"
	"sync/atomic"
	"time"
)

// Session сеанс оценки одного врача: страница, чат или терминал
type Session struct {
	ID        string
	Scorer    *RegionScorer
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen atomic.Int64
}

// NewSession создаёт сеанс с готовым оценщиком.
func NewSession(id string, scorer *RegionScorer) *Session {
	s := &Session{
		ID:        id,
		Scorer:    scorer,
		CreatedAt: time.Now(),
	}
	s.lastSeen.Store(s.CreatedAt.UnixNano())
	return s
}

// Lock захватывает сеанс: события одного сеанса обрабатываются по очереди.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock освобождает сеанс.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Touch отмечает обращение к сеансу.
func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// LastSeen время последнего обращения. Читается без блокировки сеанса.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// IdleSince сообщает, что к сеансу не обращались с момента before.
func (s *Session) IdleSince(before time.Time) bool {
	return s.LastSeen().Before(before)
}
