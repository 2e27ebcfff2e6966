package storage

import (
	"context"
	"sync"
	"time"

	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сеансов; живёт до остановки процесса
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entity.Session),
	}
}

// Get возвращает сеанс по ID
func (r *MemorySessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

// Save сохраняет сеанс; при гонке побеждает первый сохранённый
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	if _, exists := r.sessions[session.ID]; !exists {
		r.sessions[session.ID] = session
	}
	r.mu.Unlock()

	return nil
}

// Delete удаляет сеанс
func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()

	return nil
}

// DeleteIdle удаляет сеансы, к которым не обращались с момента before
func (r *MemorySessionRepository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.IdleSince(before) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len возвращает число открытых сеансов
func (r *MemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
