package port

import (
	"context"
	"time"

	"rodnan-bot/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сеансов оценки
type SessionRepository interface {
	// Get возвращает сеанс по ID или entity.ErrSessionNotFound
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save сохраняет сеанс
	Save(ctx context.Context, session *entity.Session) error

	// Delete удаляет сеанс
	Delete(ctx context.Context, id string) error

	// DeleteIdle удаляет сеансы без обращений с момента before, возвращает их число
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
