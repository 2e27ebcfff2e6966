package app

import (
	"context"
	"errors"
	"log"
	"time"

	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
)

// SessionService открывает сеансы оценки по статическому каталогу.
type SessionService struct {
	repo    port.SessionRepository
	variant entity.Variant
	catalog []entity.Region
}

func NewSessionService(repo port.SessionRepository, variant entity.Variant, catalog []entity.Region) *SessionService {
	return &SessionService{repo: repo, variant: variant, catalog: catalog}
}

func (s *SessionService) Variant() entity.Variant {
	return s.variant
}

// Open возвращает сеанс, создавая новый с оценками по умолчанию.
func (s *SessionService) Open(ctx context.Context, id string) (*entity.Session, error) {
	session, stored, err := s.Peek(ctx, id)
	if err != nil || stored {
		return session, err
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	// Параллельный запрос мог создать сеанс раньше.
	return s.repo.Get(ctx, id)
}

// Peek возвращает сохранённый сеанс или новый, но не сохраняет его.
// stored сообщает, лежит ли сеанс в хранилище.
func (s *SessionService) Peek(ctx context.Context, id string) (session *entity.Session, stored bool, err error) {
	session, err = s.repo.Get(ctx, id)
	if err == nil {
		session.Touch(time.Now())
		return session, true, nil
	}
	if !errors.Is(err, entity.ErrSessionNotFound) {
		return nil, false, err
	}

	scorer, err := entity.NewRegionScorer(s.variant, s.catalog)
	if err != nil {
		return nil, false, err
	}
	return entity.NewSession(id, scorer), false, nil
}

func (s *SessionService) Close(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Expire удаляет сеансы, простаивающие дольше idle.
func (s *SessionService) Expire(ctx context.Context, idle time.Duration) (int, error) {
	return s.repo.DeleteIdle(ctx, time.Now().Add(-idle))
}

// RunExpiry раз в every удаляет простаивающие сеансы, пока не отменён ctx.
func (s *SessionService) RunExpiry(ctx context.Context, idle, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Expire(ctx, idle)
			if err != nil {
				log.Printf("expire sessions: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("expired %d idle sessions", removed)
			}
		}
	}
}
