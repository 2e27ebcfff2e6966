package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
)

var (
	// ErrScoreNotOffered — оценки нет в меню выбора текущего варианта.
	ErrScoreNotOffered = errors.New("score is not offered by the variant")

	// ErrActionUnavailable — у варианта нет такой кнопки.
	ErrActionUnavailable = errors.New("action is not available for the variant")
)

// Snapshot состояние сеанса для отображения.
type Snapshot struct {
	SessionID string
	Variant   entity.Variant
	Regions   []entity.Region
	Selected  entity.Selection
	Total     int
}

// SelectedRegion возвращает выбранную область, если она есть.
func (s Snapshot) SelectedRegion() (entity.Region, bool) {
	id, ok := s.Selected.RegionID()
	if !ok {
		return entity.Region{}, false
	}
	for _, r := range s.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Region{}, false
}

// ScoringService выполняет действия пользователя над сеансом оценки.
type ScoringService struct {
	sessions  *SessionService
	notifier  port.Notifier
	tolerance entity.Tolerance
}

// NewScoringService создаёт сервис; notifier может быть nil.
func NewScoringService(sessions *SessionService, notifier port.Notifier, tolerance entity.Tolerance) *ScoringService {
	return &ScoringService{
		sessions:  sessions,
		notifier:  notifier,
		tolerance: tolerance,
	}
}

// Snapshot возвращает текущее состояние сеанса.
func (s *ScoringService) Snapshot(ctx context.Context, sessionID string) (Snapshot, error) {
	var snap Snapshot
	err := s.with(ctx, sessionID, func(session *entity.Session) error {
		snap = snapshotOf(session)
		return nil
	})
	return snap, err
}

// View возвращает состояние сеанса, не создавая его в хранилище.
// Для неизвестного сеанса это состояние по умолчанию.
func (s *ScoringService) View(ctx context.Context, sessionID string) (Snapshot, error) {
	session, _, err := s.sessions.Peek(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	session.Lock()
	defer session.Unlock()
	return snapshotOf(session), nil
}

// Toggle выбирает область по нажатию на маркер или снимает выбор.
func (s *ScoringService) Toggle(ctx context.Context, sessionID, regionID string) (Snapshot, error) {
	var snap Snapshot
	err := s.with(ctx, sessionID, func(session *entity.Session) error {
		if err := session.Scorer.ToggleSelect(regionID); err != nil {
			return err
		}
		snap = snapshotOf(session)
		return nil
	})
	return snap, err
}

// Click обрабатывает клик по изображению в пикселях поверхности.
// До загрузки изображения и при промахе ничего не меняется.
func (s *ScoringService) Click(ctx context.Context, sessionID string, surface port.DisplaySurface, px, py float64, pointer entity.PointerClass) (Snapshot, bool, error) {
	var (
		snap Snapshot
		hit  bool
	)
	err := s.with(ctx, sessionID, func(session *entity.Session) error {
		defer func() { snap = snapshotOf(session) }()

		if surface == nil || !surface.Ready() {
			return nil
		}
		w, h := surface.Bounds()
		pos, ok := entity.NormalizePointer(px, py, w, h)
		if !ok {
			return nil
		}

		_, hit = session.Scorer.HitTest(pos.X, pos.Y, s.tolerance.Radius(pointer))
		return nil
	})
	return snap, hit, err
}

// Score записывает оценку выбранной области. Без выбора ничего не делает.
func (s *ScoringService) Score(ctx context.Context, sessionID string, score int) (Snapshot, error) {
	var snap Snapshot
	err := s.with(ctx, sessionID, func(session *entity.Session) error {
		snap = snapshotOf(session)
		if session.Scorer.Selection().IsNone() {
			return nil
		}
		if !session.Scorer.Variant().Allows(score) {
			return fmt.Errorf("%w: %d", ErrScoreNotOffered, score)
		}
		session.Scorer.ApplyScore(score)
		snap = snapshotOf(session)
		return nil
	})
	return snap, err
}

// Reset обнуляет оценки; для варианта с кнопкой сброса отправляет уведомление.
func (s *ScoringService) Reset(ctx context.Context, sessionID string) (Snapshot, error) {
	var snap Snapshot
	err := s.with(ctx, sessionID, func(session *entity.Session) error {
		session.Scorer.Reset()
		snap = snapshotOf(session)
		return nil
	})
	if err != nil {
		return snap, err
	}

	if snap.Variant.Action == entity.ActionReset {
		s.notify(ctx, sessionID, port.Notice{
			Kind:  port.NoticeInfo,
			Text:  snap.Variant.Messages.ResetDone,
			Total: snap.Total,
		})
	}
	return snap, nil
}

// Save подтверждает итог уведомлением. Ничего не сохраняет.
func (s *ScoringService) Save(ctx context.Context, sessionID string) (Snapshot, error) {
	snap, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return snap, err
	}
	if snap.Variant.Action != entity.ActionNotify {
		return snap, fmt.Errorf("%w: save", ErrActionUnavailable)
	}

	s.notify(ctx, sessionID, port.Notice{
		Kind:  port.NoticeSuccess,
		Text:  snap.Variant.SavedText(snap.Total),
		Total: snap.Total,
	})
	return snap, nil
}

// Action выполняет действие кнопки варианта: сброс или сохранение.
func (s *ScoringService) Action(ctx context.Context, sessionID string) (Snapshot, error) {
	if s.sessions.Variant().Action == entity.ActionNotify {
		return s.Save(ctx, sessionID)
	}
	return s.Reset(ctx, sessionID)
}

// Markers строит отметки областей в пикселях поверхности.
// Пока изображение не готово, отметок нет.
func (s *ScoringService) Markers(ctx context.Context, sessionID string, surface port.DisplaySurface) ([]port.Marker, error) {
	snap, err := s.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if surface == nil || !surface.Ready() {
		return nil, nil
	}
	w, h := surface.Bounds()
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	markers := make([]port.Marker, 0, len(snap.Regions))
	for _, r := range snap.Regions {
		x, y := r.Position.ToPixels(w, h)
		markers = append(markers, port.Marker{
			RegionID: r.ID,
			Name:     r.Name,
			X:        x,
			Y:        y,
			Score:    r.Score,
			Color:    snap.Variant.ColorFor(r.Score),
			Selected: snap.Selected.Is(r.ID),
			Unscored: snap.Variant.IsUnscored(r.Score),
		})
	}
	return markers, nil
}

func (s *ScoringService) with(ctx context.Context, sessionID string, fn func(*entity.Session) error) error {
	session, err := s.sessions.Open(ctx, sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	return fn(session)
}

func (s *ScoringService) notify(ctx context.Context, sessionID string, notice port.Notice) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, sessionID, notice); err != nil {
		log.Printf("notify session %s: %v", sessionID, err)
	}
}

func snapshotOf(session *entity.Session) Snapshot {
	return Snapshot{
		SessionID: session.ID,
		Variant:   session.Scorer.Variant(),
		Regions:   session.Scorer.Regions(),
		Selected:  session.Scorer.Selection(),
		Total:     session.Scorer.Total(),
	}
}
