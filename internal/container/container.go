package container

import (
	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
	"rodnan-bot/internal/infrastructure/catalog"
)

type Container struct {
	Variant        entity.Variant
	SessionService *app.SessionService
	ScoringService *app.ScoringService
	Renderer       port.DiagramRenderer
}

// New собирает сервисы для выбранного варианта шкалы.
func New(variantKey string, sessionRepo port.SessionRepository, notifier port.Notifier, renderer port.DiagramRenderer, tolerance entity.Tolerance) (*Container, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	variant, regions, err := cat.Load(variantKey)
	if err != nil {
		return nil, err
	}

	sessionService := app.NewSessionService(sessionRepo, variant, regions)
	scoringService := app.NewScoringService(sessionService, notifier, tolerance)

	return &Container{
		Variant:        variant,
		SessionService: sessionService,
		ScoringService: scoringService,
		Renderer:       renderer,
	}, nil
}
