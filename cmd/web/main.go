package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"rodnan-bot/config"
	"rodnan-bot/internal/api/web"
	"rodnan-bot/internal/container"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/infrastructure/notify"
	"rodnan-bot/internal/infrastructure/render"
	"rodnan-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	renderer, err := render.NewDiagramRenderer(cfg.BodyImagePath)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	inbox := notify.NewInbox()
	tolerance := entity.Tolerance{Fine: cfg.ToleranceFine, Coarse: cfg.ToleranceCoarse}

	appContainer, err := container.New(cfg.Variant, storage.NewMemorySessionRepository(), notify.Multi{inbox, notify.LogNotifier{}}, renderer, tolerance)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	go appContainer.SessionService.RunExpiry(context.Background(), web.SessionTTL, time.Minute)

	srv := web.NewServer(appContainer, inbox, web.NewSessionTokens(cfg.SessionSecret), cfg.CORSOrigins, cfg.DiagramSize)

	log.Printf("listening on %s (variant=%s)", cfg.HTTPAddr, cfg.Variant)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, srv.Router()))
}
