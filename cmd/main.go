package main

import (
	"log"

	"rodnan-bot/config"
	telegram "rodnan-bot/internal/api"
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

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	api, err := telegram.Connect(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	renderer, err := render.NewDiagramRenderer(cfg.BodyImagePath)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	// Уведомления уходят в чат сеанса и в журнал
	notifier := notify.Multi{telegram.NewChatNotifier(api), notify.LogNotifier{}}
	tolerance := entity.Tolerance{Fine: cfg.ToleranceFine, Coarse: cfg.ToleranceCoarse}

	appContainer, err := container.New(cfg.Variant, storage.NewMemorySessionRepository(), notifier, renderer, tolerance)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	bot := telegram.NewBot(api, appContainer, cfg.DiagramSize)

	log.Printf("Bot is running (variant=%s)...", cfg.Variant)
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
