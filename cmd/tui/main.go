package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"rodnan-bot/config"
	"rodnan-bot/internal/api/tui"
	"rodnan-bot/internal/container"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
	"rodnan-bot/internal/infrastructure/notify/chime"
	"rodnan-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Журнал мешает отрисовке экрана
	log.SetOutput(io.Discard)

	status := &tui.StatusLine{}
	var notifier port.Notifier = status
	if cfg.EnableSound {
		bell := chime.New(status)
		defer bell.Close()
		notifier = bell
	}

	tolerance := entity.Tolerance{Fine: cfg.ToleranceFine, Coarse: cfg.ToleranceCoarse}
	appContainer, err := container.New(cfg.Variant, storage.NewMemorySessionRepository(), notifier, nil, tolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build services: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err := tui.New(screen, appContainer.ScoringService, status).Run(context.Background()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
