package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	// Вариант шкалы: "a" (0–3, сброс) или "b" (1–4, сохранение)
	Variant string

	HTTPAddr      string
	SessionSecret string
	CORSOrigins   []string

	BodyImagePath string
	DiagramSize   int

	ToleranceFine   float64
	ToleranceCoarse float64

	EnableSound bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		Variant:         strings.ToLower(envOr("RODNAN_VARIANT", "a")),
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
		BodyImagePath:   os.Getenv("BODY_IMAGE_PATH"),
		DiagramSize:     intOr("DIAGRAM_SIZE", 600),
		ToleranceFine:   floatOr("TOLERANCE_FINE", 7),
		ToleranceCoarse: floatOr("TOLERANCE_COARSE", 10),
		EnableSound:     boolOr("ENABLE_SOUND", true),
	}

	if strings.TrimSpace(cfg.SessionSecret) == "" {
		log.Printf("SESSION_SECRET is not set: using a random secret, web sessions will not survive a restart")
		cfg.SessionSecret = randomSecret()
	}

	return cfg, nil
}

// randomSecret 244 случайных бита из двух UUIDv4
func randomSecret() string {
	a, b := uuid.New(), uuid.New()
	return strings.ReplaceAll(a.String()+b.String(), "-", "")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func floatOr(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return def
}

func boolOr(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func csvOr(key, def string) []string {
	raw := envOr(key, def)
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
