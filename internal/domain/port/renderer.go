package port

import "context"

// Marker отметка области поверх схемы, уже в пикселях
type Marker struct {
	RegionID string
	Name     string
	X, Y     float64
	Score    int
	Color    string
	Selected bool
	Unscored bool
}

// DiagramRenderer интерфейс отрисовки схемы с отметками
type DiagramRenderer interface {
	// Render рисует схему размером width×height и возвращает PNG
	Render(ctx context.Context, markers []Marker, width, height int) ([]byte, error)
}
