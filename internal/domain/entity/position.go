package entity

import "math"

// Position нормализованные координаты области в процентах (0..100) от ширины и высоты изображения.
type Position struct {
	X float64 // смещение по горизонтали, %
	Y float64 // смещение по вертикали, %
}

// Distance возвращает евклидово расстояние до другой точки.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// ToPixels переводит нормализованную позицию в пиксели для изображения w×h.
func (p Position) ToPixels(w, h float64) (x, y float64) {
	return w * p.X / 100, h * p.Y / 100
}

// InRange проверяет, что обе координаты лежат в [0, 100].
func (p Position) InRange() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// NormalizePointer переводит пиксельные координаты клика в проценты.
// Для пустых размеров возвращает false.
func NormalizePointer(px, py, w, h float64) (Position, bool) {
	if w <= 0 || h <= 0 {
		return Position{}, false
	}
	return Position{X: px / w * 100, Y: py / h * 100}, true
}
