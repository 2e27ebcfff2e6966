package render

import (
	"strconv"

	"rodnan-bot/internal/domain/port"
)

// Контур тела в процентах от размеров изображения, под позиции областей каталога.
var (
	headCenter = [2]float64{36.5, 14.5}
	headRadius = [2]float64{6.5, 7.5}

	// Отрезки конечностей и туловища: пары точек, толщина в процентах ширины.
	limbs = []struct {
		from, to [2]float64
		width    float64
	}{
		{[2]float64{39.4, 22.5}, [2]float64{39.6, 50.0}, 17}, // туловище
		{[2]float64{30.0, 24.0}, [2]float64{22.5, 34.0}, 5.5},
		{[2]float64{22.5, 34.0}, [2]float64{20.6, 48.0}, 4.5},
		{[2]float64{20.6, 48.0}, [2]float64{21.0, 56.5}, 3.5},
		{[2]float64{49.0, 24.0}, [2]float64{55.5, 34.0}, 5.5},
		{[2]float64{55.5, 34.0}, [2]float64{56.8, 48.0}, 4.5},
		{[2]float64{56.8, 48.0}, [2]float64{57.0, 56.5}, 3.5},
		{[2]float64{35.5, 52.0}, [2]float64{30.5, 68.0}, 7.5},
		{[2]float64{30.5, 68.0}, [2]float64{29.5, 81.0}, 5.5},
		{[2]float64{43.5, 52.0}, [2]float64{48.5, 68.0}, 7.5},
		{[2]float64{48.5, 68.0}, [2]float64{49.0, 81.0}, 5.5},
	}
)

const (
	bodyFill     = "#E5E7EB"
	bodyStroke   = "#9CA3AF"
	markerStroke = "#6B7280"
	selectRing   = "#3B82F6"
)

// markerRadius радиус отметки в пикселях для изображения w×h.
func markerRadius(w, h int) float64 {
	side := w
	if h < side {
		side = h
	}
	r := float64(side) * 0.022
	if r < 6 {
		r = 6
	}
	return r
}

// markerLabel текст внутри отметки; у метки «не оценено» текста нет.
func markerLabel(m port.Marker) string {
	if m.Unscored {
		return ""
	}
	return strconv.Itoa(m.Score)
}

// FixedSurface поверхность отрисованного PNG известного размера.
type FixedSurface struct {
	Width, Height int
}

func (s FixedSurface) Ready() bool {
	return s.Width > 0 && s.Height > 0
}

func (s FixedSurface) Bounds() (float64, float64) {
	return float64(s.Width), float64(s.Height)
}

var _ port.DisplaySurface = FixedSurface{}
