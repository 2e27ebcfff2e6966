package entity

import (
	"fmt"
	"math"
)

// RegionScorer хранит области схемы, выбранную область и считает итог.
// Не потокобезопасен: вызывающая сторона обрабатывает события по одному.
type RegionScorer struct {
	variant  Variant
	regions  []Region
	index    map[string]int
	selected Selection
}

// NewRegionScorer создаёт оценщик по каталогу; все оценки выставляются в значение по умолчанию.
func NewRegionScorer(variant Variant, catalog []Region) (*RegionScorer, error) {
	if err := variant.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: no regions", ErrInvalidCatalog)
	}

	s := &RegionScorer{
		variant: variant,
		regions: make([]Region, 0, len(catalog)),
		index:   make(map[string]int, len(catalog)),
	}
	for _, r := range catalog {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: empty region id", ErrInvalidCatalog)
		}
		if _, dup := s.index[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidCatalog, r.ID)
		}
		if !r.Position.InRange() {
			return nil, fmt.Errorf("%w: region %q is outside the diagram", ErrInvalidCatalog, r.ID)
		}
		r.Score = variant.DefaultScore
		s.index[r.ID] = len(s.regions)
		s.regions = append(s.regions, r)
	}

	return s, nil
}

// Variant возвращает шкалу оценок.
func (s *RegionScorer) Variant() Variant {
	return s.variant
}

// Selection возвращает текущий выбор.
func (s *RegionScorer) Selection() Selection {
	return s.selected
}

// Regions возвращает копию областей в порядке каталога.
func (s *RegionScorer) Regions() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Region возвращает область по идентификатору.
func (s *RegionScorer) Region(id string) (Region, error) {
	i, ok := s.index[id]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	return s.regions[i], nil
}

// ToggleSelect выбирает область или снимает выбор, если она уже выбрана.
func (s *RegionScorer) ToggleSelect(id string) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	if s.selected.Is(id) {
		s.selected = NoSelection
		return nil
	}
	s.selected = Selected(id)
	return nil
}

// HitTest ищет ближайшую область строго внутри радиуса и выбирает её.
// При равных расстояниях побеждает первая по каталогу. Повторное попадание
// в уже выбранную область выбор не снимает. Промах ничего не меняет.
func (s *RegionScorer) HitTest(x, y, radius float64) (string, bool) {
	pointer := Position{X: x, Y: y}
	best := -1
	minDistance := math.MaxFloat64

	for i, r := range s.regions {
		d := pointer.Distance(r.Position)
		if d < minDistance && d < radius {
			minDistance = d
			best = i
		}
	}

	if best < 0 {
		return "", false
	}

	id := s.regions[best].ID
	s.selected = Selected(id)
	return id, true
}

// ApplyScore записывает оценку выбранной области и снимает выбор.
// Без выбора ничего не делает. Значение не проверяется по шкале.
func (s *RegionScorer) ApplyScore(score int) (Region, bool) {
	id, ok := s.selected.RegionID()
	if !ok {
		return Region{}, false
	}

	i := s.index[id]
	s.regions[i].Score = score
	s.selected = NoSelection
	return s.regions[i], true
}

// Reset возвращает все оценки к значению по умолчанию и снимает выбор.
func (s *RegionScorer) Reset() {
	for i := range s.regions {
		s.regions[i].Score = s.variant.DefaultScore
	}
	s.selected = NoSelection
}

// Total сумма оценок всех областей, считается при каждом вызове.
func (s *RegionScorer) Total() int {
	total := 0
	for _, r := range s.regions {
		total += r.Score
	}
	return total
}
