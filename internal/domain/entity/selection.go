package entity

// Selection выбранная область, ожидающая оценку. Нулевое значение — ничего не выбрано.
type Selection struct {
	regionID string
	active   bool
}

// NoSelection пустой выбор
var NoSelection = Selection{}

// Selected создаёт выбор указанной области.
func Selected(regionID string) Selection {
	return Selection{regionID: regionID, active: true}
}

// RegionID возвращает идентификатор выбранной области.
func (s Selection) RegionID() (string, bool) {
	return s.regionID, s.active
}

// IsNone сообщает, что ничего не выбрано.
func (s Selection) IsNone() bool {
	return !s.active
}

// Is проверяет, выбрана ли конкретная область.
func (s Selection) Is(regionID string) bool {
	return s.active && s.regionID == regionID
}
