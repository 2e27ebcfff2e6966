package entity

// PointerClass тип указателя: мышь или палец
type PointerClass string

const (
	PointerFine   PointerClass = "fine"   // мышь, тачпад
	PointerCoarse PointerClass = "coarse" // сенсорный экран
)

// MobileBreakpoint ширина окна в пикселях, ниже которой устройство считается сенсорным.
const MobileBreakpoint = 768

// ClassifyViewport определяет класс указателя по ширине окна.
func ClassifyViewport(width int) PointerClass {
	if width > 0 && width < MobileBreakpoint {
		return PointerCoarse
	}
	return PointerFine
}

// ParsePointerClass разбирает строковое значение, по умолчанию — мышь.
func ParsePointerClass(s string) PointerClass {
	if PointerClass(s) == PointerCoarse {
		return PointerCoarse
	}
	return PointerFine
}

// Tolerance радиусы попадания в процентах для каждого класса указателя.
type Tolerance struct {
	Fine   float64
	Coarse float64
}

// DefaultTolerance радиусы по умолчанию: 7% для мыши, 10% для касания.
var DefaultTolerance = Tolerance{Fine: 7, Coarse: 10}

// Radius возвращает радиус попадания для класса указателя.
func (t Tolerance) Radius(class PointerClass) float64 {
	if class == PointerCoarse {
		return t.Coarse
	}
	return t.Fine
}
