package entity

import "errors"

var (
	// ErrUnknownRegion — идентификатор области отсутствует в каталоге.
	// Это ошибка интеграции, а не пользовательская ситуация.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrInvalidCatalog — каталог областей нельзя использовать.
	ErrInvalidCatalog = errors.New("invalid region catalog")

	// ErrSessionNotFound — сеанс оценки не найден.
	ErrSessionNotFound = errors.New("session not found")
)
