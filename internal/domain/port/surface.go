package port

// DisplaySurface поверхность, на которой нарисована схема тела
type DisplaySurface interface {
	// Ready сообщает, что изображение загружено и клики можно обрабатывать
	Ready() bool

	// Bounds возвращает размеры отрисованного изображения в пикселях
	Bounds() (width, height float64)
}
