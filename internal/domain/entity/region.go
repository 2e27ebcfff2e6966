package entity

// Region анатомическая зона, которой врач присваивает оценку
type Region struct {
	ID       string   // стабильный ключ
	Name     string   // подпись на языке варианта
	Position Position // положение на схеме
	Score    int      // текущая оценка
}
