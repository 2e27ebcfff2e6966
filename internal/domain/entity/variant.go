package entity

import "fmt"

// Action действие кнопки под итогом
type Action string

const (
	ActionReset  Action = "reset"  // обнулить оценки и показать уведомление
	ActionNotify Action = "notify" // «сохранить»: показать итог без сохранения
)

// ScoreOption вариант оценки в меню выбора
type ScoreOption struct {
	Score int
	Label string
	Color string // цвет маркера, #RRGGBB
}

// Messages тексты интерфейса для варианта
type Messages struct {
	Heading     string // заголовок страницы
	Hint        string // подсказка «кликните по телу»
	PickPrompt  string // %s — название области
	TotalLabel  string
	ActionLabel string // подпись кнопки сброса/сохранения
	ResetDone   string
	Saved       string // %d — итог
}

// Variant конфигурация шкалы оценок
type Variant struct {
	Key           string
	Locale        string
	Options       []ScoreOption // упорядоченный набор допустимых оценок
	DefaultScore  int           // значение «нет находки»
	UnscoredColor string        // цвет маркера, если значение по умолчанию вне шкалы
	Action        Action
	Messages      Messages
}

// AllowedScores возвращает допустимые оценки по порядку.
func (v Variant) AllowedScores() []int {
	scores := make([]int, 0, len(v.Options))
	for _, o := range v.Options {
		scores = append(scores, o.Score)
	}
	return scores
}

// Allows проверяет, входит ли оценка в шкалу.
func (v Variant) Allows(score int) bool {
	_, ok := v.Option(score)
	return ok
}

// Option возвращает описание оценки.
func (v Variant) Option(score int) (ScoreOption, bool) {
	for _, o := range v.Options {
		if o.Score == score {
			return o, true
		}
	}
	return ScoreOption{}, false
}

// IsUnscored сообщает, что значение — метка «не оценено», а не оценка из шкалы.
// В варианте A ноль входит в шкалу, в варианте B это метка.
func (v Variant) IsUnscored(score int) bool {
	return score == v.DefaultScore && !v.Allows(score)
}

// ColorFor возвращает цвет маркера для оценки.
func (v Variant) ColorFor(score int) string {
	if o, ok := v.Option(score); ok {
		return o.Color
	}
	if v.UnscoredColor != "" && score == v.DefaultScore {
		return v.UnscoredColor
	}
	return "#F87171"
}

// SavedText формирует уведомление о сохранении с итогом.
func (v Variant) SavedText(total int) string {
	return fmt.Sprintf(v.Messages.Saved, total)
}

// PickText формирует приглашение выбрать оценку для области.
func (v Variant) PickText(regionName string) string {
	return fmt.Sprintf(v.Messages.PickPrompt, regionName)
}

// Validate проверяет согласованность варианта.
func (v Variant) Validate() error {
	if v.Key == "" {
		return fmt.Errorf("variant: empty key")
	}
	if len(v.Options) == 0 {
		return fmt.Errorf("variant %s: no score options", v.Key)
	}
	seen := make(map[int]bool, len(v.Options))
	for _, o := range v.Options {
		if seen[o.Score] {
			return fmt.Errorf("variant %s: duplicate score %d", v.Key, o.Score)
		}
		seen[o.Score] = true
	}
	switch v.Action {
	case ActionReset, ActionNotify:
	default:
		return fmt.Errorf("variant %s: unknown action %q", v.Key, v.Action)
	}
	return nil
}
