package port

import "context"

// NoticeKind тип уведомления
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
)

// Notice уведомление для пользователя
type Notice struct {
	Kind  NoticeKind
	Text  string
	Total int
}

// Notifier интерфейс получателя уведомлений (тост, сообщение в чат, строка статуса)
type Notifier interface {
	// Notify доставляет уведомление сеансу; подтверждение не требуется
	Notify(ctx context.Context, sessionID string, notice Notice) error
}
