// Package chime озвучивает уведомления через динамик.
package chime

import (
	"context"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"rodnan-bot/internal/domain/port"
)

const sampleRate = beep.SampleRate(44100)

// Notifier проигрывает короткий сигнал и передаёт уведомление дальше
type Notifier struct {
	next  port.Notifier
	ready bool
}

// New инициализирует динамик. Без звука уведомления всё равно доставляются.
func New(next port.Notifier) *Notifier {
	c := &Notifier{next: next}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio initialization failed: %v", err)
		return c
	}
	c.ready = true
	return c
}

func (c *Notifier) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	c.play(toneFor(notice.Kind))
	if c.next == nil {
		return nil
	}
	return c.next.Notify(ctx, sessionID, notice)
}

// Close освобождает звуковое устройство.
func (c *Notifier) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

func (c *Notifier) play(freq int) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

func toneFor(kind port.NoticeKind) int {
	if kind == port.NoticeSuccess {
		return 880
	}
	return 660
}

var _ port.Notifier = (*Notifier)(nil)
