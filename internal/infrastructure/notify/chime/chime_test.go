package chime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rodnan-bot/internal/domain/port"
)

type recorder struct {
	got []port.Notice
}

func (r *recorder) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	r.got = append(r.got, notice)
	return nil
}

func TestNotifier_ForwardsWithoutAudio(t *testing.T) {
	next := &recorder{}
	c := &Notifier{next: next}

	require.NoError(t, c.Notify(context.Background(), "s", port.Notice{Kind: port.NoticeSuccess}))
	require.Len(t, next.got, 1)
	c.Close()
}

func TestNotifier_NilNext(t *testing.T) {
	c := &Notifier{}
	require.NoError(t, c.Notify(context.Background(), "s", port.Notice{}))
}

func TestToneFor(t *testing.T) {
	require.Equal(t, 880, toneFor(port.NoticeSuccess))
	require.Equal(t, 660, toneFor(port.NoticeInfo))
}
