package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"rodnan-bot/internal/domain/port"
)

type recorder struct {
	got []port.Notice
	err error
}

func (r *recorder) Notify(ctx context.Context, sessionID string, notice port.Notice) error {
	r.got = append(r.got, notice)
	return r.err
}

func TestInbox_DrainClears(t *testing.T) {
	inbox := NewInbox()
	ctx := context.Background()

	require.NoError(t, inbox.Notify(ctx, "s1", port.Notice{Text: "one"}))
	require.NoError(t, inbox.Notify(ctx, "s1", port.Notice{Text: "two"}))
	require.NoError(t, inbox.Notify(ctx, "s2", port.Notice{Text: "other"}))

	got := inbox.Drain("s1")
	require.Len(t, got, 2)
	require.Equal(t, "one", got[0].Text)
	require.Empty(t, inbox.Drain("s1"))
	require.Len(t, inbox.Drain("s2"), 1)
}

func TestInbox_KeepsNewest(t *testing.T) {
	inbox := NewInbox()
	for i := 0; i < maxPending+4; i++ {
		require.NoError(t, inbox.Notify(context.Background(), "s", port.Notice{Total: i}))
	}

	got := inbox.Drain("s")
	require.Len(t, got, maxPending)
	require.Equal(t, 4, got[0].Total)
}

func TestMulti_DeliversToAll(t *testing.T) {
	a := &recorder{err: errors.New("boom")}
	b := &recorder{}

	err := Multi{a, nil, b}.Notify(context.Background(), "s", port.Notice{Text: "hi"})
	require.EqualError(t, err, "boom")
	require.Len(t, a.got, 1)
	require.Len(t, b.got, 1)
}
