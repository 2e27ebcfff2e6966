package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/infrastructure/catalog"
	"rodnan-bot/internal/infrastructure/storage"
)

func newTestApp(t *testing.T, variantKey string) (*App, tcell.SimulationScreen) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	variant, regions, err := cat.Load(variantKey)
	require.NoError(t, err)

	status := &StatusLine{}
	sessions := app.NewSessionService(storage.NewMemorySessionRepository(), variant, regions)
	scoring := app.NewScoringService(sessions, status, entity.DefaultTolerance)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 32)
	t.Cleanup(screen.Fini)

	return New(screen, scoring, status), screen
}

// cellOf возвращает ячейку, в которой нарисована отметка области.
func cellOf(t *testing.T, a *App, regionID string) (int, int) {
	t.Helper()
	snap, err := a.scoring.Snapshot(context.Background(), sessionID)
	require.NoError(t, err)
	b := a.layout()
	for _, r := range snap.Regions {
		if r.ID == regionID {
			x, y := r.Position.ToPixels(float64(b.w), float64(b.h))
			return b.x + int(x), b.y + int(y)
		}
	}
	t.Fatalf("region %s not found", regionID)
	return 0, 0
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if rs := cells[y*w+x].Runes; len(rs) > 0 {
			sb.WriteRune(rs[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	var lines []string
	for y := 0; y < h; y++ {
		lines = append(lines, row(screen, y))
	}
	return strings.Join(lines, "\n")
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLayout(t *testing.T) {
	a, _ := newTestApp(t, "a")
	b := a.layout()
	require.Equal(t, box{x: 1, y: 1, w: 53, h: 26}, b)
	require.True(t, b.Ready())
}

func TestApp_ClickThenScore(t *testing.T) {
	a, screen := newTestApp(t, "a")
	ctx := context.Background()

	x, y := cellOf(t, a, "thorax")
	a.handleEvent(ctx, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

	snap, err := a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, snap.Selected.Is("thorax"))

	a.draw(ctx)
	require.Contains(t, screenText(screen), "Selecione um valor para Tórax:")

	a.handleEvent(ctx, key('2'))
	snap, err = a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Total)
	require.True(t, snap.Selected.IsNone())

	a.draw(ctx)
	require.Contains(t, screenText(screen), "Pontuação total: 2")
}

func TestApp_ClickOutsideBoxIsIgnored(t *testing.T) {
	a, _ := newTestApp(t, "a")
	ctx := context.Background()

	a.handleEvent(ctx, tcell.NewEventMouse(95, 30, tcell.Button1, tcell.ModNone))
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, snap.Selected.IsNone())
}

func TestApp_TabAndEscape(t *testing.T) {
	a, _ := newTestApp(t, "a")
	ctx := context.Background()

	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, snap.Selected.Is("thorax"))

	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	snap, err = a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, snap.Selected.IsNone())
}

func TestApp_ResetShowsStatus(t *testing.T) {
	a, screen := newTestApp(t, "a")
	ctx := context.Background()

	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	a.handleEvent(ctx, key('3'))
	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	snap, err := a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, 0, snap.Total)

	a.draw(ctx)
	require.Contains(t, screenText(screen), "Todos os valores foram reiniciados")
}

func TestApp_VariantBIgnoresOffScaleDigit(t *testing.T) {
	a, screen := newTestApp(t, "b")
	ctx := context.Background()

	a.handleEvent(ctx, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	a.handleEvent(ctx, key('0'))
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, snap.Selected.Is("visage"))

	a.handleEvent(ctx, key('4'))
	a.handleEvent(ctx, key('s'))
	a.draw(ctx)
	require.Contains(t, screenText(screen), "Score enregistré : 4")
}

func TestApp_Quit(t *testing.T) {
	a, _ := newTestApp(t, "a")
	require.True(t, a.handleEvent(context.Background(), key('q')))
	require.True(t, a.handleEvent(context.Background(), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	require.False(t, a.handleEvent(context.Background(), key('x')))
}
