package tui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
)

const (
	sessionID  = "tui"
	panelWidth = 44
	minBoxW    = 20
	minBoxH    = 10
)

// box область схемы в ячейках терминала; она же поверхность отображения
type box struct {
	x, y, w, h int
}

func (b box) Ready() bool {
	return b.w >= minBoxW && b.h >= minBoxH
}

func (b box) Bounds() (float64, float64) {
	return float64(b.w), float64(b.h)
}

// App терминальный калькулятор: мышь выбирает область, цифры ставят оценку
type App struct {
	screen  tcell.Screen
	scoring *app.ScoringService
	status  *StatusLine
}

func New(screen tcell.Screen, scoring *app.ScoringService, status *StatusLine) *App {
	return &App{screen: screen, scoring: scoring, status: status}
}

// Run обрабатывает события до выхода пользователя.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.Clear()
	a.draw(ctx)

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := a.handleEvent(ctx, ev); quit {
			return nil
		}
		a.draw(ctx)
	}
}

// layout вписывает схему в левую часть экрана; ячейка примерно вдвое выше своей ширины.
func (a *App) layout() box {
	w, h := a.screen.Size()
	bh := h - 2
	bw := 2 * bh
	if limit := w - panelWidth - 3; bw > limit {
		bw = limit
	}
	bh = bw / 2
	if bw < 0 || bh < 0 {
		return box{}
	}
	return box{x: 1, y: 1, w: bw, h: bh}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		mx, my := ev.Position()
		b := a.layout()
		px := float64(mx-b.x) + 0.5
		py := float64(my-b.y) + 0.5
		if px < 0 || py < 0 || px > float64(b.w) || py > float64(b.h) {
			return false
		}
		a.status.Clear()
		if _, _, err := a.scoring.Click(ctx, sessionID, b, px, py, entity.PointerFine); err != nil {
			log.Printf("click: %v", err)
		}

	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		a.clearSelection(ctx)
		return false
	case tcell.KeyTab:
		a.selectNext(ctx)
		return false
	case tcell.KeyEnter:
		a.run(a.scoring.Action(ctx, sessionID))
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 'r':
		a.run(a.scoring.Reset(ctx, sessionID))
	case r == 's':
		a.run(a.scoring.Save(ctx, sessionID))
	case r >= '0' && r <= '9':
		a.status.Clear()
		a.run(a.scoring.Score(ctx, sessionID, int(r-'0')))
	}
	return false
}

// run глотает ошибки обычного ввода: цифра вне шкалы, кнопка другого варианта.
func (a *App) run(_ app.Snapshot, err error) {
	switch {
	case err == nil:
	case errors.Is(err, app.ErrScoreNotOffered), errors.Is(err, app.ErrActionUnavailable):
	default:
		log.Printf("tui: %v", err)
	}
}

func (a *App) clearSelection(ctx context.Context) {
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	if err != nil {
		return
	}
	if id, ok := snap.Selected.RegionID(); ok {
		a.run(a.scoring.Toggle(ctx, sessionID, id))
	}
}

// selectNext переводит выбор на следующую область каталога.
func (a *App) selectNext(ctx context.Context) {
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	if err != nil || len(snap.Regions) == 0 {
		return
	}
	next := 0
	if id, ok := snap.Selected.RegionID(); ok {
		for i, r := range snap.Regions {
			if r.ID == id {
				next = (i + 1) % len(snap.Regions)
			}
		}
	}
	a.run(a.scoring.Toggle(ctx, sessionID, snap.Regions[next].ID))
}

func (a *App) draw(ctx context.Context) {
	a.screen.Clear()
	snap, err := a.scoring.Snapshot(ctx, sessionID)
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}

	b := a.layout()
	a.drawBox(b)
	if b.Ready() {
		a.drawMarkers(ctx, b)
	} else {
		a.text(1, 1, tcell.StyleDefault, "terminal is too small")
	}
	a.drawPanel(snap, b.x+b.w+2)
	a.screen.Show()
}

func (a *App) drawBox(b box) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := b.x - 1; x <= b.x+b.w; x++ {
		a.screen.SetContent(x, b.y-1, '─', nil, style)
		a.screen.SetContent(x, b.y+b.h, '─', nil, style)
	}
	for y := b.y; y < b.y+b.h; y++ {
		a.screen.SetContent(b.x-1, y, '│', nil, style)
		a.screen.SetContent(b.x+b.w, y, '│', nil, style)
	}
}

func (a *App) drawMarkers(ctx context.Context, b box) {
	markers, err := a.scoring.Markers(ctx, sessionID, b)
	if err != nil {
		log.Printf("markers: %v", err)
		return
	}
	for _, m := range markers {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(m.Color))
		glyph := '●'
		if m.Unscored {
			glyph = '○'
		}
		if m.Selected {
			style = style.Background(tcell.ColorBlue)
		}
		a.screen.SetContent(b.x+int(m.X), b.y+int(m.Y), glyph, nil, style)
	}
}

func (a *App) drawPanel(snap app.Snapshot, x int) {
	v := snap.Variant
	bold := tcell.StyleDefault.Bold(true)
	y := 1

	a.text(x, y, bold, v.Messages.Heading)
	y += 2
	a.text(x, y, tcell.StyleDefault.Foreground(tcell.ColorRed), v.Messages.Hint)
	y += 2

	if region, ok := snap.SelectedRegion(); ok {
		a.text(x, y, bold, v.PickText(region.Name))
		y++
		for _, o := range v.Options {
			style := tcell.StyleDefault.Foreground(tcell.GetColor(o.Color))
			a.text(x, y, style, fmt.Sprintf(" [%d] %s", o.Score, o.Label))
			y++
		}
		y++
	}

	a.text(x, y, bold, fmt.Sprintf("%s %d", v.Messages.TotalLabel, snap.Total))
	y += 2
	a.text(x, y, tcell.StyleDefault, fmt.Sprintf("[Enter] %s  [Tab] next  [Esc] clear  [q] quit", v.Messages.ActionLabel))
	y += 2

	if n, ok := a.status.Current(); ok {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if n.Kind == port.NoticeSuccess {
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}
		a.text(x, y, style, n.Text)
	}
}

func (a *App) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
