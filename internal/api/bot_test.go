package telegram

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"rodnan-bot/internal/container"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
	"rodnan-bot/internal/infrastructure/render"
	"rodnan-bot/internal/infrastructure/storage"
)

type fakeSender struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) last() tgbotapi.Chattable {
	return f.sent[len(f.sent)-1]
}

func newTestBot(t *testing.T, variant string) (*Bot, *fakeSender) {
	t.Helper()
	sender := &fakeSender{}
	renderer, err := render.NewDiagramRenderer("")
	require.NoError(t, err)

	c, err := container.New(variant, storage.NewMemorySessionRepository(), NewChatNotifier(sender), renderer, entity.DefaultTolerance)
	require.NoError(t, err)
	return newBot(sender, c, 300), sender
}

func command(chatID int64, text string) *tgbotapi.Message {
	name := strings.Fields(text)[0]
	return &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: chatID},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func callback(chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		Data:    data,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
	}}
}

func TestBot_StartSendsDiagram(t *testing.T) {
	bot, sender := newTestBot(t, "a")

	bot.handleMessage(context.Background(), command(7, "/start"))

	require.Len(t, sender.sent, 1)
	photo, ok := sender.last().(tgbotapi.PhotoConfig)
	require.True(t, ok)
	require.Contains(t, photo.Caption, "Pontuação total: 0")

	kb, ok := photo.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	// 17 областей по 3 в ряд + кнопка действия
	require.Len(t, kb.InlineKeyboard, 7)
	require.Equal(t, "Zerar Avaliação", kb.InlineKeyboard[6][0].Text)
}

func TestBot_SelectAndScore(t *testing.T) {
	bot, sender := newTestBot(t, "a")
	ctx := context.Background()

	bot.handleUpdate(ctx, callback(7, "sel:thorax"))
	require.Len(t, sender.requests, 1)
	picker, ok := sender.last().(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, "Selecione um valor para Tórax:", picker.Text)
	kb := picker.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.Len(t, kb.InlineKeyboard, 4)

	bot.handleUpdate(ctx, callback(7, "score:2"))
	photo, ok := sender.last().(tgbotapi.PhotoConfig)
	require.True(t, ok)
	require.Contains(t, photo.Caption, "Pontuação total: 2")

	snap, err := bot.app.ScoringService.Snapshot(ctx, SessionID(7))
	require.NoError(t, err)
	require.Equal(t, 2, snap.Total)
}

func TestBot_TapHitsRegion(t *testing.T) {
	bot, sender := newTestBot(t, "a")

	// Живот (39.8, 45.7) на схеме 300×300
	bot.handleMessage(context.Background(), command(7, "/tap 120 137"))
	picker, ok := sender.last().(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, "Selecione um valor para Abdome:", picker.Text)
}

func TestBot_TapMissAndBadArgs(t *testing.T) {
	bot, sender := newTestBot(t, "a")
	ctx := context.Background()

	bot.handleMessage(ctx, command(7, "/tap 295 5"))
	require.Equal(t, msgNoRegion, sender.last().(tgbotapi.MessageConfig).Text)

	bot.handleMessage(ctx, command(7, "/tap here"))
	require.Contains(t, sender.last().(tgbotapi.MessageConfig).Text, "/tap X Y")
}

func TestBot_ResetNotifiesInVariantA(t *testing.T) {
	bot, sender := newTestBot(t, "a")

	bot.handleMessage(context.Background(), command(7, "/reset"))

	require.Len(t, sender.sent, 2)
	notice := sender.sent[0].(tgbotapi.MessageConfig)
	require.Equal(t, int64(7), notice.ChatID)
	require.Contains(t, notice.Text, "Todos os valores foram reiniciados")
	_, ok := sender.sent[1].(tgbotapi.PhotoConfig)
	require.True(t, ok)
}

func TestBot_SaveInVariantB(t *testing.T) {
	bot, sender := newTestBot(t, "b")
	ctx := context.Background()

	bot.handleUpdate(ctx, callback(7, "sel:piedD"))
	bot.handleUpdate(ctx, callback(7, "score:3"))
	bot.handleUpdate(ctx, callback(7, cbAction))

	notice := sender.last().(tgbotapi.MessageConfig)
	require.Equal(t, "✅ Score enregistré : 3", notice.Text)
}

func TestBot_SaveUnavailableInVariantA(t *testing.T) {
	bot, sender := newTestBot(t, "a")

	bot.handleMessage(context.Background(), command(7, "/save"))
	require.Equal(t, msgNotAvailable, sender.last().(tgbotapi.MessageConfig).Text)
}

func TestRegionKeyboard_MarksSelection(t *testing.T) {
	bot, _ := newTestBot(t, "b")
	ctx := context.Background()

	snap, err := bot.app.ScoringService.Toggle(ctx, SessionID(1), "visage")
	require.NoError(t, err)

	kb := regionKeyboard(snap)
	require.Equal(t, "🔵 Visage", kb.InlineKeyboard[0][0].Text)
	require.Equal(t, "Thorax", kb.InlineKeyboard[0][1].Text)
}

func TestParseTap(t *testing.T) {
	x, y, ok := parseTap(" 12.5  40 ")
	require.True(t, ok)
	require.Equal(t, 12.5, x)
	require.Equal(t, 40.0, y)

	_, _, ok = parseTap("1")
	require.False(t, ok)
	_, _, ok = parseTap("a b")
	require.False(t, ok)
}

func TestChatNotifier(t *testing.T) {
	sender := &fakeSender{}
	n := NewChatNotifier(sender)

	err := n.Notify(context.Background(), SessionID(42), port.Notice{Kind: port.NoticeInfo, Text: "done"})
	require.NoError(t, err)
	msg := sender.last().(tgbotapi.MessageConfig)
	require.Equal(t, int64(42), msg.ChatID)
	require.Equal(t, "ℹ️ done", msg.Text)

	require.Error(t, n.Notify(context.Background(), "web:1", port.Notice{}))
}
