package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/container"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/infrastructure/render"
)

const (
	msgHelp = `ℹ️ Modified Rodnan skin score

1️⃣ /start — open the body diagram
2️⃣ Tap a region button (or send /tap X Y with pixel coordinates on the diagram)
3️⃣ Pick a score from the menu

📋 Commands:
/total — current total
/reset — reset every region
/save — confirm the total
/help — this message`

	msgUnknownCommand = "❓ Unknown command. Use /help."
	msgUseButtons     = "👆 Use the buttons under the diagram or /help."
	msgNoRegion       = "🤷 No region there. Tap closer to a marker."
	msgBadTap         = "Usage: /tap X Y (pixels on the %dx%d diagram)"
	msgNotAvailable   = "⚠️ This action is not available for the current scale."
	msgRenderError    = "⚠️ Could not draw the diagram."

	cbSelect = "sel:"
	cbScore  = "score:"
	cbAction = "act"

	regionsPerRow = 3
)

// Sender часть tgbotapi.BotAPI, которой пользуется бот
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api     *tgbotapi.BotAPI
	sender  Sender
	app     *container.Container
	surface render.FixedSurface
}

// Connect авторизует бота по токену
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)
	return api, nil
}

// NewBot создаёт нового бота; схема рисуется квадратом size×size
func NewBot(api *tgbotapi.BotAPI, appContainer *container.Container, size int) *Bot {
	b := newBot(api, appContainer, size)
	b.api = api
	return b
}

func newBot(sender Sender, appContainer *container.Container, size int) *Bot {
	return &Bot{
		sender:  sender,
		app:     appContainer,
		surface: render.FixedSurface{Width: size, Height: size},
	}
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		b.handleUpdate(ctx, update)
	}

	return nil
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgUseButtons)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	sessionID := SessionID(chatID)

	switch msg.Command() {
	case "start":
		if err := b.app.SessionService.Close(ctx, sessionID); err != nil {
			log.Printf("Error closing session: %v", err)
		}
		b.sendDiagram(ctx, chatID)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "tap":
		x, y, ok := parseTap(msg.CommandArguments())
		if !ok {
			b.sendMessage(chatID, fmt.Sprintf(msgBadTap, b.surface.Width, b.surface.Height))
			return
		}
		snap, hit, err := b.app.ScoringService.Click(ctx, sessionID, b.surface, x, y, entity.PointerCoarse)
		if err != nil {
			log.Printf("Error handling tap: %v", err)
			return
		}
		if !hit {
			b.sendMessage(chatID, msgNoRegion)
			return
		}
		b.sendPicker(chatID, snap)

	case "total":
		snap, err := b.app.ScoringService.Snapshot(ctx, sessionID)
		if err != nil {
			log.Printf("Error getting snapshot: %v", err)
			return
		}
		b.sendMessage(chatID, totalText(snap))

	case "reset":
		if _, err := b.app.ScoringService.Reset(ctx, sessionID); err != nil {
			log.Printf("Error resetting: %v", err)
			return
		}
		b.sendDiagram(ctx, chatID)

	case "save":
		b.runAction(ctx, chatID, b.app.ScoringService.Save)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleCallback обрабатывает нажатия на кнопки под схемой
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	sessionID := SessionID(chatID)

	if _, err := b.sender.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("Error answering callback: %v", err)
	}

	switch {
	case strings.HasPrefix(cb.Data, cbSelect):
		snap, err := b.app.ScoringService.Toggle(ctx, sessionID, strings.TrimPrefix(cb.Data, cbSelect))
		if err != nil {
			log.Printf("Error selecting region: %v", err)
			return
		}
		if snap.Selected.IsNone() {
			b.sendDiagram(ctx, chatID)
			return
		}
		b.sendPicker(chatID, snap)

	case strings.HasPrefix(cb.Data, cbScore):
		score, err := strconv.Atoi(strings.TrimPrefix(cb.Data, cbScore))
		if err != nil {
			log.Printf("Error parsing score %q: %v", cb.Data, err)
			return
		}
		if _, err := b.app.ScoringService.Score(ctx, sessionID, score); err != nil {
			log.Printf("Error applying score: %v", err)
			return
		}
		b.sendDiagram(ctx, chatID)

	case cb.Data == cbAction:
		b.runAction(ctx, chatID, b.app.ScoringService.Action)
	}
}

func (b *Bot) runAction(ctx context.Context, chatID int64, action func(context.Context, string) (app.Snapshot, error)) {
	snap, err := action(ctx, SessionID(chatID))
	if errors.Is(err, app.ErrActionUnavailable) {
		b.sendMessage(chatID, msgNotAvailable)
		return
	}
	if err != nil {
		log.Printf("Error running action: %v", err)
		return
	}
	if snap.Variant.Action == entity.ActionReset {
		b.sendDiagram(ctx, chatID)
	}
}

// sendDiagram отправляет схему с отметками и клавиатурой областей
func (b *Bot) sendDiagram(ctx context.Context, chatID int64) {
	sessionID := SessionID(chatID)

	snap, err := b.app.ScoringService.Snapshot(ctx, sessionID)
	if err != nil {
		log.Printf("Error getting snapshot: %v", err)
		return
	}
	markers, err := b.app.ScoringService.Markers(ctx, sessionID, b.surface)
	if err != nil {
		log.Printf("Error building markers: %v", err)
		return
	}
	data, err := b.app.Renderer.Render(ctx, markers, b.surface.Width, b.surface.Height)
	if err != nil {
		log.Printf("Error rendering diagram: %v", err)
		b.sendMessage(chatID, msgRenderError)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "rodnan.png", Bytes: data})
	photo.Caption = snap.Variant.Messages.Heading + "\n" + totalText(snap)
	photo.ReplyMarkup = regionKeyboard(snap)
	if _, err := b.sender.Send(photo); err != nil {
		log.Printf("Error sending diagram: %v", err)
	}
}

// sendPicker отправляет меню оценок для выбранной области
func (b *Bot) sendPicker(chatID int64, snap app.Snapshot) {
	region, ok := snap.SelectedRegion()
	if !ok {
		return
	}
	msg := tgbotapi.NewMessage(chatID, snap.Variant.PickText(region.Name))
	msg.ReplyMarkup = scoreKeyboard(snap.Variant)
	if _, err := b.sender.Send(msg); err != nil {
		log.Printf("Error sending picker: %v", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func regionKeyboard(snap app.Snapshot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, r := range snap.Regions {
		label := fmt.Sprintf("%s · %d", r.Name, r.Score)
		if snap.Variant.IsUnscored(r.Score) {
			label = r.Name
		}
		if snap.Selected.Is(r.ID) {
			label = "🔵 " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, cbSelect+r.ID))
		if len(row) == regionsPerRow {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(snap.Variant.Messages.ActionLabel, cbAction),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func scoreKeyboard(variant entity.Variant) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(variant.Options))
	for _, o := range variant.Options {
		label := fmt.Sprintf("%s %d — %s", colorDot(o.Color), o.Score, o.Label)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbScore+strconv.Itoa(o.Score)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func totalText(snap app.Snapshot) string {
	return fmt.Sprintf("%s %d", snap.Variant.Messages.TotalLabel, snap.Total)
}

// colorDot подбирает эмодзи под цвет оценки
func colorDot(hex string) string {
	switch strings.ToUpper(hex) {
	case "#FFFFFF":
		return "⚪"
	case "#22C55E":
		return "🟢"
	case "#EAB308":
		return "🟡"
	case "#F97316":
		return "🟠"
	case "#DC2626":
		return "🔴"
	default:
		return "⚫"
	}
}

// parseTap разбирает аргументы /tap X Y
func parseTap(args string) (x, y float64, ok bool) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}
