// Package telegram is the chat surface: users set their preferences and
// request itineraries in a conversation, the way the original assistant
// worked.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"saigon-foodtour/internal/app"
	"saigon-foodtour/internal/config"
	"saigon-foodtour/internal/geo"
	"saigon-foodtour/internal/llm"
	"saigon-foodtour/internal/metrics"
	"saigon-foodtour/internal/planner"
)

// Bot wraps the Telegram API, the planning app, and per-chat sessions.
type Bot struct {
	api      *tgbotapi.BotAPI
	app      *app.App
	sessions *SessionRepository
	textGen  llm.TextGenerator // nil disables summaries
	cfg      *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, application *app.App, sessions *SessionRepository, textGen llm.TextGenerator) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:      bot,
		app:      application,
		sessions: sessions,
		textGen:  textGen,
		cfg:      cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}
	if update.Message == nil {
		return
	}

	if len(b.cfg.TelegramAllowedUserIDs) > 0 {
		allowed := false
		for _, id := range b.cfg.TelegramAllowedUserIDs {
			if update.Message.From.ID == id {
				allowed = true
				break
			}
		}
		if !allowed {
			log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)",
				update.Message.From.ID, update.Message.From.UserName)
			return
		}
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cmd, args, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	switch cmd {
	case "/start", "/help":
		b.reply(msg.Chat.ID, helpText)
	case "/location":
		b.handleLocation(ctx, msg.Chat.ID, args)
	case "/radius":
		b.handleRadius(ctx, msg.Chat.ID, args)
	case "/themes":
		b.handleThemes(ctx, msg.Chat.ID, args)
	case "/time":
		b.handleTimeWindow(ctx, msg.Chat.ID, args)
	case "/plan":
		b.handlePlanRequest(ctx, msg.Chat.ID)
	case "/metrics":
		b.handleMetricsRequest(msg)
	default:
		b.reply(msg.Chat.ID, "Mình chưa hiểu yêu cầu đó. Gõ /help để xem các lệnh nhé!")
	}
}

const helpText = `Chào bạn! Mình là trợ lý lên lịch trình ăn uống. 🍜

Các lệnh:
/location <vĩ độ> <kinh độ> - nơi bắt đầu
/radius <km> - bán kính tìm kiếm
/themes <chủ đề,...> - ví dụ: street_food,drinks (gõ /themes xóa để bỏ chọn)
/time <HH:MM-HH:MM> - khung giờ trong ngày
/plan - lập lịch trình với thiết lập hiện tại`

func (b *Bot) handleLocation(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		b.reply(chatID, "Dùng: /location 10.776 106.700")
		return
	}
	lat, err1 := strconv.ParseFloat(fields[0], 64)
	lon, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		b.reply(chatID, "Tọa độ không hợp lệ. Dùng: /location 10.776 106.700")
		return
	}
	b.updateSettings(ctx, chatID, func(s *Settings) {
		s.Latitude, s.Longitude = lat, lon
	})
	b.reply(chatID, fmt.Sprintf("📍 Đã lưu vị trí (%.4f, %.4f).", lat, lon))
}

func (b *Bot) handleRadius(ctx context.Context, chatID int64, args string) {
	r, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
	if err != nil || r <= 0 {
		b.reply(chatID, "Bán kính phải là số dương, ví dụ: /radius 5")
		return
	}
	b.updateSettings(ctx, chatID, func(s *Settings) { s.RadiusKM = r })
	b.reply(chatID, fmt.Sprintf("📏 Bán kính tìm kiếm: %.1f km.", r))
}

func (b *Bot) handleThemes(ctx context.Context, chatID int64, args string) {
	args = strings.TrimSpace(args)
	if args == "" {
		b.reply(chatID, "Dùng: /themes street_food,drinks")
		return
	}
	if strings.EqualFold(args, "xóa") || strings.EqualFold(args, "xoa") {
		b.updateSettings(ctx, chatID, func(s *Settings) { s.Themes = nil })
		b.reply(chatID, "Đã bỏ chọn chủ đề.")
		return
	}
	themes := planner.ParseThemeSelection(args)
	b.updateSettings(ctx, chatID, func(s *Settings) { s.Themes = themes })
	b.reply(chatID, fmt.Sprintf("🏷 Chủ đề: %s.", strings.Join(themes, ", ")))
}

func (b *Bot) handleTimeWindow(ctx context.Context, chatID int64, args string) {
	start, end, found := strings.Cut(strings.TrimSpace(args), "-")
	if !found {
		b.reply(chatID, "Dùng: /time 07:00-21:00")
		return
	}
	b.updateSettings(ctx, chatID, func(s *Settings) {
		s.Start = strings.TrimSpace(start)
		s.End = strings.TrimSpace(end)
	})
	b.reply(chatID, fmt.Sprintf("🕐 Khung giờ: %s–%s.", strings.TrimSpace(start), strings.TrimSpace(end)))
}

func (b *Bot) handlePlanRequest(ctx context.Context, chatID int64) {
	settings, found, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		log.Printf("Failed to load session %d: %v", chatID, err)
		b.reply(chatID, "Có lỗi khi đọc thiết lập, bạn thử lại nhé.")
		return
	}
	if !found || (settings.Latitude == 0 && settings.Longitude == 0) {
		b.reply(chatID, "Mình chưa biết bạn ở đâu. Gửi /location <vĩ độ> <kinh độ> trước nhé!")
		return
	}
	radius := settings.RadiusKM
	if radius <= 0 {
		radius = b.cfg.DefaultRadiusKM
	}

	status := b.send(tgbotapi.NewMessage(chatID, "🧑‍🍳 *Đang lên lịch trình...*"))

	resp := b.app.Plan(ctx, planner.Request{
		Origin:   geo.Point{Lat: settings.Latitude, Lon: settings.Longitude},
		RadiusKM: radius,
		Themes:   settings.Themes,
		Start:    settings.Start,
		End:      settings.End,
	})

	if resp.Error {
		b.edit(chatID, status, "😥 "+resp.Message)
		return
	}

	settings.LastPlanID = resp.Plan.ID
	if err := b.sessions.Save(ctx, chatID, settings); err != nil {
		log.Printf("Warning: failed to save session %d: %v", chatID, err)
	}

	b.edit(chatID, status, FormatPlanMarkdown(resp.Plan))

	if b.textGen != nil {
		if summary, err := b.textGen.GenerateContent(ctx, SummaryPrompt(resp.Plan)); err != nil {
			log.Printf("Warning: summary generation failed: %v", err)
		} else {
			b.send(tgbotapi.NewMessage(chatID, summary))
		}
	}
}

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usage, err := b.app.Metrics.GetDailyUsage(ctx, 7)
	if err != nil {
		b.reply(msg.Chat.ID, "❌ Error fetching metrics.")
		return
	}
	health := metrics.GetSysHealth("data")

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")
	sb.WriteString("🗓 *Recent Planning Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d plans, %d stops placed\n", d.Date, d.Requests, d.SlotsPlaced))
	}
	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DatasetDiskSize))

	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) updateSettings(ctx context.Context, chatID int64, change func(*Settings)) {
	settings, _, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		log.Printf("Failed to load session %d: %v", chatID, err)
	}
	change(&settings)
	if err := b.sessions.Save(ctx, chatID, settings); err != nil {
		log.Printf("Failed to save session %d: %v", chatID, err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.MessageConfig) int {
	msg.ParseMode = "Markdown"
	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
		return 0
	}
	return sent.MessageID
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if messageID == 0 {
		b.reply(chatID, text)
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}
