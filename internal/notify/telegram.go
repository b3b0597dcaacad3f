// Package notify delivers booking alerts to the studio staff over
// Telegram. An unset token turns every call into a no-op, so local runs
// and tests need no bot credentials.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"lumiere-studio/internal/booking"
	"lumiere-studio/internal/config"
)

type Notifier struct {
	bot    *tgbotapi.BotAPI
	cfg    config.AdminConfig
	logger *zap.Logger
}

// New connects the Telegram bot. An empty token returns a disabled
// notifier rather than an error.
func New(cfg config.AdminConfig, logger *zap.Logger) (*Notifier, error) {
	n := &Notifier{cfg: cfg, logger: logger}

	if cfg.TelegramToken == "" {
		logger.Info("Telegram notifications disabled - no token configured")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	n.bot = bot

	logger.Info("Telegram notifier ready", zap.String("bot", bot.Self.UserName))
	return n, nil
}

func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

// NotifyNewBooking posts the lead summary to the staff channel and each
// configured admin chat.
func (n *Notifier) NotifyNewBooking(b *booking.Booking) {
	if !n.Enabled() {
		return
	}

	text := FormatBookingNotification(b)

	if n.cfg.ChannelID != 0 {
		msg := tgbotapi.NewMessage(n.cfg.ChannelID, text)
		if _, err := n.bot.Send(msg); err != nil {
			n.logger.Error("Failed to send channel notification",
				zap.String("booking_id", b.ID),
				zap.Error(err))
		}
	}

	for _, adminID := range n.cfg.IDs {
		msg := tgbotapi.NewMessage(adminID, text)
		if _, err := n.bot.Send(msg); err != nil {
			n.logger.Error("Failed to notify admin",
				zap.Int64("admin_id", adminID),
				zap.String("booking_id", b.ID),
				zap.Error(err))
		}
	}
}

// SendExport delivers an Excel lead export to the main admin chat.
func (n *Notifier) SendExport(path string) {
	if !n.Enabled() || n.cfg.ChatID == 0 {
		return
	}

	doc := tgbotapi.NewDocument(n.cfg.ChatID, tgbotapi.FilePath(path))
	doc.Caption = "📊 Booking export"

	if _, err := n.bot.Send(doc); err != nil {
		n.logger.Error("Failed to send export file",
			zap.String("path", path),
			zap.Error(err))
	}
}

// FormatBookingNotification renders the staff-facing lead summary.
func FormatBookingNotification(b *booking.Booking) string {
	text := fmt.Sprintf(
		"🚗 새 예약 접수\n\n"+
			"고객: %s\n"+
			"연락처: %s\n"+
			"차량: %s\n"+
			"지역: %s\n"+
			"방문: %s %s\n"+
			"──────────────────\n"+
			"견적가: %s원\n"+
			"예약금 (10%%): %s원\n"+
			"결제수단: %s",
		b.CustomerName,
		booking.FormatPhone(b.Phone),
		b.CarModel,
		b.Region,
		b.VisitDate, b.VisitTime,
		formatKRW(b.BasePrice),
		formatKRW(b.Deposit),
		b.Method,
	)

	if b.Method == booking.PayUSDT {
		text += fmt.Sprintf("\nUSDT: %s (TXID …%s)", b.USDTAmount, b.TxID)
	}
	return text
}

// formatKRW inserts thousands separators.
func formatKRW(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
