package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter posts operator alerts to a single ops chat.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or ops chat id is empty, operator alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramAlerter) NotifyDeliveryExhausted(ctx context.Context, rec *domain.Recipient, reason string) {
	n.send(ctx, deliveryExhaustedText(rec, reason))
}

func (n *TelegramAlerter) NotifyRosterDeleted(ctx context.Context, event *domain.CheckInEvent, counts domain.DeletedCounts) {
	n.send(ctx, rosterDeletedText(event, counts))
}

func deliveryExhaustedText(rec *domain.Recipient, reason string) string {
	return fmt.Sprintf(
		"*Credential email gave up*\n\n"+"Attendee: %s <%s>\n"+"Event: %s\n"+"Attempts: %d\n"+"Last error: %s",
		escape(rec.Name), escape(rec.Email), escape(rec.EventTitle), rec.Delivery.RetryCount, escape(reason),
	)
}

func rosterDeletedText(event *domain.CheckInEvent, counts domain.DeletedCounts) string {
	return fmt.Sprintf(
		"*Check-in event deleted*\n\n"+"Event: %s (%s)\n"+"Attendees removed: %d\n"+"Check-ins removed: %d",
		escape(event.Title), event.Date.Format(domain.DateLayout), counts.Attendees, counts.CheckIns,
	)
}

// escape makes user-supplied text safe inside a Markdown alert.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
