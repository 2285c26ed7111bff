package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	loc    *time.Location
	logger logger.Logger
}

func NewTelegramNotifier(token string, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if loc == nil {
		loc = time.UTC
	}
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, loc: loc, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, loc: loc, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyCommitFailed(ctx context.Context, user *domain.User, event *domain.Event, reason string) {
	text := fmt.Sprintf(
		"*Change not saved*\n\n"+"Booking: %s\n"+"Still scheduled: %s\n"+"Reason: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		n.interval(event),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, reason),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEventRescheduled(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Booking moved*\n\n"+"Booking: %s\n"+"Location: %s\n"+"New time: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.LocationName),
		n.interval(event),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Booking %s*\n\n"+"Booking: %s\n"+"Time: %s",
		statusText(event.Status),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		n.interval(event),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) interval(e *domain.Event) string {
	return fmt.Sprintf("%s - %s (%s)",
		e.Start.In(n.loc).Format(timeLayout),
		e.End.In(n.loc).Format(timeLayout),
		n.loc.String(),
	)
}

func statusText(s domain.EventStatus) string {
	switch s {
	case domain.EventStatusActive:
		return "is now running"
	case domain.EventStatusEndingSoon:
		return "is ending soon"
	case domain.EventStatusCompleted:
		return "completed"
	case domain.EventStatusExpired:
		return "expired"
	default:
		return "is waiting"
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
