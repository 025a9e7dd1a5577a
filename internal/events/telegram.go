package events

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type chatSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAnnouncer posts a short notice to a chat when a product is created.
// Every other event type is ignored.
type TelegramAnnouncer struct {
	bot    chatSender
	chatID int64
}

func NewTelegramAnnouncer(token string, chatID int64) (*TelegramAnnouncer, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramAnnouncer{bot: bot, chatID: chatID}, nil
}

func (a *TelegramAnnouncer) Publish(ctx context.Context, ev Event) error {
	if ev.Type != ProductCreated {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(a.chatID, announcement(ev))
	msg.DisableWebPagePreview = true
	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: send failed: %w", err)
	}
	return nil
}

func (a *TelegramAnnouncer) Close() error { return nil }

func announcement(ev Event) string {
	return "منتج جديد / New product: " + ev.Name
}
