package events

import (
	"context"
	"errors"
	"time"
)

type Type string

const (
	ProductCreated         Type = "product_created"
	ProductUpdated         Type = "product_updated"
	ProductDeleted         Type = "product_deleted"
	CategoryCreated        Type = "category_created"
	CategoryUpdated        Type = "category_updated"
	CategoryDeleted        Type = "category_deleted"
	BannerCreated          Type = "banner_created"
	BannerUpdated          Type = "banner_updated"
	BannerDeleted          Type = "banner_deleted"
	PaymentMethodCreated   Type = "payment_method_created"
	PaymentMethodUpdated   Type = "payment_method_updated"
	PaymentMethodDeleted   Type = "payment_method_deleted"
	TelegramChannelCreated Type = "telegram_channel_created"
	TelegramChannelUpdated Type = "telegram_channel_updated"
	TelegramChannelDeleted Type = "telegram_channel_deleted"
	SettingUpserted        Type = "setting_upserted"
)

type Event struct {
	Type     Type      `json:"type"`
	EntityID string    `json:"entityId"`
	Name     string    `json:"name,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Multi delivers every event to each publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
