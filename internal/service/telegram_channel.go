package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
)

func (s *CatalogService) ListTelegramChannels(ctx context.Context) ([]models.TelegramChannel, error) {
	return s.Repo.ListTelegramChannels(ctx)
}

func (s *CatalogService) GetTelegramChannel(ctx context.Context, id string) (*models.TelegramChannel, error) {
	return s.Repo.GetTelegramChannel(ctx, id)
}

func (s *CatalogService) CreateTelegramChannel(ctx context.Context, req transport.CreateTelegramChannelRequest) (*models.TelegramChannel, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateTelegramChannel(ctx, &models.TelegramChannel{
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		NameAr:   req.NameAr,
		NameEn:   req.NameEn,
		Order:    req.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram channel: %w", err)
	}
	s.publish(ctx, events.TelegramChannelCreated, created.ID, util.Deref(created.NameAr))
	return created, nil
}

func (s *CatalogService) UpdateTelegramChannel(ctx context.Context, id string, req transport.PatchTelegramChannelRequest) (*models.TelegramChannel, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateTelegramChannel(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update telegram channel: %w", err)
	}
	s.publish(ctx, events.TelegramChannelUpdated, updated.ID, util.Deref(updated.NameAr))
	return updated, nil
}

func (s *CatalogService) DeleteTelegramChannel(ctx context.Context, id string) error {
	if err := deleted(s.Repo.DeleteTelegramChannel(ctx, id)); err != nil {
		return fmt.Errorf("delete telegram channel: %w", err)
	}
	s.publish(ctx, events.TelegramChannelDeleted, id, "")
	return nil
}
