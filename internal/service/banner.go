package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (s *CatalogService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return s.Repo.ListBanners(ctx)
}

func (s *CatalogService) GetBanner(ctx context.Context, id string) (*models.Banner, error) {
	return s.Repo.GetBanner(ctx, id)
}

func (s *CatalogService) CreateBanner(ctx context.Context, req transport.CreateBannerRequest) (*models.Banner, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	created, err := s.Repo.CreateBanner(ctx, &models.Banner{
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		IsActive: active,
	})
	if err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	s.publish(ctx, events.BannerCreated, created.ID, "")
	return created, nil
}

func (s *CatalogService) UpdateBanner(ctx context.Context, id string, req transport.PatchBannerRequest) (*models.Banner, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateBanner(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	s.publish(ctx, events.BannerUpdated, updated.ID, "")
	return updated, nil
}

func (s *CatalogService) DeleteBanner(ctx context.Context, id string) error {
	if err := deleted(s.Repo.DeleteBanner(ctx, id)); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	s.publish(ctx, events.BannerDeleted, id, "")
	return nil
}
