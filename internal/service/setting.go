package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
)

func (s *CatalogService) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	return s.Repo.ListSettings(ctx)
}

func (s *CatalogService) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	return s.Repo.GetSetting(ctx, key)
}

// SettingValue returns the stored value for key, or "" when the key is unset.
func (s *CatalogService) SettingValue(ctx context.Context, key string) (string, error) {
	setting, err := s.Repo.GetSetting(ctx, key)
	if errors.Is(err, repo.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return util.Deref(setting.Value), nil
}

func (s *CatalogService) UpsertSetting(ctx context.Context, req transport.UpsertSettingRequest) (*models.SiteSetting, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	setting, err := s.Repo.UpsertSetting(ctx, req.Key, req.Value)
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	s.publish(ctx, events.SettingUpserted, setting.Key, setting.Key)
	return setting, nil
}
