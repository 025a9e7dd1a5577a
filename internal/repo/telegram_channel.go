package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (r *GormRepo) ListTelegramChannels(ctx context.Context) ([]models.TelegramChannel, error) {
	return listOrdered[models.TelegramChannel](ctx, r.DB)
}

func (r *GormRepo) GetTelegramChannel(ctx context.Context, id string) (*models.TelegramChannel, error) {
	return getByID[models.TelegramChannel](ctx, r.DB, id)
}

func (r *GormRepo) CreateTelegramChannel(ctx context.Context, tc *models.TelegramChannel) (*models.TelegramChannel, error) {
	return create(ctx, r.DB, tc)
}

func (r *GormRepo) UpdateTelegramChannel(ctx context.Context, id string, req transport.PatchTelegramChannelRequest) (*models.TelegramChannel, error) {
	return patch(ctx, r.DB, id, func(tc *models.TelegramChannel) {
		if req.ImageURL != nil {
			tc.ImageURL = *req.ImageURL
		}
		if req.LinkURL != nil {
			tc.LinkURL = *req.LinkURL
		}
		req.NameAr.ApplyTo(&tc.NameAr)
		req.NameEn.ApplyTo(&tc.NameEn)
		if req.Order != nil {
			tc.Order = *req.Order
		}
	})
}

func (r *GormRepo) DeleteTelegramChannel(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.TelegramChannel](ctx, r.DB, id)
}
