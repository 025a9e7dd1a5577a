package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (r *GormRepo) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return listOrdered[models.Banner](ctx, r.DB)
}

func (r *GormRepo) GetBanner(ctx context.Context, id string) (*models.Banner, error) {
	return getByID[models.Banner](ctx, r.DB, id)
}

func (r *GormRepo) CreateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	return create(ctx, r.DB, b)
}

func (r *GormRepo) UpdateBanner(ctx context.Context, id string, req transport.PatchBannerRequest) (*models.Banner, error) {
	return patch(ctx, r.DB, id, func(b *models.Banner) {
		if req.ImageURL != nil {
			b.ImageURL = *req.ImageURL
		}
		req.LinkURL.ApplyTo(&b.LinkURL)
		if req.Order != nil {
			b.Order = *req.Order
		}
		if req.IsActive != nil {
			b.IsActive = *req.IsActive
		}
	})
}

func (r *GormRepo) DeleteBanner(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Banner](ctx, r.DB, id)
}
