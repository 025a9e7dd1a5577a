package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return listOrdered[models.Category](ctx, r.DB)
}

func (r *GormRepo) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return getByID[models.Category](ctx, r.DB, id)
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	return create(ctx, r.DB, c)
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id string, req transport.PatchCategoryRequest) (*models.Category, error) {
	return patch(ctx, r.DB, id, func(c *models.Category) {
		if req.NameAr != nil {
			c.NameAr = *req.NameAr
		}
		req.NameEn.ApplyTo(&c.NameEn)
		if req.Order != nil {
			c.Order = *req.Order
		}
	})
}

// DeleteCategory leaves products pointing at the category untouched.
func (r *GormRepo) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Category](ctx, r.DB, id)
}
