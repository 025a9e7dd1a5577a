package repo

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

// ProductFilter narrows the raw product listing. The zero value lists everything.
type ProductFilter struct {
	Active     *bool
	CategoryID *string
}

func (r *GormRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Order(listOrder)
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	items := make([]models.Product, 0)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return getByID[models.Product](ctx, r.DB, id)
}

func (r *GormRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	items := make([]models.Product, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}

	return reorder(items, ids), nil
}

func reorder(items []models.Product, ids []string) []models.Product {
	byID := make(map[string]models.Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	out := make([]models.Product, 0, len(items))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return create(ctx, r.DB, p)
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error) {
	return patch(ctx, r.DB, id, func(p *models.Product) {
		if req.NameAr != nil {
			p.NameAr = *req.NameAr
		}
		req.NameEn.ApplyTo(&p.NameEn)
		req.DescriptionAr.ApplyTo(&p.DescriptionAr)
		req.DescriptionEn.ApplyTo(&p.DescriptionEn)
		req.CategoryID.ApplyTo(&p.CategoryID)
		if p.CategoryID != nil && *p.CategoryID == "" {
			p.CategoryID = nil
		}
		req.ImageURL.ApplyTo(&p.ImageURL)
		req.VideoURL.ApplyTo(&p.VideoURL)
		if req.FeaturesAr != nil {
			p.FeaturesAr = datatypes.JSONSlice[string](*req.FeaturesAr)
		}
		if req.FeaturesEn != nil {
			p.FeaturesEn = datatypes.JSONSlice[string](*req.FeaturesEn)
		}
		if req.Order != nil {
			p.Order = *req.Order
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
	})
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Product](ctx, r.DB, id)
}

// SearchProducts is a portable LIKE scan over active products, used when no
// search index is configured.
func (r *GormRepo) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	where := "is_active = ? AND (LOWER(name_ar) LIKE ? OR LOWER(COALESCE(name_en, '')) LIKE ? OR " +
		"LOWER(COALESCE(description_ar, '')) LIKE ? OR LOWER(COALESCE(description_en, '')) LIKE ?)"

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where(where, true, pattern, pattern, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, true, pattern, pattern, pattern, pattern).
		Order(listOrder).
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
