package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (r *GormRepo) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return listOrdered[models.PaymentMethod](ctx, r.DB)
}

func (r *GormRepo) GetPaymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error) {
	return getByID[models.PaymentMethod](ctx, r.DB, id)
}

func (r *GormRepo) CreatePaymentMethod(ctx context.Context, pm *models.PaymentMethod) (*models.PaymentMethod, error) {
	return create(ctx, r.DB, pm)
}

func (r *GormRepo) UpdatePaymentMethod(ctx context.Context, id string, req transport.PatchPaymentMethodRequest) (*models.PaymentMethod, error) {
	return patch(ctx, r.DB, id, func(pm *models.PaymentMethod) {
		if req.ImageURL != nil {
			pm.ImageURL = *req.ImageURL
		}
		req.NameAr.ApplyTo(&pm.NameAr)
		req.NameEn.ApplyTo(&pm.NameEn)
		if req.Order != nil {
			pm.Order = *req.Order
		}
	})
}

func (r *GormRepo) DeletePaymentMethod(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.PaymentMethod](ctx, r.DB, id)
}
