package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
)

func (s *CatalogService) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.Repo.ListPaymentMethods(ctx)
}

func (s *CatalogService) GetPaymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error) {
	return s.Repo.GetPaymentMethod(ctx, id)
}

func (s *CatalogService) CreatePaymentMethod(ctx context.Context, req transport.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreatePaymentMethod(ctx, &models.PaymentMethod{
		ImageURL: req.ImageURL,
		NameAr:   req.NameAr,
		NameEn:   req.NameEn,
		Order:    req.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	s.publish(ctx, events.PaymentMethodCreated, created.ID, util.Deref(created.NameAr))
	return created, nil
}

func (s *CatalogService) UpdatePaymentMethod(ctx context.Context, id string, req transport.PatchPaymentMethodRequest) (*models.PaymentMethod, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdatePaymentMethod(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update payment method: %w", err)
	}
	s.publish(ctx, events.PaymentMethodUpdated, updated.ID, util.Deref(updated.NameAr))
	return updated, nil
}

func (s *CatalogService) DeletePaymentMethod(ctx context.Context, id string) error {
	if err := deleted(s.Repo.DeletePaymentMethod(ctx, id)); err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	s.publish(ctx, events.PaymentMethodDeleted, id, "")
	return nil
}
