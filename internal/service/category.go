package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.Repo.GetCategory(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateCategory(ctx, &models.Category{
		NameAr: req.NameAr,
		NameEn: req.NameEn,
		Order:  req.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.publish(ctx, events.CategoryCreated, created.ID, created.NameAr)
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req transport.PatchCategoryRequest) (*models.Category, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateCategory(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	s.publish(ctx, events.CategoryUpdated, updated.ID, updated.NameAr)
	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := deleted(s.Repo.DeleteCategory(ctx, id)); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.publish(ctx, events.CategoryDeleted, id, "")
	return nil
}
