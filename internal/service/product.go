package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

func (s *CatalogService) ListProducts(ctx context.Context, filter repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, filter)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := &models.Product{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		CategoryID:    blankToNil(req.CategoryID),
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		FeaturesAr:    datatypes.JSONSlice[string](req.FeaturesAr),
		FeaturesEn:    datatypes.JSONSlice[string](req.FeaturesEn),
		Order:         req.Order,
		IsActive:      active,
	}
	created, err := s.Repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.index(ctx, created)
	s.publish(ctx, events.ProductCreated, created.ID, created.NameAr)
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.index(ctx, updated)
	s.publish(ctx, events.ProductUpdated, updated.ID, updated.NameAr)
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := deleted(s.Repo.DeleteProduct(ctx, id)); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	l := logging.FromContext(ctx).With("svc", "catalog.delete_product")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	if err := s.Search.Remove(sctx, id); err != nil {
		l.Error("search_remove_error", "product_id", id, "error", err)
	}

	s.publish(ctx, events.ProductDeleted, id, "")
	return nil
}

// SearchProducts returns one page of active products matching q, in the
// order the searcher ranked them.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, page, size int) (int64, []models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("%w: q is required", ErrValidation)
	}

	pg := util.NewPage(page, size)
	total, ids, err := s.Search.Search(ctx, q, pg.Offset(), pg.Limit())
	if err != nil {
		return 0, nil, fmt.Errorf("search products: %w", err)
	}

	items, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return 0, nil, fmt.Errorf("load search hits: %w", err)
	}
	return total, items, nil
}

func (s *CatalogService) index(ctx context.Context, p *models.Product) {
	l := logging.FromContext(ctx).With("svc", "catalog.index")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	if err := s.Search.Index(sctx, p); err != nil {
		l.Error("search_index_error", "product_id", p.ID, "error", err)
	}
}

// ReindexProducts pushes every stored product into the search index.
func (s *CatalogService) ReindexProducts(ctx context.Context) (int, error) {
	items, err := s.Repo.ListProducts(ctx, repo.ProductFilter{})
	if err != nil {
		return 0, fmt.Errorf("reindex: %w", err)
	}
	var errs []error
	for i := range items {
		if err := s.Search.Index(ctx, &items[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return len(items) - len(errs), errors.Join(errs...)
}
