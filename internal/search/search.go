package search

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

// Searcher finds product ids for a free-text query and keeps its index in sync.
type Searcher interface {
	Search(ctx context.Context, query string, from, size int) (int64, []string, error)
	Index(ctx context.Context, p *models.Product) error
	Remove(ctx context.Context, id string) error
}

type productFinder interface {
	SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error)
}

// DBSearcher queries the relational store directly. Index and Remove are
// no-ops because the table is the index.
type DBSearcher struct {
	Repo productFinder
}

func (s *DBSearcher) Search(ctx context.Context, query string, from, size int) (int64, []string, error) {
	total, items, err := s.Repo.SearchProducts(ctx, query, from, size)
	if err != nil {
		return 0, nil, err
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return total, ids, nil
}

func (s *DBSearcher) Index(context.Context, *models.Product) error { return nil }
func (s *DBSearcher) Remove(context.Context, string) error         { return nil }
