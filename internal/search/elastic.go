package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/util"
)

const DefaultIndex = "products"

type ESConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

type ESSearcher struct {
	es    *elasticsearch.Client
	index string
}

func NewESSearcher(ctx context.Context, cfg ESConfig) (*ESSearcher, error) {
	slog.Info("connecting to elasticsearch", "url", cfg.URL)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}

	index := cfg.Index
	if index == "" {
		index = DefaultIndex
	}
	return &ESSearcher{es: client, index: index}, nil
}

type document struct {
	NameAr        string   `json:"nameAr"`
	NameEn        string   `json:"nameEn,omitempty"`
	DescriptionAr string   `json:"descriptionAr,omitempty"`
	DescriptionEn string   `json:"descriptionEn,omitempty"`
	FeaturesAr    []string `json:"featuresAr,omitempty"`
	FeaturesEn    []string `json:"featuresEn,omitempty"`
	CategoryID    string   `json:"categoryId,omitempty"`
	IsActive      bool     `json:"isActive"`
}

func toDocument(p *models.Product) document {
	return document{
		NameAr:        p.NameAr,
		NameEn:        util.Deref(p.NameEn),
		DescriptionAr: util.Deref(p.DescriptionAr),
		DescriptionEn: util.Deref(p.DescriptionEn),
		FeaturesAr:    p.FeaturesAr,
		FeaturesEn:    p.FeaturesEn,
		CategoryID:    util.Deref(p.CategoryID),
		IsActive:      p.IsActive,
	}
}

func (s *ESSearcher) Search(ctx context.Context, query string, from, size int) (int64, []string, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"nameAr^2", "nameEn^2", "descriptionAr", "descriptionEn"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"isActive": true},
				},
			},
		},
		"from":    from,
		"size":    size,
		"_source": false,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search encode: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search decode: %w", err)
	}

	ids := make([]string, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		ids[i] = hit.ID
	}
	return r.Hits.Total.Value, ids, nil
}

func (s *ESSearcher) Index(ctx context.Context, p *models.Product) error {
	data, err := json.Marshal(toDocument(p))
	if err != nil {
		return fmt.Errorf("index encode: %w", err)
	}

	res, err := s.es.Index(
		s.index,
		bytes.NewReader(data),
		s.es.Index.WithDocumentID(p.ID),
		s.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index: %s", res.Status())
	}
	return nil
}

func (s *ESSearcher) Remove(ctx context.Context, id string) error {
	res, err := s.es.Delete(s.index, id, s.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("remove: %s", res.Status())
	}
	return nil
}
