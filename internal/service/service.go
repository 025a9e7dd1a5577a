package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/search"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

var ErrValidation = errors.New("validation failed")

const sideEffectTimeout = 5 * time.Second

type CatalogService struct {
	Repo      repo.Storage
	Validator *transport.Validator
	Events    events.Publisher
	Search    search.Searcher
	Now       func() time.Time
}

func NewCatalogService(r repo.Storage, pub events.Publisher, s search.Searcher) *CatalogService {
	if pub == nil {
		pub = events.Nop{}
	}
	if s == nil {
		s = &search.DBSearcher{Repo: r}
	}
	return &CatalogService{
		Repo:      r,
		Validator: transport.NewValidator(),
		Events:    pub,
		Search:    s,
		Now:       time.Now,
	}
}

func (s *CatalogService) validate(req any) error {
	if err := s.Validator.Validate(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// publish never fails the caller; delivery problems are only logged.
func (s *CatalogService) publish(ctx context.Context, typ events.Type, id, name string) {
	l := logging.FromContext(ctx).With("svc", "catalog.publish")
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	ev := events.Event{Type: typ, EntityID: id, Name: name, At: s.Now().UTC()}
	if err := s.Events.Publish(ctx, ev); err != nil {
		l.Error("publish_event_error", "type", string(typ), "entity_id", id, "error", err)
	}
}

func deleted(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return repo.ErrNotFound
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
