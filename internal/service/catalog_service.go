package service

import (
	"context"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// CatalogService is the read-only catalog query engine. Browsing is open
// to every authenticated user; no role check applies.
type CatalogService struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogService(catalog *repository.CatalogRepo) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

// Browse runs one of the mutually exclusive browse modes and returns the
// full row set. Mode arguments are validated here so the repository only
// ever sees well-formed queries: a genre filter needs a non-empty genre
// and a price ceiling must be non-negative.
func (s *CatalogService) Browse(ctx context.Context, q repository.CatalogQuery) ([]model.CatalogEntry, error) {
	switch q.Filter {
	case repository.FilterByGenre:
		if q.Genre == "" {
			return nil, ErrInvalidField
		}
	case repository.FilterByMaxPrice:
		if q.MaxPriceCents < 0 {
			return nil, ErrInvalidField
		}
	}
	return s.Catalog.Search(ctx, q)
}
