package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/babycare/store-api/internal/api/metrics"
	"github.com/babycare/store-api/internal/core/domain"
	"github.com/babycare/store-api/internal/core/ports"
)

// CatalogCache abstracts the product listing cache (Redis).
type CatalogCache interface {
	// Get returns the cached listing, or (nil, nil) on a cache miss.
	Get(ctx context.Context) ([]domain.Document, error)
	Set(ctx context.Context, products []domain.Document) error
	Invalidate(ctx context.Context) error
}

// ProductService implements the product catalog use cases with a cache-aside
// listing. Cache failures degrade to direct repository reads.
type ProductService struct {
	repo  ports.ProductRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

// Create persists the caller-supplied document verbatim and invalidates the
// cached listing.
func (s *ProductService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	result, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", result.InsertedID).Msg("product created")
	return result, nil
}

// List returns every product, serving from the cache when possible.
func (s *ProductService) List(ctx context.Context) ([]domain.Document, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
	} else if cached != nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("failed to refresh catalog cache")
	}

	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	return products, nil
}

// Get returns a single product, or (nil, nil) when the id matches nothing.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.repo.FindByID(ctx, id)
}
