package ports

import (
	"context"

	"github.com/babycare/store-api/internal/core/domain"
)

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	// Get returns (nil, nil) for an id that matches no product; the transport
	// layer renders that as success with a null payload.
	Get(ctx context.Context, id string) (domain.Document, error)
}
