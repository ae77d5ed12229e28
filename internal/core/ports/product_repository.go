package ports

import (
	"context"

	"github.com/babycare/store-api/internal/core/domain"
)

// ProductRepository defines persistence operations for product documents.
// The schema is open: documents are stored exactly as submitted.
type ProductRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	// FindAll returns every product in natural storage order. Ordering across
	// interleaved inserts is not guaranteed.
	FindAll(ctx context.Context) ([]domain.Document, error)
	// FindByID returns (nil, nil) when no product has the given id.
	FindByID(ctx context.Context, id string) (domain.Document, error)
}
