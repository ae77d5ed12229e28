package ports

import (
	"context"

	"github.com/babycare/store-api/internal/core/domain"
)

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error)
}
