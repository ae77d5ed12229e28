package ports

import (
	"context"

	"github.com/babycare/store-api/internal/core/domain"
)

// OrderRepository defines persistence operations for order documents.
type OrderRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	FindAll(ctx context.Context) ([]domain.Document, error)
	// UpdateStatus overwrites the status field of the order with the given id.
	// A missing order is reported through MatchedCount == 0, not an error.
	UpdateStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error)
}
