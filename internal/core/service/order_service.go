package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/babycare/store-api/internal/api/metrics"
	"github.com/babycare/store-api/internal/core/domain"
	"github.com/babycare/store-api/internal/core/ports"
)

// OrderService implements order placement, listing and status updates.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Create persists the caller-supplied document verbatim. The status field is
// optional at creation time.
func (s *OrderService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	result, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", result.InsertedID).Msg("order created")
	return result, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus overwrites the order's status field. Status values are
// free-form strings; no transition graph is enforced. A zero-match update is
// reported through the result counts, not as an error.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error) {
	result, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	outcome := "matched"
	if result.MatchedCount == 0 {
		outcome = "missed"
	}
	metrics.OrderStatusUpdatesTotal.WithLabelValues(outcome).Inc()

	s.log.Info().
		Str("order_id", id).
		Str("status", status).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("order status update")

	return result, nil
}
