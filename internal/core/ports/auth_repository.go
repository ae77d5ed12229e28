package ports

import (
	"context"

	"github.com/babycare/store-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists. Absence is not an error at this layer.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
}
