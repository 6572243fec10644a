package repository

import (
	"context"

	"medexus-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	// Create inserts the user together with its role-specific profile
	// association in a single operation.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID returns (nil, nil) when the user does not exist. Role and
	// profiles are preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
