package repository

import (
	"context"

	"github.com/dominioncity/engage-backend/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Insert persists a new user and returns it with the assigned id.
	// A duplicate email yields domain.ErrEmailTaken, even when the
	// duplicate row was inserted concurrently.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// AddPoints applies the delta atomically relative to concurrent awards
	// on the same user.
	AddPoints(ctx context.Context, id int64, delta int) (*domain.User, error)
	All(ctx context.Context) ([]*domain.User, error)
}
