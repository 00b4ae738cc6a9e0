package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/repository"
)

type PointsUsecase struct {
	users repository.UserRepository
}

func NewPointsUsecase(users repository.UserRepository) *PointsUsecase {
	return &PointsUsecase{users: users}
}

// Award adds amount to the user's points counter. Only positive amounts are
// accepted. ErrUserNotFound surfaces when the account was deleted between
// authentication and the award.
func (u *PointsUsecase) Award(ctx context.Context, userID int64, amount int) (*domain.User, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	updated, err := u.users.AddPoints(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("add points: %w", err)
	}
	return updated, nil
}
