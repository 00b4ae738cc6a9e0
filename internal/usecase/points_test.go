package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/usecase"
)

func TestAward_PositiveAmount_ReturnsUpdatedUser(t *testing.T) {
	var gotID int64
	var gotDelta int
	repo := &fakeUserRepo{
		addPoints: func(_ context.Context, id int64, delta int) (*domain.User, error) {
			gotID, gotDelta = id, delta
			return &domain.User{ID: id, Points: 50}, nil
		},
	}

	updated, err := usecase.NewPointsUsecase(repo).Award(context.Background(), 7, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 7 || gotDelta != 50 {
		t.Errorf("AddPoints called with (%d, %d), want (7, 50)", gotID, gotDelta)
	}
	if updated.Points != 50 {
		t.Errorf("points = %d, want 50", updated.Points)
	}
}

func TestAward_NonPositiveAmount_Rejected(t *testing.T) {
	repo := &fakeUserRepo{
		addPoints: func(_ context.Context, _ int64, _ int) (*domain.User, error) {
			t.Fatal("AddPoints must not be called for a rejected amount")
			return nil, nil
		},
	}
	uc := usecase.NewPointsUsecase(repo)

	for _, amount := range []int{0, -1, -50} {
		if _, err := uc.Award(context.Background(), 7, amount); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("Award(%d) err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestAward_VanishedUser_ReturnsNotFound(t *testing.T) {
	repo := &fakeUserRepo{
		addPoints: func(_ context.Context, _ int64, _ int) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	if _, err := usecase.NewPointsUsecase(repo).Award(context.Background(), 7, 10); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
