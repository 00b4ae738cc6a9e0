package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dominioncity/engage-backend/internal/auth"
	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/email"
	"github.com/dominioncity/engage-backend/internal/repository"
)

const minPasswordLength = 8

type AuthUsecase struct {
	users  repository.UserRepository
	email  email.Sender
	tokens *auth.TokenIssuer
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, tokens *auth.TokenIssuer, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		email:  emailSender,
		tokens: tokens,
		logger: logger.With("component", "auth_usecase"),
	}
}

type RegisterInput struct {
	Firstname   string
	Lastname    string
	Email       string
	PhoneNumber string
	Password    string
}

// Register validates the password policy, hashes the credential, and inserts
// the member. The duplicate-email check is advisory; the store's unique
// index settles races at insert time. The welcome email is fire-and-forget
// and never fails the registration.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	if _, err := u.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := u.users.Insert(ctx, &domain.User{
		Firstname:      input.Firstname,
		Lastname:       input.Lastname,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		PasswordHash:   hash,
		Points:         0,
		DateRegistered: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	go u.sendWelcome(context.WithoutCancel(ctx), created)

	return created, nil
}

func (u *AuthUsecase) sendWelcome(ctx context.Context, user *domain.User) {
	subject := "Welcome to the family!"
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>Your account has been created. We look forward to seeing you at the next service!</p>`,
		user.Firstname,
	)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.Error("send welcome email", "user_id", user.ID, "error", err)
	}
}

// Login verifies the credentials and returns a signed bearer token. A
// missing user and a wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
