package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrWeakPassword       = errors.New("password shouldn't be less than 8 characters")
	ErrInvalidCredentials = errors.New("incorrect details")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrInvalidAmount      = errors.New("points amount must be a positive integer")
)

type User struct {
	ID             int64
	Firstname      string
	Lastname       string
	Email          string
	PhoneNumber    string
	PasswordHash   string
	Points         int
	DateRegistered time.Time
}
