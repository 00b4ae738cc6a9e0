package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * time.Minute

// TokenIssuer signs and verifies the stateless bearer tokens handed out at
// login. Only symmetric HMAC algorithms are accepted; the key is read-only
// after startup.
type TokenIssuer struct {
	key    []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenIssuer(key []byte, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", algorithm)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{key: key, method: method, ttl: ttl}, nil
}

// Issue signs a token carrying the user's id, expiring after the configured TTL.
func (i *TokenIssuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a raw token and returns the user
// id it claims. Expiry and signature failures come back as distinct errors so
// callers can log the difference, but the HTTP layer maps both to the same
// opaque 401.
func (i *TokenIssuer) Verify(raw string) (int64, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{i.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrTokenInvalid
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, domain.ErrTokenInvalid
	}
	return int64(id), nil
}
