package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/repository"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Could not validate credentials"

const currentUserKey = "currentUser"

// TokenVerifier is the subset of auth.TokenIssuer the gate needs.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

// Auth validates a Bearer token and resolves the claimed id against the user
// store. Every failure — missing header, bad signature, expiry, or an id
// that no longer resolves — produces the same opaque 401 so callers cannot
// tell which check failed.
func Auth(tokens TokenVerifier, users repository.UserRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				unauthorized(c)
				return
			}
			logger.ErrorContext(c.Request.Context(), "resolve token principal", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "Internal server error"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Auth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
}
