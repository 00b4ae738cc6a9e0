package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/metrics"
	"github.com/dominioncity/engage-backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type signupRequest struct {
	Firstname   string `json:"firstname"    binding:"required"`
	Lastname    string `json:"lastname"     binding:"required"`
	Email       string `json:"email"        binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password"     binding:"required"`
}

// signupResponse carries the public fields only — never the password hash.
type signupResponse struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Points      int    `json:"points"`
}

// POST /signup
// 201 on success, 403 for duplicate email or weak password (the body text
// tells them apart, the status does not).
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusForbidden, gin.H{"error": errWeakPassword})
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusForbidden, gin.H{"error": errEmailTaken})
		default:
			metrics.SignupsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "signup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, signupResponse{
		Firstname:   user.Firstname,
		Lastname:    user.Lastname,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Points:      user.Points,
	})
}

// loginRequest is a credential-grant form body: username carries the email.
type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// POST /login
// 200 with a bearer token on success; 403 with a generic body on any
// credential failure, whatever the cause.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			c.JSON(http.StatusForbidden, gin.H{"error": errIncorrectDetails})
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
