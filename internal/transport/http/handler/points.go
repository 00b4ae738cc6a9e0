package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/dominioncity/engage-backend/internal/metrics"
	"github.com/dominioncity/engage-backend/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type pointsUsecaser interface {
	Award(ctx context.Context, userID int64, amount int) (*domain.User, error)
}

type PointsHandler struct {
	pointsUsecase pointsUsecaser
	logger        *slog.Logger
}

func NewPointsHandler(pointsUsecase pointsUsecaser, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{
		pointsUsecase: pointsUsecase,
		logger:        logger.With("component", "points_handler"),
	}
}

type awardResponse struct {
	Message     string `json:"message"`
	UserID      int64  `json:"user_id"`
	TotalPoints int    `json:"total_points"`
}

// GET /points/:amount (bearer-protected)
// 404 when the authenticated principal vanished between the gate and the
// award.
func (h *PointsHandler) Award(c *gin.Context) {
	amount, err := strconv.Atoi(c.Param("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidAmount})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
		return
	}

	updated, err := h.pointsUsecase.Award(c.Request.Context(), user.ID, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidAmount})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		default:
			h.logger.ErrorContext(c.Request.Context(), "award points", "user_id", user.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.PointsAwardedTotal.Add(float64(amount))
	c.JSON(http.StatusOK, awardResponse{
		Message:     "Points added successfully",
		UserID:      updated.ID,
		TotalPoints: updated.Points,
	})
}
