package httptransport

import (
	"log/slog"

	"github.com/dominioncity/engage-backend/internal/repository"
	"github.com/dominioncity/engage-backend/internal/transport/http/handler"
	"github.com/dominioncity/engage-backend/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	pointsHandler *handler.PointsHandler,
	tokens middleware.TokenVerifier,
	users repository.UserRepository,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/health", handler.Health)

	// Bearer-protected routes
	protected := r.Group("/", middleware.Auth(tokens, users, logger))
	protected.GET("/points/:amount", pointsHandler.Award)

	return r
}
