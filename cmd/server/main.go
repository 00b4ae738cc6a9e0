package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dominioncity/engage-backend/config"
	"github.com/dominioncity/engage-backend/internal/auth"
	"github.com/dominioncity/engage-backend/internal/email"
	"github.com/dominioncity/engage-backend/internal/health"
	"github.com/dominioncity/engage-backend/internal/infrastructure/postgres"
	ctxlog "github.com/dominioncity/engage-backend/internal/log"
	"github.com/dominioncity/engage-backend/internal/metrics"
	"github.com/dominioncity/engage-backend/internal/reminder"
	httptransport "github.com/dominioncity/engage-backend/internal/transport/http"
	"github.com/dominioncity/engage-backend/internal/transport/http/handler"
	"github.com/dominioncity/engage-backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	tokens, err := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, cfg.TokenTTL())
	if err != nil {
		stop()
		log.Fatalf("token issuer: %v", err)
	}

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	userRepo := postgres.NewUserRepository(pool)
	authUsecase := usecase.NewAuthUsecase(userRepo, emailSender, tokens, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)
	pointsUsecase := usecase.NewPointsUsecase(userRepo)
	pointsHandler := handler.NewPointsHandler(pointsUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	reminders := reminder.NewService(userRepo, emailSender, logger, cfg.ReminderCron)
	if err := reminders.Start(); err != nil {
		stop()
		log.Fatalf("reminders: %v", err)
	}

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, pointsHandler, tokens, userRepo),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
	select {
	case <-reminders.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Error("reminder sweep did not finish before shutdown deadline")
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
