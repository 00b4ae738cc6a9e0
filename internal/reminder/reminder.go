// Package reminder mails every member ahead of the Sunday service. Delivery
// is best-effort: a failed send is logged and counted, never retried.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dominioncity/engage-backend/internal/email"
	"github.com/dominioncity/engage-backend/internal/metrics"
	"github.com/dominioncity/engage-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

type Service struct {
	users    repository.UserRepository
	email    email.Sender
	logger   *slog.Logger
	schedule string
	cron     *cron.Cron
}

func NewService(users repository.UserRepository, sender email.Sender, logger *slog.Logger, schedule string) *Service {
	return &Service{
		users:    users,
		email:    sender,
		logger:   logger.With("component", "reminder"),
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the cron entry and begins running sweeps in the background.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		s.Sweep(ctx)
	}); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	s.cron.Start()
	s.logger.Info("reminder sweeps scheduled", "cron", s.schedule)
	return nil
}

// Stop halts the cron runner and returns a context that is done once any
// in-flight sweep has finished.
func (s *Service) Stop() context.Context {
	return s.cron.Stop()
}

// Sweep mails a service reminder to every registered member.
func (s *Service) Sweep(ctx context.Context) {
	users, err := s.users.All(ctx)
	if err != nil {
		s.logger.Error("list members for reminders", "error", err)
		return
	}

	var sent, failed int
	for _, u := range users {
		subject := "See you at service this Sunday!"
		body := fmt.Sprintf(
			`<p>Hello %s,</p><p>This is your weekly reminder — service starts Sunday morning. Come along and bring a friend!</p>`,
			u.Firstname,
		)
		if err := s.email.Send(ctx, u.Email, subject, body); err != nil {
			s.logger.Error("send reminder", "user_id", u.ID, "error", err)
			metrics.ReminderEmailsTotal.WithLabelValues("error").Inc()
			failed++
			continue
		}
		metrics.ReminderEmailsTotal.WithLabelValues("sent").Inc()
		sent++
	}

	s.logger.Info("reminder sweep finished", "sent", sent, "failed", failed)
}
