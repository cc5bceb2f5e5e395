package service

import (
	"context"
	"fmt"
	"time"

	"hospital-bed-booking/internal/metrics"
	"hospital-bed-booking/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// TokenSweeper periodically deletes expired and revoked refresh tokens
type TokenSweeper struct {
	userRepo *repository.UserRepository
	metrics  *metrics.Metrics
	log      *logrus.Logger
	schedule string
}

func NewTokenSweeper(userRepo *repository.UserRepository, m *metrics.Metrics, log *logrus.Logger, schedule string) *TokenSweeper {
	return &TokenSweeper{
		userRepo: userRepo,
		metrics:  m,
		log:      log,
		schedule: schedule,
	}
}

// Start runs the sweep on schedule until ctx is cancelled
func (w *TokenSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(w.log)))
	if _, err := c.AddFunc(w.schedule, func() {
		if _, err := w.Sweep(ctx); err != nil {
			w.log.WithError(err).Error("refresh token sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", w.schedule, err)
	}

	c.Start()
	w.log.WithField("schedule", w.schedule).Info("Token sweeper started")

	<-ctx.Done()
	<-c.Stop().Done()
	w.log.Info("Token sweeper stopped")
	return nil
}

// Sweep removes stale refresh tokens once
func (w *TokenSweeper) Sweep(ctx context.Context) (int64, error) {
	removed, err := w.userRepo.DeleteStaleRefreshTokens(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	w.metrics.TokensSwept.Add(float64(removed))
	if removed > 0 {
		w.log.WithField("removed", removed).Info("Swept refresh tokens")
	}
	return removed, nil
}
