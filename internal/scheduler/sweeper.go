// Package scheduler runs the periodic billing reconciliation job.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vitrine/config"
	"vitrine/internal/delivery"
	"vitrine/internal/usecase"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultSweepInterval applies when billing.sweepInterval is unset.
const defaultSweepInterval = time.Hour

// SweeperParams holds dependencies for the billing sweeper, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Billing usecase.BillingUsecase
}

type sweeper struct {
	cfg       *config.Config
	logger    *slog.Logger
	billing   usecase.BillingUsecase
	scheduler *gocron.Scheduler
}

// NewSweeper creates the scheduler that downgrades lapsed subscriptions.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &sweeper{
		cfg:       params.Config,
		logger:    params.Logger,
		billing:   params.Billing,
		scheduler: gocron.NewScheduler(time.UTC),
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve registers the sweep job and blocks running it on its interval.
func (s *sweeper) Serve(ctx context.Context) error {
	if s.cfg.Billing == nil || !s.cfg.Billing.SweepEnabled {
		s.logger.Info("Billing sweep disabled")

		return nil
	}

	interval := s.cfg.Billing.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	if _, err := s.scheduler.Every(interval).Do(func() {
		s.sweep(ctx)
	}); err != nil {
		return errors.Wrap(err, "failed to schedule billing sweep")
	}

	s.logger.Info("Starting billing sweeper", slog.Duration("interval", interval))
	s.scheduler.StartBlocking()

	return nil
}

func (s *sweeper) sweep(ctx context.Context) {
	swept, err := s.billing.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("Billing sweep failed", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("Billing sweep downgraded lapsed subscriptions", slog.Int("count", swept))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	s.scheduler.Stop()

	return nil
}
