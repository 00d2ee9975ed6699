package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type deliveryRetrier interface {
	RetryDue(ctx context.Context) (int, error)
}

// Scheduler periodically retries credential deliveries that are due.
type Scheduler struct {
	deliveryService deliveryRetrier
	interval        time.Duration
	logger          logger.Logger
}

func New(
	deliveryService deliveryRetrier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		deliveryService: deliveryService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	attempted, err := s.deliveryService.RetryDue(ctx)
	if err != nil {
		s.logger.Error("failed to retry due deliveries",
			logger.String("error", err.Error()),
		)
		return
	}

	if attempted > 0 {
		s.logger.Info("due deliveries retried",
			logger.Int("count", attempted),
		)
	}
}
