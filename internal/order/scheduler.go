package order

import (
	"context"
	"fmt"
	"time"

	"agrimart-be/internal/logger"
	"agrimart-be/internal/metrics"
	"agrimart-be/internal/notification"

	"go.uber.org/zap"
)

// Scheduler advances orders through the fulfillment pipeline on a fixed
// cadence, simulating logistics progress. It is owned by the process: started
// at boot, stopped by cancelling its context at shutdown.
type Scheduler struct {
	repo  Repository
	notes notification.Service
	tick  time.Duration
	dwell time.Duration
}

func NewScheduler(repo Repository, notes notification.Service, tick, dwell time.Duration) *Scheduler {
	if tick <= 0 {
		tick = 60 * time.Second
	}
	if dwell <= 0 {
		dwell = 5 * time.Minute
	}
	return &Scheduler{repo: repo, notes: notes, tick: tick, dwell: dwell}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log := logger.L().With(zap.String("component", "order_scheduler"))
	log.Info("progression loop started",
		zap.Duration("tick", s.tick),
		zap.Duration("dwell", s.dwell),
	)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("progression loop stopped")
			return
		case <-ticker.C:
			s.RunTick(ctx, time.Now())
		}
	}
}

// RunTick performs one scan-and-advance pass. Failures on individual orders
// are isolated: they are logged, counted, and the scan continues. A crashed
// tick leaves unprocessed orders for the next one.
func (s *Scheduler) RunTick(ctx context.Context, now time.Time) {
	log := logger.L().With(zap.String("component", "order_scheduler"))
	metrics.SchedulerTicks.Inc()

	orders, err := s.repo.ListInProgress(ctx)
	if err != nil {
		metrics.SchedulerFailures.Inc()
		log.Error("failed to scan in-progress orders", zap.Error(err))
		return
	}

	for _, o := range orders {
		if now.Sub(o.StatusUpdatedAt) < s.dwell {
			continue
		}

		next, ok := NextStatus(o.Status)
		if !ok {
			// Terminal or unknown status: defensive, never advance.
			continue
		}

		// Status is persisted before the notification. A failed notification
		// does not roll the status back.
		if err := s.repo.UpdateStatus(ctx, o.ID, next, now); err != nil {
			metrics.SchedulerFailures.Inc()
			log.Error("failed to advance order",
				zap.Uint("order_id", o.ID),
				zap.String("from", string(o.Status)),
				zap.String("to", string(next)),
				zap.Error(err),
			)
			continue
		}

		metrics.OrdersAdvanced.Inc()
		log.Info("order advanced",
			zap.Uint("order_id", o.ID),
			zap.String("status", string(next)),
		)

		orderID := o.ID
		msg := fmt.Sprintf("Your order #%d status changed to %s", o.ID, next)
		if err := s.notes.Notify(ctx, o.CustomerID, &orderID, msg); err != nil {
			log.Warn("failed to notify customer",
				zap.Uint("order_id", o.ID),
				zap.Error(err),
			)
		}
	}
}
