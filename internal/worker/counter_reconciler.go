package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/infrastructure/metrics"
)

// CounterReconciler periodically recomputes follower/following counters from the follow edges
type CounterReconciler struct {
	social   domainRepo.SocialRepository
	interval time.Duration
	logger   *zap.Logger
}

const defaultReconcileInterval = time.Hour

// NewCounterReconciler creates a reconciler running every interval
func NewCounterReconciler(social domainRepo.SocialRepository, interval time.Duration, logger *zap.Logger) *CounterReconciler {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	return &CounterReconciler{
		social:   social,
		interval: interval,
		logger:   logger.Named("counter_reconciler"),
	}
}

// Run reconciles once immediately and then on every tick until ctx is done
func (r *CounterReconciler) Run(ctx context.Context) {
	r.logger.Info("Counter reconciler started", zap.Duration("interval", r.interval))
	r.ReconcileOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Counter reconciler stopped")
			return
		case <-ticker.C:
			r.ReconcileOnce(ctx)
		}
	}
}

// ReconcileOnce runs a single repair pass and returns the number of corrected profiles
func (r *CounterReconciler) ReconcileOnce(ctx context.Context) int64 {
	start := time.Now()
	repaired, err := r.social.ReconcileCounters(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("Failed to reconcile follow counters", zap.Error(err))
		}
		return 0
	}

	if repaired > 0 {
		metrics.CountersRepaired.Add(float64(repaired))
		r.logger.Warn("Repaired drifted follow counters",
			zap.Int64("profiles", repaired),
			zap.Duration("elapsed", time.Since(start)))
	} else {
		r.logger.Debug("Follow counters consistent", zap.Duration("elapsed", time.Since(start)))
	}
	return repaired
}
