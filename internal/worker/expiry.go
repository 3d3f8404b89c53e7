// Package worker runs the background short-link expiry sweep.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const sweepTimeout = 3 * time.Second

type Repo interface {
	DeleteExpired(context.Context, time.Time) (int64, error)
}

// ExpiryWorker deletes short links older than the configured TTL. It only
// exists when retention is configured; the public contract never exposes
// deletion.
type ExpiryWorker struct {
	logger   *zap.Logger
	repo     Repo
	ttl      time.Duration
	interval time.Duration
}

func NewExpiryWorker(logger *zap.Logger, repo Repo, ttl, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &ExpiryWorker{
		logger:   logger,
		repo:     repo,
		ttl:      ttl,
		interval: interval,
	}
}

// Run sweeps on every tick until the context is cancelled.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.logger.Info("expiry worker started",
		zap.Duration("ttl", w.ttl),
		zap.Duration("interval", w.interval),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiry worker stopped")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep removes every link created before now minus the TTL.
func (w *ExpiryWorker) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := w.repo.DeleteExpired(ctx, time.Now().Add(-w.ttl))
	if err != nil {
		w.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}

	if deleted > 0 {
		w.logger.Info("expired short links removed", zap.Int64("count", deleted))
	}
}
