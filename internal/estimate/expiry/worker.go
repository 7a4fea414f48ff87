// Package expiry sweeps sent estimates whose expiry date has passed and marks
// them expired. Expiry is never derived on read; this worker is the only
// place the transition is applied automatically.
package expiry

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/billfold/internal/clock"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config controls the expiry sweep loop.
type Config struct {
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{PollInterval: 1 * time.Hour}
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultConfig().PollInterval
	}
	return c
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	Svc    estimatedomain.Service
	Config Config `optional:"true"`
}

type Worker struct {
	log   *zap.Logger
	clock clock.Clock
	svc   estimatedomain.Service
	cfg   Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		log:   p.Log.Named("estimate.expiry"),
		clock: p.Clock,
		svc:   p.Svc,
		cfg:   p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if n, err := w.RunOnce(ctx); err != nil {
			w.log.Warn("expiry sweep failed", zap.Error(err))
		} else if n > 0 {
			w.log.Info("estimates expired", zap.Int("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce expires every sent estimate past its expiry date and returns how
// many were moved.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	if w.svc == nil {
		return 0, errors.New("expiry_worker_unavailable")
	}

	resp, err := w.svc.List(ctx, estimatedomain.Filter{Status: estimatedomain.StatusSent})
	if err != nil {
		return 0, err
	}

	now := w.clock.Now()
	expired := 0
	for _, est := range resp.Estimates {
		if !estimatedomain.IsExpired(est, now) {
			continue
		}
		if _, err := w.svc.MarkExpired(ctx, est.ID); err != nil {
			// Keep sweeping; a single stuck estimate retries next tick.
			w.log.Warn("mark expired failed",
				zap.String("estimate_id", est.ID),
				zap.Error(err),
			)
			continue
		}
		expired++
	}
	return expired, nil
}
