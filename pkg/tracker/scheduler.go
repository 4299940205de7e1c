package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medialog/pkg/logger"
)

// RunScheduler runs the catch-up scan on the configured interval until the
// context is cancelled. A zero or negative interval disables scheduling.
func (t Tracker) RunScheduler(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	if t.config.ScanInterval <= 0 {
		log.Debug("catch-up scan scheduling disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(t.config.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			promoted, err := t.ScanForCompleted(ctx, nil)
			if err != nil {
				log.Error("catch-up scan failed", zap.Error(err))
				continue
			}
			log.Debug("catch-up scan finished", zap.Int("promoted", promoted))
		}
	}
}
