package scheduler

import (
	"context"
	"sync"
	"time"

	captchaUsecases "ringgate/internal/application/captcha/usecases"
	"ringgate/internal/shared/goroutine"
	"ringgate/internal/shared/logger"
)

// SessionJanitor periodically removes expired challenge sessions.
// Reads never return expired rows, so the janitor only reclaims storage;
// a failed sweep leaves the rows for the next tick.
type SessionJanitor struct {
	sweepUC  *captchaUsecases.SweepExpiredSessionsUseCase
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

// NewSessionJanitor creates a new SessionJanitor
func NewSessionJanitor(
	sweepUC *captchaUsecases.SweepExpiredSessionsUseCase,
	logger logger.Interface,
	interval time.Duration,
) *SessionJanitor {
	return &SessionJanitor{
		sweepUC:  sweepUC,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start starts the janitor
func (j *SessionJanitor) Start(ctx context.Context) {
	j.logger.Infow("starting session janitor", "interval", j.interval)

	j.wg.Add(1)
	goroutine.SafeGo(j.logger, "session-janitor", func() {
		defer j.wg.Done()
		j.runLoop(ctx)
	})
}

// Stop stops the janitor gracefully
func (j *SessionJanitor) Stop() {
	j.stopOnce.Do(func() {
		j.logger.Infow("stopping session janitor")
		close(j.stopChan)
		j.wg.Wait()
		j.logger.Infow("session janitor stopped")
	})
}

func (j *SessionJanitor) runLoop(ctx context.Context) {
	// Run immediately on startup to clear sessions left over from a restart
	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Infow("session janitor stopped due to context cancellation")
			return
		case <-j.stopChan:
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	startTime := time.Now()

	removed, err := j.sweepUC.Execute(ctx)
	if err != nil {
		j.logger.Errorw("failed to sweep expired challenge sessions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if removed > 0 {
		j.logger.Infow("expired challenge sessions swept",
			"count", removed,
			"duration", time.Since(startTime),
		)
	} else {
		j.logger.Debugw("no expired challenge sessions to sweep",
			"duration", time.Since(startTime),
		)
	}
}
