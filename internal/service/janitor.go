package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor evicts games that nobody has touched for a while.
// Sessions live only in memory, so this is what bounds memory use.
type SessionJanitor struct {
	sessions SessionStore
	logger   *zap.Logger
	idleTTL  time.Duration
	schedule string
	now      func() time.Time
}

func NewSessionJanitor(sessions SessionStore, logger *zap.Logger, idleTTL time.Duration, schedule string) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		logger:   logger,
		idleTTL:  idleTTL,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start runs the cleanup job on the configured schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.logger.Info("session janitor started", zap.String("schedule", j.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(j.schedule, j.Sweep)
	if err != nil {
		j.logger.Error("failed to add cron job", zap.String("schedule", j.schedule), zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")
}

// Sweep evicts sessions idle for longer than the TTL.
func (j *SessionJanitor) Sweep() {
	evicted := j.sessions.EvictIdle(j.now().Add(-j.idleTTL))
	if evicted > 0 {
		j.logger.Info("idle sessions evicted", zap.Int("count", evicted))
	}
}
