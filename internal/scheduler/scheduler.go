// Package scheduler wires up the cron job that keeps the default listing warm
// in the cache, so the landing-page query rarely pays an upstream round trip.
package scheduler

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Warmer refreshes something cacheable; in practice the gateway's default
// listing.
type Warmer interface {
	WarmDefaultListing(ctx context.Context) error
}

// Scheduler wraps robfig/cron around a Warmer.
type Scheduler struct {
	cron   *cron.Cron
	warmer Warmer
	spec   string
	log    *zap.SugaredLogger
}

// New creates a Scheduler that fires every intervalHours hours.
func New(warmer Warmer, intervalHours int, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		warmer: warmer,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
		log:    log.Named("scheduler"),
	}
}

// Start registers the warm job and starts the cron loop. One warm runs
// immediately so the cache is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.warm(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "cron.AddFunc")
	}

	s.cron.Start()
	s.log.Infow("cron started", "spec", s.spec)

	go s.warm(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("cron stopped")
}

func (s *Scheduler) warm(ctx context.Context) {
	if err := s.warmer.WarmDefaultListing(ctx); err != nil {
		// Upstream being down is routine; the fallback path covers reads
		// until the next tick.
		s.log.Warnw("warm cycle failed", "err", err)
		return
	}
	s.log.Info("default listing warmed")
}
