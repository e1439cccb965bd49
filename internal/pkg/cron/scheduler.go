package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a cron runner so jobs get a context and structured logs.
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{c: cron.New()}
}

// AddJob registers fn under the given cron spec.
func (s *Scheduler) AddJob(spec string, name string, fn func(ctx context.Context) error) error {
	_, err := s.c.AddFunc(spec, func() {
		start := time.Now()
		if err := fn(context.Background()); err != nil {
			slog.Error("cron job failed", "name", name, "error", err, "duration", time.Since(start))
			return
		}
		slog.Info("cron job finished", "name", name, "duration", time.Since(start))
	})
	if err != nil {
		return err
	}
	slog.Info("cron job registered", "name", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop waits for running jobs before returning.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
}
