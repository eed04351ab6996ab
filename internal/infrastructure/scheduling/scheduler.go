// Package scheduling runs periodic background jobs.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/go-co-op/gocron/v2"
)

// JobFunc is one run of a periodic job.
type JobFunc func(ctx context.Context) error

// Scheduler wraps a gocron scheduler. Jobs run in singleton mode so a slow
// run is never overlapped by the next one.
type Scheduler struct {
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
	logger    *logging.ChanneledLogger
}

func NewScheduler(logger *logging.ChanneledLogger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{scheduler: s, ctx: ctx, cancel: cancel, logger: logger}, nil
}

// Every registers fn to run every interval. Each run gets its own timeout
// of one interval.
func (s *Scheduler) Every(name string, interval time.Duration, fn JobFunc) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", name)
	}
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.run(name, interval, fn) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}
	s.logger.Scheduler().Info("Job scheduled", "job", name, "interval", interval)
	return nil
}

func (s *Scheduler) run(name string, timeout time.Duration, fn JobFunc) {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := fn(ctx); err != nil {
		s.logger.Scheduler().Error("Job failed", "job", name, "error", err.Error(), "duration", time.Since(start))
		return
	}
	s.logger.Scheduler().Debug("Job completed", "job", name, "duration", time.Since(start))
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Shutdown cancels running jobs and stops the scheduler.
func (s *Scheduler) Shutdown() error {
	s.cancel()
	return s.scheduler.Shutdown()
}
