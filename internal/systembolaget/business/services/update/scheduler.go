package update

import (
	"context"
	"io"
	"time"

	"gosystembolaget_api/pkg/logger"
)

// Scheduler runs refresh cycles on a fixed interval, starting with one
// cycle immediately. Cycles never overlap: the interval wait is armed
// only after the previous cycle has fully finished, so an overrunning
// cycle delays the next one instead of stacking.
type Scheduler struct {
	service  *RefreshService
	interval time.Duration
	log      logger.Logger
}

func NewScheduler(service *RefreshService, interval time.Duration, writer io.Writer) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		log:      logger.NewLogger(writer, "[scheduler]"),
	}
}

// Run blocks until ctx is cancelled. A cycle already in progress runs
// to completion; cancellation takes effect between cycles.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Log("Scheduler started, refresh interval %s", s.interval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Log("Scheduler stopped")
			return
		case <-timer.C:
		}

		s.log.Log("Starting db refresh")
		result := s.service.RunCycle(ctx)
		if !result.Succeeded() {
			s.log.Log("Error updating db: %v", result.Err)
		}
		s.log.Log("Finished db refresh")

		timer.Reset(s.interval)
	}
}
