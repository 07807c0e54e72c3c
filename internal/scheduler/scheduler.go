// Package scheduler runs the scanner on a cron timetable. It is only used
// when a scan_cron is configured; the default mode is a single run.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"TrendSentinel/internal/model"
	"TrendSentinel/internal/scanner"
)

// Scheduler manages the recurring scan task.
type Scheduler struct {
	Cron    *cron.Cron
	Scanner *scanner.Scanner
	Symbols []string
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler over a fixed symbol list.
func NewScheduler(ctx context.Context, s *scanner.Scanner, syms []string) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Scanner: s,
		Symbols: syms,
		Ctx:     ctx,
	}
}

// Register adds the scan task under the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the scan task immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Info().Int("symbols", len(s.Symbols)).Msg("running scheduled scan")
	outcomes := s.Scanner.Run(s.Symbols)

	signals := 0
	for _, o := range outcomes {
		if o.Status == model.StatusSignal {
			signals++
		}
	}
	log.Info().Int("scanned", len(outcomes)).Int("signals", signals).Msg("scheduled scan complete")
}
