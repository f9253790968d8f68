// Package scheduler provides cron-based refresh of the card catalog snapshot.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cardpath/backend/internal/catalog"
)

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to refresh the catalog
	// (e.g., "0 3 * * *" for daily at 03:00)
	Schedule string
	// Timeout is the maximum duration for a complete refresh
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "0 3 * * *",
		Timeout:  time.Minute,
		Enabled:  true,
	}
}

// Scheduler manages scheduled catalog refreshes
type Scheduler struct {
	cron    *cron.Cron
	store   *catalog.Store
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, store *catalog.Store, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	// Convert standard cron (5 fields) to cron with seconds (6 fields)
	schedule := "0 " + s.config.Schedule

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runRefreshJob()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate catalog refresh
func (s *Scheduler) RunNow() {
	go s.runRefreshJob()
}

// runRefreshJob rebuilds and publishes a new catalog snapshot. A failed
// refresh keeps the previous snapshot in place.
func (s *Scheduler) runRefreshJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	s.logger.Info("Starting catalog refresh",
		slog.Time("start_time", startTime),
	)

	snap, err := s.store.Reload(ctx)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Catalog refresh failed, keeping previous snapshot",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return
	}

	s.logger.Info("Catalog refresh completed",
		slog.Int("cards_loaded", len(snap.Cards)),
		slog.Duration("duration", duration),
	)
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// GetLastRunTime returns the last run time
func (s *Scheduler) GetLastRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Prev
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
