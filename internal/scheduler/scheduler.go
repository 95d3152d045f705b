package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/pipeline"
	"github.com/dkozlov-dev/weather-reports/internal/report"
)

// Scheduler re-runs the pipeline on a cron schedule and swaps the rendered
// documents into the report store. Each run owns a private dataset, so a
// refresh never races the handlers reading published documents.
type Scheduler struct {
	pipeline *pipeline.Pipeline
	store    *report.Store
	logger   *zap.Logger
	cron     *cron.Cron
	spec     string
	mu       sync.Mutex
	running  bool
	lastRun  time.Time
}

func NewScheduler(p *pipeline.Pipeline, store *report.Store, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		pipeline: p,
		store:    store,
		logger:   logger,
		cron:     cron.New(),
		spec:     spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.refresh); err != nil {
		return fmt.Errorf("invalid refresh spec %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("spec", s.spec))
	return nil
}

func (s *Scheduler) refresh() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Debug("Skipping refresh, previous run still in progress")
		return
	}
	s.running = true
	s.lastRun = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	startTime := time.Now()
	s.logger.Info("Starting scheduled report refresh", zap.Time("start_time", startTime))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	docs, err := s.pipeline.Run(ctx)
	if err != nil {
		s.logger.Error("Scheduled report refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}
	s.store.Set(docs)
	s.logger.Info("Scheduled report refresh completed",
		zap.Int("reports", len(docs)),
		zap.Duration("duration", time.Since(startTime)))
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// ForceRun triggers a refresh outside the schedule.
func (s *Scheduler) ForceRun() {
	s.logger.Info("Manually triggering report refresh")
	go s.refresh()
}

// LastRun reports when the most recent refresh started.
func (s *Scheduler) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}
