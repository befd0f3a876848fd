package scheduler

import (
	"context"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/robfig/cron/v3"
)

// PenaltyScheduler fires the overdue-penalty batch once per day at a fixed
// wall-clock time for the lifetime of the process. A Redis lock guarantees
// at most one concurrent run even when multiple instances are deployed.
type PenaltyScheduler struct {
	uc   fees.FeeUC
	repo fees.FeeRepo
	cfg  *models.Config
	cron *cron.Cron
}

// NewPenaltyScheduler creates a new penalty scheduler instance
func NewPenaltyScheduler(uc fees.FeeUC, repo fees.FeeRepo, cfg *models.Config) *PenaltyScheduler {
	return &PenaltyScheduler{
		uc:   uc,
		repo: repo,
		cfg:  cfg,
		cron: cron.New(),
	}
}

// Start registers the cron entry and starts the scheduler.
func (s *PenaltyScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Fees.PenaltyCronSpec, func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Penalty scheduler started",
		logger.String("cron", s.cfg.Fees.PenaltyCronSpec),
	)
	return nil
}

// Stop stops the scheduler and waits for an in-flight run to finish.
func (s *PenaltyScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Penalty scheduler stopped")
}

// RunOnce executes a single penalty batch under the single-flight lock.
// Returns the run summary, or nil when the run was skipped because another
// run still holds the lock. Errors are absorbed and logged; the scheduler
// has no caller to surface them to.
func (s *PenaltyScheduler) RunOnce(ctx context.Context) *models.PenaltyRunSummary {
	lockTTL := time.Duration(s.cfg.Fees.PenaltyLockTTL) * time.Second

	acquired, err := s.repo.AcquirePenaltyLock(ctx, lockTTL)
	if err != nil {
		logger.Error("Failed to acquire penalty lock", logger.ErrorField(err))
		return nil
	}
	if !acquired {
		logger.Warn("Skipping penalty run, previous run still in progress")
		return nil
	}
	defer func() {
		if err := s.repo.ReleasePenaltyLock(ctx); err != nil {
			logger.Error("Failed to release penalty lock", logger.ErrorField(err))
		}
	}()

	summary, err := s.uc.ApplyPenalties(ctx, time.Now())
	if err != nil {
		logger.Error("Penalty run failed", logger.ErrorField(err))
		return nil
	}
	return summary
}
