package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
)

// ApplyPenalties runs one overdue-penalty batch: every unsettled record
// whose due date has passed and that has not been penalized in the current
// cycle receives the flat surcharge on its outstanding total. Records are
// processed concurrently but committed independently, so one failure never
// aborts the rest of the batch; failed records are picked up again on the
// next tick.
func (uc *FeeUC) ApplyPenalties(ctx context.Context, now time.Time) (*models.PenaltyRunSummary, error) {
	cycle := now.UTC().Truncate(24 * time.Hour)

	records, err := uc.repo.ListOverdue(ctx, now, cycle)
	if err != nil {
		return nil, err
	}

	summary := &models.PenaltyRunSummary{
		Cycle:   cycle.Format("2006-01-02"),
		Scanned: len(records),
	}
	if len(records) == 0 {
		return summary, nil
	}

	workers := uc.cfg.Fees.PenaltyWorkers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)

	for _, rec := range records {
		rec := rec
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := uc.penalizeRecord(ctx, rec, now); err != nil {
				logger.Error("Failed to penalize overdue record",
					logger.ErrorField(err),
					logger.String("fee_id", rec.ID.String()),
					logger.String("student_id", rec.StudentID),
				)
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			summary.Penalized++
			mu.Unlock()
		}()
	}
	wg.Wait()

	logger.Info("Penalty run completed",
		logger.String("cycle", summary.Cycle),
		logger.Int("scanned", summary.Scanned),
		logger.Int("penalized", summary.Penalized),
		logger.Int("failed", summary.Failed),
	)
	return summary, nil
}

// penalizeRecord surcharges one record and publishes the event after the
// write commits. The version check makes the surcharge lose cleanly against
// a concurrent submission or verification; the record is retried next tick.
func (uc *FeeUC) penalizeRecord(ctx context.Context, rec *models.FeeRecord, now time.Time) error {
	rec.TotalAmount = rec.TotalAmount.Add(uc.penalty)
	penalizedAt := now
	rec.LastPenalizedAt = &penalizedAt

	if err := uc.repo.UpdateFeeRecord(ctx, rec); err != nil {
		return err
	}

	event := &models.PenaltyAppliedEvent{
		FeeID:     rec.ID,
		StudentID: rec.StudentID,
		Amount:    uc.penalty,
		Cycle:     now.UTC().Truncate(24 * time.Hour).Format("2006-01-02"),
		Timestamp: now.UTC(),
	}
	if err := uc.gw.PublishPenaltyApplied(ctx, event); err != nil {
		logger.Warn("Failed to publish penalty applied event",
			logger.ErrorField(err),
			logger.String("fee_id", rec.ID.String()),
		)
	}
	return nil
}
