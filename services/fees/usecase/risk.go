package usecase

import (
	"context"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
)

// ComputeRisk classifies default likelihood from attendance, due-date
// proximity and the paid fraction. Pure; evaluated on demand for reporting
// and never persisted as ground truth.
func ComputeRisk(attendanceRatePercent float64, daysToDeadline int, paidPercent float64) models.RiskLevel {
	if attendanceRatePercent < 60 || (daysToDeadline < 3 && paidPercent == 0) {
		return models.RiskHigh
	}
	if attendanceRatePercent < 75 || paidPercent < 50 {
		return models.RiskMedium
	}
	return models.RiskLow
}

// attachRisk decorates the record with its derived risk level. The cache
// is a convenience only; misses and cache failures fall through to a fresh
// computation, and a failing attendance lookup degrades to a neutral rate
// so read endpoints stay available.
func (uc *FeeUC) attachRisk(ctx context.Context, rec *models.FeeRecord) {
	if cached, err := uc.repo.GetCachedRisk(ctx, rec.ID); err == nil && cached != "" {
		rec.PaymentRisk = cached
		return
	}

	attendance, err := uc.gw.GetAttendanceRate(ctx, rec.StudentID)
	if err != nil {
		logger.Warn("Attendance lookup failed, assuming full attendance for risk",
			logger.ErrorField(err),
			logger.String("student_id", rec.StudentID),
		)
		attendance = 100
	}

	daysToDeadline := int(time.Until(rec.DueDate).Hours() / 24)
	level := ComputeRisk(attendance, daysToDeadline, rec.PaidPercent())
	rec.PaymentRisk = level

	ttl := time.Duration(uc.cfg.Fees.RiskCacheTTL) * time.Minute
	if err := uc.repo.CacheRisk(ctx, rec.ID, level, ttl); err != nil {
		logger.Debug("Failed to cache risk level",
			logger.ErrorField(err),
			logger.String("fee_id", rec.ID.String()),
		)
	}
}
