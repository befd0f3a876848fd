package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFeeRecord opens a ledger for a student at fee-cycle start. The
// total is the sum of hostel rent and mess charges; one active record per
// student per cycle.
func (uc *FeeUC) CreateFeeRecord(ctx context.Context, req *models.CreateFeeRecordRequest) (*models.FeeRecord, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", fees.ErrValidation)
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return nil, fmt.Errorf("%w: student ID is required", fees.ErrValidation)
	}
	if strings.TrimSpace(req.Cycle) == "" {
		return nil, fmt.Errorf("%w: cycle is required", fees.ErrValidation)
	}
	if req.HostelRent.IsNegative() || req.MessCharges.IsNegative() {
		return nil, fmt.Errorf("%w: fee components must be non-negative", fees.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", fees.ErrValidation)
	}

	now := time.Now()
	rec := &models.FeeRecord{
		ID:          uuid.New(),
		StudentID:   req.StudentID,
		Cycle:       req.Cycle,
		HostelRent:  req.HostelRent,
		MessCharges: req.MessCharges,
		TotalAmount: req.HostelRent.Add(req.MessCharges),
		PaidAmount:  decimal.Zero,
		DueDate:     req.DueDate,
		Status:      models.FeeStatusUnpaid,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.CreateFeeRecord(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Fee record created",
		logger.String("fee_id", rec.ID.String()),
		logger.String("student_id", rec.StudentID),
		logger.String("cycle", rec.Cycle),
	)
	return rec, nil
}

// ApplyRebate reduces the outstanding balance and the mess-charge component
// by the same amount. Rebates that would drive either below zero are
// rejected.
func (uc *FeeUC) ApplyRebate(ctx context.Context, feeID uuid.UUID, amount decimal.Decimal) (*models.FeeRecord, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: rebate amount must be positive", fees.ErrValidation)
	}

	rec, err := uc.repo.GetFeeRecord(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(rec.MessCharges) {
		return nil, fmt.Errorf("%w: rebate exceeds mess charges", fees.ErrValidation)
	}
	if amount.GreaterThan(rec.TotalAmount) {
		return nil, fmt.Errorf("%w: rebate exceeds outstanding total", fees.ErrValidation)
	}

	rec.TotalAmount = rec.TotalAmount.Sub(amount)
	rec.MessCharges = rec.MessCharges.Sub(amount)

	// A reduced total can settle a record that was already partially paid.
	// A record under pending verification keeps that status; open claims
	// are resolved by the verification decision, not by the rebate.
	if rec.Status == models.FeeStatusUnpaid || rec.Status == models.FeeStatusPartiallyPaid {
		if rec.PaidAmount.GreaterThanOrEqual(rec.TotalAmount) {
			rec.Status = models.FeeStatusPaid
		}
	}

	if err := uc.repo.UpdateFeeRecord(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Rebate applied",
		logger.String("fee_id", rec.ID.String()),
		logger.String("amount", amount.String()),
	)
	return rec, nil
}

// ArchiveIfPaid clears the transaction history of a fully settled record.
// Returns false without touching the record when it is not paid.
func (uc *FeeUC) ArchiveIfPaid(ctx context.Context, feeID uuid.UUID) (bool, error) {
	rec, err := uc.repo.GetFeeRecord(ctx, feeID)
	if err != nil {
		return false, err
	}

	if rec.Status != models.FeeStatusPaid {
		return false, nil
	}

	if err := uc.repo.ClearTransactions(ctx, feeID); err != nil {
		return false, err
	}

	logger.Info("Fee record archived",
		logger.String("fee_id", feeID.String()),
		logger.String("student_id", rec.StudentID),
	)
	return true, nil
}

// GetLedger returns the student's active ledger with derived risk attached.
func (uc *FeeUC) GetLedger(ctx context.Context, studentID string) (*models.FeeRecord, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: student ID is required", fees.ErrValidation)
	}

	rec, err := uc.repo.GetFeeRecordByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	uc.attachRisk(ctx, rec)
	return rec, nil
}

// ListLedgers returns every ledger with derived risk attached, for
// dashboards and bulk exports.
func (uc *FeeUC) ListLedgers(ctx context.Context) ([]*models.FeeRecord, error) {
	records, err := uc.repo.ListFeeRecords(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		uc.attachRisk(ctx, rec)
	}
	return records, nil
}
