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
)

// SubmitPayment records a self-reported payment claim against the student's
// active ledger. The claimed amount does not touch the paid total; the
// record moves to pending verification until a staff member decides.
func (uc *FeeUC) SubmitPayment(ctx context.Context, req *models.SubmitPaymentRequest) (*models.SubmitPaymentResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", fees.ErrValidation)
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return nil, fmt.Errorf("%w: student ID is required", fees.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", fees.ErrValidation)
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: payment method is required", fees.ErrValidation)
	}

	rec, err := uc.repo.GetFeeRecordByStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	next, ok := models.NextStatus(rec.Status, models.FeeEventSubmit, rec.PaidAmount, rec.TotalAmount)
	if !ok {
		return nil, fmt.Errorf("%w: cannot submit payment while %s", fees.ErrInvalidTransition, rec.Status)
	}

	receiptID := req.ExternalTransactionID
	if receiptID == "" {
		receiptID = uuid.New().String()
	}

	now := time.Now()
	txn := &models.Transaction{
		ID:            uuid.New(),
		FeeID:         rec.ID,
		ReceiptID:     receiptID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        models.TransactionStatusPending,
		PaidAt:        now,
		CreatedAt:     now,
	}

	rec.Status = next
	if err := uc.repo.SaveSubmission(ctx, rec, txn); err != nil {
		return nil, err
	}

	// Notify collaborators after commit; the claim stands even if the
	// event cannot be delivered.
	event := &models.PaymentSubmittedEvent{
		FeeID:     rec.ID,
		StudentID: rec.StudentID,
		ReceiptID: receiptID,
		Amount:    req.Amount,
		Timestamp: now.UTC(),
	}
	if err := uc.gw.PublishPaymentSubmitted(ctx, event); err != nil {
		logger.Warn("Failed to publish payment submitted event",
			logger.ErrorField(err),
			logger.String("fee_id", rec.ID.String()),
			logger.String("receipt_id", receiptID),
		)
	}

	window := time.Duration(uc.cfg.Fees.ReceiptWindowHours) * time.Hour
	return &models.SubmitPaymentResponse{
		ReceiptID:             receiptID,
		Status:                rec.Status,
		ReceiptAvailableUntil: now.Add(window),
	}, nil
}

// VerifyPayment applies a staff decision to a pending transaction. Approve
// adds the claimed amount to the paid total and recomputes the status;
// reject voids the claim, which forces an unsettled record back to unpaid
// while a settled one keeps its balance-derived status. A receipt that has
// already been decided cannot be applied again.
func (uc *FeeUC) VerifyPayment(ctx context.Context, feeID uuid.UUID, receiptID string, action models.VerifyAction) (*models.VerifyPaymentResponse, error) {
	if receiptID == "" {
		return nil, fmt.Errorf("%w: receipt ID is required", fees.ErrValidation)
	}
	if action != models.VerifyActionApprove && action != models.VerifyActionReject {
		return nil, fmt.Errorf("%w: action must be approve or reject", fees.ErrValidation)
	}

	rec, err := uc.repo.GetFeeRecord(ctx, feeID)
	if err != nil {
		return nil, err
	}

	txn, err := uc.repo.GetTransactionByReceipt(ctx, feeID, receiptID)
	if err != nil {
		return nil, err
	}
	if txn.Status != models.TransactionStatusPending {
		// already decided; approving twice must not double-count
		return nil, fmt.Errorf("%w: receipt %s has already been verified", fees.ErrReceiptNotFound, receiptID)
	}

	switch action {
	case models.VerifyActionApprove:
		newPaid := rec.PaidAmount.Add(txn.Amount)
		next, ok := models.NextStatus(rec.Status, models.FeeEventApprove, newPaid, rec.TotalAmount)
		if !ok {
			return nil, fmt.Errorf("%w: cannot approve while %s", fees.ErrInvalidTransition, rec.Status)
		}
		rec.PaidAmount = newPaid
		rec.Status = next
		txn.Status = models.TransactionStatusAccepted
	case models.VerifyActionReject:
		next, ok := models.NextStatus(rec.Status, models.FeeEventReject, rec.PaidAmount, rec.TotalAmount)
		if !ok {
			return nil, fmt.Errorf("%w: cannot reject while %s", fees.ErrInvalidTransition, rec.Status)
		}
		rec.Status = next
		txn.Status = models.TransactionStatusRejected
	}

	if err := uc.repo.SaveVerification(ctx, rec, txn); err != nil {
		return nil, err
	}

	// Reload so the response carries the surviving transaction list.
	updated, err := uc.repo.GetFeeRecord(ctx, feeID)
	if err != nil {
		return nil, err
	}

	event := &models.PaymentVerifiedEvent{
		FeeID:      updated.ID,
		StudentID:  updated.StudentID,
		ReceiptID:  receiptID,
		Action:     action,
		Status:     updated.Status,
		PaidAmount: updated.PaidAmount,
		Timestamp:  time.Now().UTC(),
	}
	if err := uc.gw.PublishPaymentVerified(ctx, event); err != nil {
		logger.Warn("Failed to publish payment verified event",
			logger.ErrorField(err),
			logger.String("fee_id", updated.ID.String()),
			logger.String("receipt_id", receiptID),
		)
	}

	return &models.VerifyPaymentResponse{
		Status: updated.Status,
		Fee:    updated,
	}, nil
}

// GetReceipt returns the transaction for receipt rendering. An empty
// receipt id resolves to the latest visible transaction.
func (uc *FeeUC) GetReceipt(ctx context.Context, feeID uuid.UUID, receiptID string) (*models.Transaction, error) {
	if receiptID == "" {
		return uc.repo.GetLatestTransaction(ctx, feeID)
	}
	return uc.repo.GetTransactionByReceipt(ctx, feeID, receiptID)
}
