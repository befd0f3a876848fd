package fees

import (
	"context"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/campushq/hostelfees/services/fees FeeUC

// FeeUC represents the fee ledger usecase interface
type FeeUC interface {
	// ledger lifecycle
	CreateFeeRecord(ctx context.Context, req *models.CreateFeeRecordRequest) (*models.FeeRecord, error)
	ArchiveIfPaid(ctx context.Context, feeID uuid.UUID) (bool, error)

	// payment claims and verification
	SubmitPayment(ctx context.Context, req *models.SubmitPaymentRequest) (*models.SubmitPaymentResponse, error)
	VerifyPayment(ctx context.Context, feeID uuid.UUID, receiptID string, action models.VerifyAction) (*models.VerifyPaymentResponse, error)

	// staff adjustments
	ApplyRebate(ctx context.Context, feeID uuid.UUID, amount decimal.Decimal) (*models.FeeRecord, error)

	// read projections
	GetLedger(ctx context.Context, studentID string) (*models.FeeRecord, error)
	GetReceipt(ctx context.Context, feeID uuid.UUID, receiptID string) (*models.Transaction, error)
	ListLedgers(ctx context.Context) ([]*models.FeeRecord, error)

	// ApplyPenalties runs one overdue-penalty batch; invoked by the
	// scheduler, never by a user-facing caller.
	ApplyPenalties(ctx context.Context, now time.Time) (*models.PenaltyRunSummary, error)
}
