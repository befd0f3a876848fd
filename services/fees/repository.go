package fees

import (
	"context"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/campushq/hostelfees/services/fees FeeRepo

// FeeRepo provides persistence for fee records and their transactions.
// Every mutation of an existing record is version-checked: the record must
// carry the version it was read at, and the write fails with ErrConflict
// when the stored version has moved on.
type FeeRepo interface {
	CreateFeeRecord(ctx context.Context, rec *models.FeeRecord) error
	GetFeeRecord(ctx context.Context, feeID uuid.UUID) (*models.FeeRecord, error)
	GetFeeRecordByStudent(ctx context.Context, studentID string) (*models.FeeRecord, error)
	ListFeeRecords(ctx context.Context) ([]*models.FeeRecord, error)

	// ListOverdue returns records with a due date before asOf that are not
	// fully paid and have not been penalized in the given cycle yet.
	ListOverdue(ctx context.Context, asOf time.Time, cycle time.Time) ([]*models.FeeRecord, error)

	// SaveSubmission appends the transaction and persists the record's new
	// status in one transaction.
	SaveSubmission(ctx context.Context, rec *models.FeeRecord, txn *models.Transaction) error
	// SaveVerification persists the staff decision on the transaction and
	// the recomputed record totals in one transaction.
	SaveVerification(ctx context.Context, rec *models.FeeRecord, txn *models.Transaction) error
	// UpdateFeeRecord persists balance and status changes (penalty, rebate).
	UpdateFeeRecord(ctx context.Context, rec *models.FeeRecord) error

	GetTransactionByReceipt(ctx context.Context, feeID uuid.UUID, receiptID string) (*models.Transaction, error)
	GetLatestTransaction(ctx context.Context, feeID uuid.UUID) (*models.Transaction, error)
	// ClearTransactions irreversibly discards the transaction history of an
	// archived record.
	ClearTransactions(ctx context.Context, feeID uuid.UUID) error

	// Derived risk cache; never authoritative.
	GetCachedRisk(ctx context.Context, feeID uuid.UUID) (models.RiskLevel, error)
	CacheRisk(ctx context.Context, feeID uuid.UUID, level models.RiskLevel, ttl time.Duration) error

	// Penalty run single-flight lock. Acquire returns false when another
	// run still holds the lock.
	AcquirePenaltyLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleasePenaltyLock(ctx context.Context) error
}
