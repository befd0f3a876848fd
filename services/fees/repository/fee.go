package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

// CreateFeeRecord inserts a new ledger; one active record per student and
// cycle is enforced by a unique constraint.
func (r *FeeRepo) CreateFeeRecord(ctx context.Context, rec *models.FeeRecord) error {
	query := `
		INSERT INTO fee_records (
			id, student_id, cycle, hostel_rent, mess_charges, total_amount,
			paid_amount, due_date, status, version, created_at, updated_at
		) VALUES (
			:id, :student_id, :cycle, :hostel_rent, :mess_charges, :total_amount,
			:paid_amount, :due_date, :status, :version, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fees.ErrDuplicateFeeRecord
		}
		return fmt.Errorf("failed to create fee record: %w", err)
	}
	return nil
}

// GetFeeRecord retrieves a ledger by id with its visible transactions.
func (r *FeeRepo) GetFeeRecord(ctx context.Context, feeID uuid.UUID) (*models.FeeRecord, error) {
	query := `
		SELECT id, student_id, cycle, hostel_rent, mess_charges, total_amount,
			paid_amount, due_date, status, last_penalized_at, version, created_at, updated_at
		FROM fee_records
		WHERE id = $1
	`

	var rec models.FeeRecord
	if err := r.db.GetContext(ctx, &rec, query, feeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fees.ErrFeeNotFound
		}
		return nil, fmt.Errorf("failed to get fee record: %w", err)
	}

	if err := r.loadTransactions(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetFeeRecordByStudent retrieves the student's most recent ledger with its
// visible transactions.
func (r *FeeRepo) GetFeeRecordByStudent(ctx context.Context, studentID string) (*models.FeeRecord, error) {
	query := `
		SELECT id, student_id, cycle, hostel_rent, mess_charges, total_amount,
			paid_amount, due_date, status, last_penalized_at, version, created_at, updated_at
		FROM fee_records
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rec models.FeeRecord
	if err := r.db.GetContext(ctx, &rec, query, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fees.ErrFeeNotFound
		}
		return nil, fmt.Errorf("failed to get fee record for student: %w", err)
	}

	if err := r.loadTransactions(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListFeeRecords retrieves every ledger with its visible transactions.
// Transactions are loaded in a single batched query to keep the bulk
// export path at two round trips regardless of ledger count.
func (r *FeeRepo) ListFeeRecords(ctx context.Context) ([]*models.FeeRecord, error) {
	query := `
		SELECT id, student_id, cycle, hostel_rent, mess_charges, total_amount,
			paid_amount, due_date, status, last_penalized_at, version, created_at, updated_at
		FROM fee_records
		ORDER BY created_at ASC
	`

	var records []*models.FeeRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list fee records: %w", err)
	}
	if len(records) == 0 {
		return records, nil
	}

	feeIDs := make([]uuid.UUID, len(records))
	for i, rec := range records {
		feeIDs[i] = rec.ID
	}

	txnQuery, args, err := sqlx.In(`
		SELECT id, fee_id, receipt_id, amount, payment_method, status, paid_at, created_at
		FROM fee_transactions
		WHERE fee_id IN (?) AND status <> ?
		ORDER BY created_at ASC, id ASC
	`, feeIDs, models.TransactionStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction query: %w", err)
	}

	var txns []models.Transaction
	if err := r.db.SelectContext(ctx, &txns, r.db.Rebind(txnQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	byFee := make(map[uuid.UUID][]models.Transaction, len(records))
	for _, txn := range txns {
		byFee[txn.FeeID] = append(byFee[txn.FeeID], txn)
	}
	for _, rec := range records {
		rec.Transactions = byFee[rec.ID]
	}
	return records, nil
}

// ListOverdue returns unsettled ledgers past their due date that have not
// been penalized in the given cycle. Transactions are not loaded; the
// penalty path only touches totals.
func (r *FeeRepo) ListOverdue(ctx context.Context, asOf time.Time, cycle time.Time) ([]*models.FeeRecord, error) {
	query := `
		SELECT id, student_id, cycle, hostel_rent, mess_charges, total_amount,
			paid_amount, due_date, status, last_penalized_at, version, created_at, updated_at
		FROM fee_records
		WHERE due_date < $1
		  AND status IN ($2, $3, $4)
		  AND (last_penalized_at IS NULL OR last_penalized_at < $5)
		ORDER BY due_date ASC
	`

	var records []*models.FeeRecord
	err := r.db.SelectContext(ctx, &records, query,
		asOf,
		models.FeeStatusUnpaid,
		models.FeeStatusPartiallyPaid,
		models.FeeStatusPendingVerification,
		cycle,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue fee records: %w", err)
	}
	return records, nil
}

// UpdateFeeRecord persists balance and status changes with an optimistic
// version check. Zero rows affected means the record moved on underneath
// the caller.
func (r *FeeRepo) UpdateFeeRecord(ctx context.Context, rec *models.FeeRecord) error {
	query := `
		UPDATE fee_records
		SET hostel_rent = :hostel_rent,
			mess_charges = :mess_charges,
			total_amount = :total_amount,
			paid_amount = :paid_amount,
			status = :status,
			last_penalized_at = :last_penalized_at,
			version = version + 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id AND version = :version
	`

	res, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("failed to update fee record: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fees.ErrConflict
	}

	rec.Version++
	return nil
}

// loadTransactions attaches the visible (pending or accepted) transactions
// in insertion order. Rejected entries stay in storage for audit but are
// never surfaced.
func (r *FeeRepo) loadTransactions(ctx context.Context, rec *models.FeeRecord) error {
	query := `
		SELECT id, fee_id, receipt_id, amount, payment_method, status, paid_at, created_at
		FROM fee_transactions
		WHERE fee_id = $1 AND status <> $2
		ORDER BY created_at ASC, id ASC
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, rec.ID, models.TransactionStatusRejected)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	rec.Transactions = txns
	return nil
}
