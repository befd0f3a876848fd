package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
)

// SaveSubmission appends the claimed transaction and persists the record's
// new status in one database transaction. The receipt id must be unique
// within the record; reusing one is a conflict.
func (r *FeeRepo) SaveSubmission(ctx context.Context, rec *models.FeeRecord, txn *models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE fee_records
		SET status = :status,
			version = version + 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id AND version = :version
	`
	res, err := tx.NamedExecContext(ctx, updateQuery, rec)
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

	insertQuery := `
		INSERT INTO fee_transactions (
			id, fee_id, receipt_id, amount, payment_method, status, paid_at, created_at
		) VALUES (
			:id, :fee_id, :receipt_id, :amount, :payment_method, :status, :paid_at, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, txn); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: receipt id already exists on this record", fees.ErrConflict)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}

	rec.Version++
	return nil
}

// SaveVerification persists the staff decision on the transaction together
// with the recomputed record totals. The transaction row is only updated
// while still pending, so a decision can never be applied twice.
func (r *FeeRepo) SaveVerification(ctx context.Context, rec *models.FeeRecord, txn *models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txnQuery := `
		UPDATE fee_transactions
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	res, err := tx.ExecContext(ctx, txnQuery, txn.Status, txn.ID, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read transaction update result: %w", err)
	}
	if rows == 0 {
		return fees.ErrReceiptNotFound
	}

	recQuery := `
		UPDATE fee_records
		SET paid_amount = :paid_amount,
			status = :status,
			version = version + 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id AND version = :version
	`
	res, err = tx.NamedExecContext(ctx, recQuery, rec)
	if err != nil {
		return fmt.Errorf("failed to update fee record: %w", err)
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read record update result: %w", err)
	}
	if rows == 0 {
		return fees.ErrConflict
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification: %w", err)
	}

	rec.Version++
	return nil
}

// GetTransactionByReceipt retrieves a visible transaction by its receipt id.
func (r *FeeRepo) GetTransactionByReceipt(ctx context.Context, feeID uuid.UUID, receiptID string) (*models.Transaction, error) {
	query := `
		SELECT id, fee_id, receipt_id, amount, payment_method, status, paid_at, created_at
		FROM fee_transactions
		WHERE fee_id = $1 AND receipt_id = $2 AND status <> $3
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, feeID, receiptID, models.TransactionStatusRejected)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fees.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// GetLatestTransaction retrieves the most recent visible transaction.
func (r *FeeRepo) GetLatestTransaction(ctx context.Context, feeID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, fee_id, receipt_id, amount, payment_method, status, paid_at, created_at
		FROM fee_transactions
		WHERE fee_id = $1 AND status <> $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, feeID, models.TransactionStatusRejected)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fees.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get latest transaction: %w", err)
	}
	return &txn, nil
}

// ClearTransactions irreversibly discards the transaction history of an
// archived record.
func (r *FeeRepo) ClearTransactions(ctx context.Context, feeID uuid.UUID) error {
	query := `DELETE FROM fee_transactions WHERE fee_id = $1`
	if _, err := r.db.ExecContext(ctx, query, feeID); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
