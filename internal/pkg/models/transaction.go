package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus tracks a claimed payment through verification
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusAccepted TransactionStatus = "accepted"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Transaction is a single claimed-or-accepted payment entry within a ledger.
// Amounts are self-reported and do not count toward the paid total until a
// staff member approves them.
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	FeeID         uuid.UUID         `json:"fee_id" db:"fee_id"`
	ReceiptID     string            `json:"receipt_id" db:"receipt_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	PaymentMethod string            `json:"payment_method" db:"payment_method"`
	Status        TransactionStatus `json:"status" db:"status"`
	PaidAt        time.Time         `json:"paid_at" db:"paid_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}

// VerifyAction is the staff decision on a pending transaction
type VerifyAction string

const (
	VerifyActionApprove VerifyAction = "approve"
	VerifyActionReject  VerifyAction = "reject"
)

// SubmitPaymentRequest is a student's self-reported payment claim
type SubmitPaymentRequest struct {
	StudentID             string          `json:"student_id"`
	Amount                decimal.Decimal `json:"amount"`
	PaymentMethod         string          `json:"payment_method"`
	ExternalTransactionID string          `json:"external_transaction_id,omitempty"`
}

// SubmitPaymentResponse acknowledges a claim; the receipt window is
// advisory and communicated to the caller, not enforced server-side
type SubmitPaymentResponse struct {
	ReceiptID             string    `json:"receipt_id"`
	Status                FeeStatus `json:"status"`
	ReceiptAvailableUntil time.Time `json:"receipt_available_until"`
}

// VerifyPaymentRequest carries the staff decision for a receipt
type VerifyPaymentRequest struct {
	ReceiptID string       `json:"receipt_id"`
	Action    VerifyAction `json:"action"`
}

// VerifyPaymentResponse returns the recomputed ledger after verification
type VerifyPaymentResponse struct {
	Status FeeStatus  `json:"status"`
	Fee    *FeeRecord `json:"fee"`
}

// PaymentSubmittedEvent is published after a claim commits
type PaymentSubmittedEvent struct {
	FeeID     uuid.UUID       `json:"fee_id"`
	StudentID string          `json:"student_id"`
	ReceiptID string          `json:"receipt_id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// PaymentVerifiedEvent is published after a staff decision commits
type PaymentVerifiedEvent struct {
	FeeID      uuid.UUID       `json:"fee_id"`
	StudentID  string          `json:"student_id"`
	ReceiptID  string          `json:"receipt_id"`
	Action     VerifyAction    `json:"action"`
	Status     FeeStatus       `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Timestamp  time.Time       `json:"timestamp"`
}
