package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeStatus represents the settlement state of a fee record
type FeeStatus string

const (
	FeeStatusUnpaid              FeeStatus = "unpaid"
	FeeStatusPartiallyPaid       FeeStatus = "partially_paid"
	FeeStatusPaid                FeeStatus = "paid"
	FeeStatusPendingVerification FeeStatus = "pending_verification"
)

// FeeEvent represents a ledger mutation that may change the fee status
type FeeEvent string

const (
	FeeEventSubmit  FeeEvent = "submit"
	FeeEventApprove FeeEvent = "approve"
	FeeEventReject  FeeEvent = "reject"
)

// statusByBalance is a sentinel transition target resolved against the
// ledger balance at apply time (approve lands on paid or partially_paid
// depending on how much of the total is covered).
const statusByBalance FeeStatus = "_by_balance"

// feeTransitions is the explicit {state, event} -> state' table. Pairs
// absent from the table are invalid transitions.
var feeTransitions = map[FeeStatus]map[FeeEvent]FeeStatus{
	// verification stays available from unpaid and partially paid because
	// earlier decisions on sibling claims may already have moved the status
	// while other claims are still pending
	FeeStatusUnpaid: {
		FeeEventSubmit:  FeeStatusPendingVerification,
		FeeEventApprove: statusByBalance,
		FeeEventReject:  FeeStatusUnpaid,
	},
	FeeStatusPartiallyPaid: {
		// a new claim re-opens verification even on a partially paid record
		FeeEventSubmit:  FeeStatusPendingVerification,
		FeeEventApprove: statusByBalance,
		FeeEventReject:  FeeStatusUnpaid,
	},
	FeeStatusPaid: {
		// a settled record can still carry pending sibling claims; both
		// decisions resolve by balance so rejecting a stray claim never
		// unpays a record whose accepted payments already cover the total
		FeeEventSubmit:  FeeStatusPendingVerification,
		FeeEventApprove: statusByBalance,
		FeeEventReject:  statusByBalance,
	},
	FeeStatusPendingVerification: {
		FeeEventSubmit:  FeeStatusPendingVerification,
		FeeEventApprove: statusByBalance,
		FeeEventReject:  FeeStatusUnpaid,
	},
}

// NextStatus resolves the transition table for the given state and event.
// The boolean is false when the pair is not a valid transition.
func NextStatus(current FeeStatus, event FeeEvent, paid, total decimal.Decimal) (FeeStatus, bool) {
	targets, ok := feeTransitions[current]
	if !ok {
		return current, false
	}
	next, ok := targets[event]
	if !ok {
		return current, false
	}
	if next == statusByBalance {
		return StatusForBalance(paid, total), true
	}
	return next, true
}

// StatusForBalance derives the settled status from the paid fraction:
// paid iff paidAmount >= totalAmount, otherwise partially paid.
func StatusForBalance(paid, total decimal.Decimal) FeeStatus {
	if paid.GreaterThanOrEqual(total) {
		return FeeStatusPaid
	}
	return FeeStatusPartiallyPaid
}

// RiskLevel is the derived payment-risk classification. It is recomputed
// on read and never persisted as ground truth.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FeeRecord is the per-student hostel/mess ledger for one fee cycle
type FeeRecord struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	StudentID       string          `json:"student_id" db:"student_id"`
	Cycle           string          `json:"cycle" db:"cycle"`
	HostelRent      decimal.Decimal `json:"hostel_rent" db:"hostel_rent"`
	MessCharges     decimal.Decimal `json:"mess_charges" db:"mess_charges"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount" db:"paid_amount"`
	DueDate         time.Time       `json:"due_date" db:"due_date"`
	Status          FeeStatus       `json:"status" db:"status"`
	LastPenalizedAt *time.Time      `json:"last_penalized_at,omitempty" db:"last_penalized_at"`
	Version         int64           `json:"-" db:"version"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`

	// Transactions holds the visible (pending or accepted) entries in
	// insertion order; rejected entries are retained in storage for audit
	// but never surfaced here.
	Transactions []Transaction `json:"transactions" db:"-"`

	// PaymentRisk is attached on read for dashboards and exports.
	PaymentRisk RiskLevel `json:"payment_risk,omitempty" db:"-"`
}

// PaidPercent returns the paid fraction of the total as a percentage.
func (f *FeeRecord) PaidPercent() float64 {
	if f.TotalAmount.IsZero() {
		return 100
	}
	pct, _ := f.PaidAmount.Div(f.TotalAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// CreateFeeRecordRequest opens a ledger at enrollment / fee-cycle start
type CreateFeeRecordRequest struct {
	StudentID   string          `json:"student_id"`
	Cycle       string          `json:"cycle"`
	HostelRent  decimal.Decimal `json:"hostel_rent"`
	MessCharges decimal.Decimal `json:"mess_charges"`
	DueDate     time.Time       `json:"due_date"`
}

// RebateRequest reduces the outstanding balance and mess-charge component
type RebateRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PenaltyRunSummary reports the outcome of one scheduler tick
type PenaltyRunSummary struct {
	Cycle     string `json:"cycle"`
	Scanned   int    `json:"scanned"`
	Penalized int    `json:"penalized"`
	Failed    int    `json:"failed"`
}

// PenaltyAppliedEvent is published after an overdue surcharge commits
type PenaltyAppliedEvent struct {
	FeeID     uuid.UUID       `json:"fee_id"`
	StudentID string          `json:"student_id"`
	Amount    decimal.Decimal `json:"amount"`
	Cycle     string          `json:"cycle"`
	Timestamp time.Time       `json:"timestamp"`
}
