package fees

import "errors"

// Domain errors returned synchronously to callers. Scheduler-internal
// per-record failures are logged and absorbed, never surfaced here.
var (
	// ErrFeeNotFound means no fee record exists for the student or fee id.
	ErrFeeNotFound = errors.New("fee record not found")
	// ErrReceiptNotFound means no matching transaction exists for the
	// receipt id, or the transaction is no longer pending verification.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrDuplicateFeeRecord means the student already has a ledger for the
	// active cycle.
	ErrDuplicateFeeRecord = errors.New("fee record already exists for student and cycle")
	// ErrValidation covers malformed amounts and missing required fields;
	// rejected before any mutation.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means the record changed underneath the caller (version
	// check failed). The operation has not partially applied and is safe
	// to retry.
	ErrConflict = errors.New("concurrent modification conflict")
	// ErrInvalidTransition means the requested event is not allowed from
	// the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)
