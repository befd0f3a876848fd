package fees

import (
	"context"

	"github.com/campushq/hostelfees/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campushq/hostelfees/services/fees FeeGW

// FeeGW holds the outbound collaborator calls of the fee ledger. All of
// them are invoked outside the ledger's critical section: attendance reads
// feed the risk evaluator, events notify downstream consumers after a
// mutation has committed.
type FeeGW interface {
	// GetAttendanceRate returns the student's attendance rate percentage
	// from the attendance service.
	GetAttendanceRate(ctx context.Context, studentID string) (float64, error)

	PublishPaymentSubmitted(ctx context.Context, event *models.PaymentSubmittedEvent) error
	PublishPaymentVerified(ctx context.Context, event *models.PaymentVerifiedEvent) error
	PublishPenaltyApplied(ctx context.Context, event *models.PenaltyAppliedEvent) error
}
