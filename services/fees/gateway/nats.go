package gateway

import (
	"context"
	"encoding/json"

	"github.com/campushq/hostelfees/internal/pkg/models"
)

// NATS subjects for ledger events consumed by notification, document and
// dashboard collaborators.
const (
	SubjectPaymentSubmitted = "fees.payment.submitted"
	SubjectPaymentVerified  = "fees.payment.verified"
	SubjectPenaltyApplied   = "fees.penalty.applied"
)

// PublishPaymentSubmitted publishes a payment submitted event to NATS
func (g *FeeGW) PublishPaymentSubmitted(ctx context.Context, event *models.PaymentSubmittedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(SubjectPaymentSubmitted, data)
}

// PublishPaymentVerified publishes a payment verified event to NATS
func (g *FeeGW) PublishPaymentVerified(ctx context.Context, event *models.PaymentVerifiedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(SubjectPaymentVerified, data)
}

// PublishPenaltyApplied publishes a penalty applied event to NATS
func (g *FeeGW) PublishPenaltyApplied(ctx context.Context, event *models.PenaltyAppliedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(SubjectPenaltyApplied, data)
}
