package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/hostelfees/internal/pkg/models"
	natspkg "github.com/campushq/hostelfees/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestPublishPaymentSubmitted_Success(t *testing.T) {
	// Create NATS client
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	event := &models.PaymentSubmittedEvent{
		FeeID:     uuid.New(),
		StudentID: "student-001",
		ReceiptID: "rcpt-1",
		Amount:    decimal.NewFromInt(4000),
		Timestamp: time.Now().UTC(),
	}

	// Channel to receive the message
	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(SubjectPaymentSubmitted, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	// Create gateway and publish message
	feeGW := NewFeeGW(nc, "http://localhost:8080")
	err = feeGW.PublishPaymentSubmitted(context.Background(), event)
	require.NoError(t, err)

	// Wait for the message and verify contents
	select {
	case msg := <-msgCh:
		var received models.PaymentSubmittedEvent
		err = json.Unmarshal(msg.Data, &received)
		require.NoError(t, err)

		assert.Equal(t, event.FeeID, received.FeeID)
		assert.Equal(t, event.StudentID, received.StudentID)
		assert.Equal(t, event.ReceiptID, received.ReceiptID)
		assert.True(t, event.Amount.Equal(received.Amount))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishPaymentVerified_Success(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	event := &models.PaymentVerifiedEvent{
		FeeID:      uuid.New(),
		StudentID:  "student-002",
		ReceiptID:  "rcpt-2",
		Action:     models.VerifyActionApprove,
		Status:     models.FeeStatusPaid,
		PaidAmount: decimal.NewFromInt(10000),
		Timestamp:  time.Now().UTC(),
	}

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(SubjectPaymentVerified, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	feeGW := NewFeeGW(nc, "http://localhost:8080")
	err = feeGW.PublishPaymentVerified(context.Background(), event)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var received models.PaymentVerifiedEvent
		err = json.Unmarshal(msg.Data, &received)
		require.NoError(t, err)

		assert.Equal(t, event.FeeID, received.FeeID)
		assert.Equal(t, models.VerifyActionApprove, received.Action)
		assert.Equal(t, models.FeeStatusPaid, received.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishPenaltyApplied_Success(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	event := &models.PenaltyAppliedEvent{
		FeeID:     uuid.New(),
		StudentID: "student-003",
		Amount:    decimal.NewFromInt(500),
		Cycle:     "2026-08-30",
		Timestamp: time.Now().UTC(),
	}

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(SubjectPenaltyApplied, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	feeGW := NewFeeGW(nc, "http://localhost:8080")
	err = feeGW.PublishPenaltyApplied(context.Background(), event)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var received models.PenaltyAppliedEvent
		err = json.Unmarshal(msg.Data, &received)
		require.NoError(t, err)

		assert.Equal(t, event.FeeID, received.FeeID)
		assert.Equal(t, "2026-08-30", received.Cycle)
		assert.True(t, event.Amount.Equal(received.Amount))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}
