package gateway

import (
	"net/http"
	"time"

	natspkg "github.com/campushq/hostelfees/internal/pkg/nats"
)

// FeeGW implements the fees.FeeGW interface: attendance lookups over HTTP
// and ledger events over NATS.
type FeeGW struct {
	natsClient    *natspkg.Client
	httpClient    *http.Client
	attendanceURL string
}

// NewFeeGW creates a new fee gateway
func NewFeeGW(natsClient *natspkg.Client, attendanceURL string) *FeeGW {
	return &FeeGW{
		natsClient:    natsClient,
		attendanceURL: attendanceURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}
