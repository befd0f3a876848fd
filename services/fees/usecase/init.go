package usecase

import (
	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/campushq/hostelfees/services/fees"
	"github.com/shopspring/decimal"
)

type FeeUC struct {
	repo    fees.FeeRepo
	gw      fees.FeeGW
	cfg     *models.Config
	penalty decimal.Decimal
}

// NewFeeUC creates a new fee ledger usecase instance
func NewFeeUC(
	repo fees.FeeRepo,
	gw fees.FeeGW,
	cfg *models.Config,
) *FeeUC {
	penalty, err := decimal.NewFromString(cfg.Fees.PenaltyAmount)
	if err != nil || penalty.IsNegative() {
		logger.Warn("Invalid penalty amount configured, using default",
			logger.String("configured", cfg.Fees.PenaltyAmount),
		)
		penalty = decimal.NewFromInt(500)
	}

	return &FeeUC{
		repo:    repo,
		gw:      gw,
		cfg:     cfg,
		penalty: penalty,
	}
}
