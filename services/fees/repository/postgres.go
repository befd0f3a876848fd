package repository

import (
	"github.com/campushq/hostelfees/internal/pkg/database"
	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// FeeRepo implements the fees.FeeRepo interface on PostgreSQL with a Redis
// side-cache for derived risk and the penalty-run lock.
type FeeRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFeeRepo creates a new fee repository instance
func NewFeeRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FeeRepo {
	return &FeeRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
