package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/hostelfees/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	riskKeyPrefix  = "fees:risk:"
	penaltyLockKey = "fees:penalty:lock"
)

// GetCachedRisk returns the cached risk level for a record, or empty on a
// cache miss. The cache is never authoritative.
func (r *FeeRepo) GetCachedRisk(ctx context.Context, feeID uuid.UUID) (models.RiskLevel, error) {
	val, err := r.redisClient.Get(ctx, riskKeyPrefix+feeID.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cached risk: %w", err)
	}
	return models.RiskLevel(val), nil
}

// CacheRisk stores the derived risk level with a TTL.
func (r *FeeRepo) CacheRisk(ctx context.Context, feeID uuid.UUID, level models.RiskLevel, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, riskKeyPrefix+feeID.String(), string(level), ttl); err != nil {
		return fmt.Errorf("failed to cache risk: %w", err)
	}
	return nil
}

// AcquirePenaltyLock takes the penalty-run single-flight lock. Returns
// false when another run still holds it. The TTL bounds how long a crashed
// run can block the next tick.
func (r *FeeRepo) AcquirePenaltyLock(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, penaltyLockKey, time.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire penalty lock: %w", err)
	}
	return ok, nil
}

// ReleasePenaltyLock releases the penalty-run lock.
func (r *FeeRepo) ReleasePenaltyLock(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, penaltyLockKey); err != nil {
		return fmt.Errorf("failed to release penalty lock: %w", err)
	}
	return nil
}
