package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/hostelfees/internal/pkg/database"
	"github.com/campushq/hostelfees/internal/pkg/models"
)

// setupCacheRepoTest creates a repo backed by a miniredis server
func setupCacheRepoTest(t *testing.T) (*FeeRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo := &FeeRepo{
		redisClient: database.NewRedisClientFrom(client),
		cfg:         &models.Config{},
	}

	return repo, mr
}

func TestCacheRisk_RoundTrip(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	feeID := uuid.New()

	// Execute
	err := repo.CacheRisk(ctx, feeID, models.RiskHigh, 15*time.Minute)
	require.NoError(t, err)

	level, err := repo.GetCachedRisk(ctx, feeID)

	// Verify
	assert.NoError(t, err)
	assert.Equal(t, models.RiskHigh, level)
}

func TestGetCachedRisk_MissIsNotAnError(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	// Execute
	level, err := repo.GetCachedRisk(context.Background(), uuid.New())

	// Verify
	assert.NoError(t, err)
	assert.Equal(t, models.RiskLevel(""), level)
}

func TestGetCachedRisk_ExpiresWithTTL(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	feeID := uuid.New()

	err := repo.CacheRisk(ctx, feeID, models.RiskLow, time.Minute)
	require.NoError(t, err)

	// Execute: advance past the TTL
	mr.FastForward(2 * time.Minute)

	level, err := repo.GetCachedRisk(ctx, feeID)

	// Verify
	assert.NoError(t, err)
	assert.Equal(t, models.RiskLevel(""), level)
}

func TestAcquirePenaltyLock_SingleFlight(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	// Execute
	first, err := repo.AcquirePenaltyLock(ctx, 10*time.Minute)
	require.NoError(t, err)

	second, err := repo.AcquirePenaltyLock(ctx, 10*time.Minute)
	require.NoError(t, err)

	// Verify: only the first caller holds the lock
	assert.True(t, first)
	assert.False(t, second)
}

func TestReleasePenaltyLock_AllowsNextRun(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	acquired, err := repo.AcquirePenaltyLock(ctx, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// Execute
	err = repo.ReleasePenaltyLock(ctx)
	require.NoError(t, err)

	reacquired, err := repo.AcquirePenaltyLock(ctx, 10*time.Minute)

	// Verify
	assert.NoError(t, err)
	assert.True(t, reacquired)
}

func TestAcquirePenaltyLock_TTLBoundsCrashedRun(t *testing.T) {
	// Setup
	repo, mr := setupCacheRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	acquired, err := repo.AcquirePenaltyLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// Execute: a crashed run never releases; the TTL expires the lock
	mr.FastForward(2 * time.Minute)

	reacquired, err := repo.AcquirePenaltyLock(ctx, time.Minute)

	// Verify
	assert.NoError(t, err)
	assert.True(t, reacquired)
}
