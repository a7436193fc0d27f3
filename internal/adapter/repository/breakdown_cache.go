package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
)

const breakdownKeyPrefix = "reputation:breakdown:"

// breakdownCache stores reputation breakdowns as JSON in Redis
type breakdownCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewBreakdownCache creates a Redis backed breakdown cache
func NewBreakdownCache(client *redis.Client, logger *zap.Logger) domainRepo.BreakdownCache {
	return &breakdownCache{
		client: client,
		logger: logger,
	}
}

func breakdownKey(userID uuid.UUID) string {
	return breakdownKeyPrefix + userID.String()
}

// Get returns nil, nil on a miss
func (c *breakdownCache) Get(ctx context.Context, userID uuid.UUID) (*entity.ReputationBreakdown, error) {
	raw, err := c.client.Get(ctx, breakdownKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached breakdown: %w", err)
	}

	var breakdown entity.ReputationBreakdown
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		c.logger.Warn("Dropping undecodable cached breakdown",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		_ = c.client.Del(ctx, breakdownKey(userID)).Err()
		return nil, nil
	}
	return &breakdown, nil
}

func (c *breakdownCache) Set(ctx context.Context, breakdown *entity.ReputationBreakdown, ttl time.Duration) error {
	raw, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}
	if err := c.client.Set(ctx, breakdownKey(breakdown.UserID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache breakdown: %w", err)
	}
	return nil
}

func (c *breakdownCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, breakdownKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate breakdown: %w", err)
	}
	return nil
}
