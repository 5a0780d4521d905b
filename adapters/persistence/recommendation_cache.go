package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartshop/api/internal/application/service"
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/pkg/logger"
)

type redisRecommendationCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisRecommendationCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.RecommendationCache {
	return &redisRecommendationCache{rdb: rdb, ttl: ttl, logger: log}
}

func recommendationKey(userID string, limit int) string {
	return fmt.Sprintf("rec:%s:%d", userID, limit)
}

func (c *redisRecommendationCache) Get(ctx context.Context, userID string, limit int) ([]product.Product, bool) {
	raw, err := c.rdb.Get(ctx, recommendationKey(userID, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Recommendation cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
		return nil, false
	}

	var items []product.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("Recommendation cache entry corrupt, dropping", zap.String("user_id", userID), zap.Error(err))
		c.rdb.Del(ctx, recommendationKey(userID, limit))
		return nil, false
	}
	return items, true
}

func (c *redisRecommendationCache) Set(ctx context.Context, userID string, limit int, items []product.Product) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("Failed to marshal recommendations for cache", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, recommendationKey(userID, limit), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Recommendation cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// Invalidate drops every cached list for the user, whatever limit it was
// requested with.
func (c *redisRecommendationCache) Invalidate(ctx context.Context, userID string) {
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("rec:%s:*", userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("Recommendation cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Recommendation cache scan failed", zap.String("user_id", userID), zap.Error(err))
	}
}
