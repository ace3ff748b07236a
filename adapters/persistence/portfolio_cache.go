package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/portfolio"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

const portfolioCacheTTL = 12 * time.Hour

// PortfolioCache keeps the assembled public view in Redis so the public
// endpoint does not hit Postgres on every page load.
type PortfolioCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewPortfolioCache(rdb *redis.Client, log logger.Logger) *PortfolioCache {
	return &PortfolioCache{rdb: rdb, logger: log}
}

func portfolioCacheKey(ownerID uuid.UUID) string {
	return "portfolio:view:" + ownerID.String()
}

// Get returns (nil, nil) on a cache miss.
func (c *PortfolioCache) Get(ctx context.Context, ownerID uuid.UUID) (*portfolio.View, error) {
	raw, err := c.rdb.Get(ctx, portfolioCacheKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view portfolio.View
	if err := json.Unmarshal(raw, &view); err != nil {
		c.logger.Warn("Dropping unreadable cached portfolio view", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, nil
	}
	return &view, nil
}

func (c *PortfolioCache) Set(ctx context.Context, ownerID uuid.UUID, view *portfolio.View) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, portfolioCacheKey(ownerID), raw, portfolioCacheTTL).Err()
}

func (c *PortfolioCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	return c.rdb.Del(ctx, portfolioCacheKey(ownerID)).Err()
}
