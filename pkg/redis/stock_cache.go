package redis

import (
	"context"
	"errors"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// StockCache mirrors product counts in Redis so the stock read endpoint
// does not hit the database. The database row stays the source of
// truth; the cache is rewritten after every ledger commit.
type StockCache struct {
	rdb *rd.Client
	ttl time.Duration
}

func NewStockCache(rdb *rd.Client, ttl time.Duration) *StockCache {
	return &StockCache{rdb: rdb, ttl: ttl}
}

// Refresh overwrites the cached count for one product.
func (c *StockCache) Refresh(ctx context.Context, productID string, count int64) error {
	return c.rdb.Set(ctx, StockKey(productID), count, c.ttl).Err()
}

// Get returns the cached count. found=false means the key is cold and
// the caller should fall back to the database.
func (c *StockCache) Get(ctx context.Context, productID string) (int64, bool, error) {
	val, err := c.rdb.Get(ctx, StockKey(productID)).Int64()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}
