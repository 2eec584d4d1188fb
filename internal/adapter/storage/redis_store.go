package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/stock-cache/internal/core/domain"
)

const stockKeyPrefix = "stock:"

// RedisStore is an alternative StockStore for deployments that already
// run Redis with AOF persistence. Keys are stock:<product_id>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Init(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Get(ctx context.Context, productID string) (int64, bool, error) {
	val, err := r.client.Get(ctx, stockKeyPrefix+productID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get stock: %w", err)
	}
	return val, true, nil
}

func (r *RedisStore) Put(ctx context.Context, productID string, stock int64) error {
	return r.client.Set(ctx, stockKeyPrefix+productID, stock, 0).Err()
}

func (r *RedisStore) ListAll(ctx context.Context) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, stockKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan stock keys: %w", err)
		}

		if len(keys) > 0 {
			vals, err := r.client.MGet(ctx, keys...).Result()
			if err != nil {
				return nil, fmt.Errorf("mget stock values: %w", err)
			}
			for i, v := range vals {
				raw, ok := v.(string)
				if !ok {
					continue // key deleted between SCAN and MGET
				}
				stock, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("parse stock for %s: %w", keys[i], err)
				}
				entries = append(entries, domain.StockEntry{
					ProductID: keys[i][len(stockKeyPrefix):],
					Stock:     stock,
				})
			}
		}

		cursor = next
		if cursor == 0 {
			return entries, nil
		}
	}
}
