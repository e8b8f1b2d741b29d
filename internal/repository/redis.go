package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// RedisStore keeps each user list as a JSON string under "<kind>:<user>".
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ListItems returns the user's list, empty when the key does not exist.
func (c *RedisStore) ListItems(ctx context.Context, userID string, kind domain.ListKind) ([]domain.Item, error) {
	key := kind.Key(userID)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list %s: %w", key, err)
	}

	items, err := decodeItems(val)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal list %s: %w", key, err)
	}
	return items, nil
}

func (c *RedisStore) AddItem(ctx context.Context, userID string, kind domain.ListKind, item domain.Item) (bool, error) {
	var added bool
	err := c.update(ctx, kind.Key(userID), func(items []domain.Item) []domain.Item {
		items, added = appendUnique(items, item)
		return items
	})
	return added, err
}

func (c *RedisStore) RemoveItem(ctx context.Context, userID string, kind domain.ListKind, itemID int64) (bool, error) {
	var removed bool
	err := c.update(ctx, kind.Key(userID), func(items []domain.Item) []domain.Item {
		items, removed = removeByID(items, itemID)
		return items
	})
	return removed, err
}

// update is an optimistic read-modify-write: WATCH the key, rewrite it in
// MULTI, retry when another writer got there first.
func (c *RedisStore) update(ctx context.Context, key string, fn func([]domain.Item) []domain.Item) error {
	txf := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		items, err := decodeItems(val)
		if err != nil {
			return fmt.Errorf("failed to unmarshal list %s: %w", key, err)
		}

		encoded, err := json.Marshal(fn(items))
		if err != nil {
			return fmt.Errorf("failed to marshal list %s: %w", key, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := c.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to update list %s: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("failed to update list %s: too much contention", key)
}

// ReplaceItems overwrites a whole list. Used by seeding.
func (c *RedisStore) ReplaceItems(ctx context.Context, userID string, kind domain.ListKind, items []domain.Item) error {
	key := kind.Key(userID)
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal list %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, encoded, 0).Err(); err != nil {
		return fmt.Errorf("failed to set list %s: %w", key, err)
	}
	return nil
}

func (c *RedisStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
