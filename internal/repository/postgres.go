package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresStore keeps each user list as one JSONB document in a key-value
// table, keyed "<kind>:<user>".
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (r *PostgresStore) MigrateUp(ctx context.Context) error {
	return r.migrate(ctx, "migrations/kv_store.up.sql")
}

func (r *PostgresStore) MigrateDown(ctx context.Context) error {
	return r.migrate(ctx, "migrations/kv_store.down.sql")
}

func (r *PostgresStore) migrate(ctx context.Context, name string) error {
	sql, err := migrations.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := r.pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ListItems returns the user's list, empty when it was never written.
func (r *PostgresStore) ListItems(ctx context.Context, userID string, kind domain.ListKind) ([]domain.Item, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, kind.Key(userID),
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Item{}, nil
		}
		return nil, fmt.Errorf("query %s list for user %s: %w", kind, userID, err)
	}

	items, err := decodeItems(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s list for user %s: %w", kind, userID, err)
	}
	return items, nil
}

// AddItem appends item unless the list already holds its id.
func (r *PostgresStore) AddItem(ctx context.Context, userID string, kind domain.ListKind, item domain.Item) (bool, error) {
	var added bool
	err := r.update(ctx, kind.Key(userID), func(items []domain.Item) []domain.Item {
		items, added = appendUnique(items, item)
		return items
	})
	if err != nil {
		return false, fmt.Errorf("add to %s list for user %s: %w", kind, userID, err)
	}
	return added, nil
}

// RemoveItem drops itemID from the list. Removing a missing id is a no-op.
func (r *PostgresStore) RemoveItem(ctx context.Context, userID string, kind domain.ListKind, itemID int64) (bool, error) {
	var removed bool
	err := r.update(ctx, kind.Key(userID), func(items []domain.Item) []domain.Item {
		items, removed = removeByID(items, itemID)
		return items
	})
	if err != nil {
		return false, fmt.Errorf("remove from %s list for user %s: %w", kind, userID, err)
	}
	return removed, nil
}

// update rewrites one list under a row lock.
func (r *PostgresStore) update(ctx context.Context, key string, fn func([]domain.Item) []domain.Item) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO kv_store (key) VALUES ($1) ON CONFLICT (key) DO NOTHING`, key,
		); err != nil {
			return fmt.Errorf("ensure row: %w", err)
		}

		var raw []byte
		if err := tx.QueryRow(ctx,
			`SELECT value FROM kv_store WHERE key = $1 FOR UPDATE`, key,
		).Scan(&raw); err != nil {
			return fmt.Errorf("lock row: %w", err)
		}

		items, err := decodeItems(raw)
		if err != nil {
			return fmt.Errorf("decode list: %w", err)
		}

		encoded, err := json.Marshal(fn(items))
		if err != nil {
			return fmt.Errorf("encode list: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE kv_store SET value = $2::jsonb, updated_at = now() WHERE key = $1`,
			key, string(encoded),
		); err != nil {
			return fmt.Errorf("write list: %w", err)
		}
		return nil
	})
}

// ReplaceItems overwrites a whole list. Used by seeding.
func (r *PostgresStore) ReplaceItems(ctx context.Context, userID string, kind domain.ListKind, items []domain.Item) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2::jsonb)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		kind.Key(userID), string(encoded),
	)
	if err != nil {
		return fmt.Errorf("replace %s list for user %s: %w", kind, userID, err)
	}
	return nil
}
