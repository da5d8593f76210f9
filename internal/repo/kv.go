package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/golf-trips/internal/kv"
)

type pgKVStore struct {
	db db
}

// NewKVStore returns a kv.Store backed by the kv_entries table.
func NewKVStore(db db) kv.Store {
	return &pgKVStore{db: db}
}

func (r *pgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = @key`,
		pgx.NamedArgs{"key": key}).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("repo.KVStore.Get: %w", err)
	}
	return v, true, nil
}

func (r *pgKVStore) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_entries (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("repo.KVStore.Set: %w", err)
	}
	return nil
}

// Remove never reports ErrNotFound: deleting an absent key is a no-op.
func (r *pgKVStore) Remove(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM kv_entries WHERE key = @key`, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("repo.KVStore.Remove: %w", err)
	}
	return nil
}
