package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KVRepo stores opaque values by key in the kv table.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return value, nil
}

// Put overwrites the value of key in a single transaction.
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, key, value, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("kv put: %w", err)
		}
		return nil
	})
}
