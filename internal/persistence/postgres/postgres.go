// Package postgres persists collections as JSONB rows of a key/value table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"doclib/internal/persistence"
)

// Gateway is a PostgreSQL implementation of persistence.Gateway.
// It uses database/sql with parameterized queries.
type Gateway struct {
	db     *sql.DB
	prefix string
	now    func() time.Time
}

var _ persistence.Gateway = (*Gateway)(nil)

// New creates a gateway over db. prefix namespaces the row keys.
func New(db *sql.DB, prefix string) *Gateway {
	return &Gateway{db: db, prefix: prefix, now: func() time.Time { return time.Now().UTC() }}
}

func (g *Gateway) rowKey(key persistence.CollectionKey) string {
	if g.prefix == "" {
		return string(key)
	}
	return g.prefix + ":" + string(key)
}

// Load fetches a collection payload.
func (g *Gateway) Load(ctx context.Context, key persistence.CollectionKey) ([]byte, error) {
	const q = `SELECT payload FROM collections WHERE key = $1`
	var payload []byte
	if err := g.db.QueryRowContext(ctx, q, g.rowKey(key)).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, nil
}

// Save upserts a collection payload.
func (g *Gateway) Save(ctx context.Context, key persistence.CollectionKey, payload []byte) error {
	const q = `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	if _, err := g.db.ExecContext(ctx, q, g.rowKey(key), string(payload), g.now()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Ping checks database connectivity.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}
