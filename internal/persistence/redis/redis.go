// Package redis persists each collection as one string key in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"doclib/internal/config"
	"doclib/internal/persistence"
)

// Gateway stores collections under <prefix>:<key> without expiry.
type Gateway struct {
	client *redis.Client
	prefix string
}

var _ persistence.Gateway = (*Gateway)(nil)

// New wraps an existing client.
func New(client *redis.Client, prefix string) *Gateway {
	return &Gateway{client: client, prefix: prefix}
}

// Open connects to Redis and checks the connection.
func Open(ctx context.Context, cfg config.RedisConfig, prefix string) (*Gateway, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, prefix), nil
}

func (g *Gateway) makeKey(key persistence.CollectionKey) string {
	if g.prefix != "" {
		return fmt.Sprintf("%s:%s", g.prefix, key)
	}
	return string(key)
}

// Load returns the stored payload or persistence.ErrNotFound.
func (g *Gateway) Load(ctx context.Context, key persistence.CollectionKey) ([]byte, error) {
	b, err := g.client.Get(ctx, g.makeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return b, nil
}

// Save overwrites the payload.
func (g *Gateway) Save(ctx context.Context, key persistence.CollectionKey, payload []byte) error {
	if err := g.client.Set(ctx, g.makeKey(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

// Close releases the client.
func (g *Gateway) Close() error {
	return g.client.Close()
}
