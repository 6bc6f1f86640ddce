package memory

import (
	"context"
	"sync"

	"doclib/internal/persistence"
)

// Gateway keeps collections in process memory. It is safe for concurrent use.
type Gateway struct {
	mu    sync.RWMutex
	blobs map[persistence.CollectionKey][]byte
}

// New creates an empty in-memory gateway.
func New() *Gateway {
	return &Gateway{blobs: make(map[persistence.CollectionKey][]byte)}
}

var _ persistence.Gateway = (*Gateway)(nil)

// Load returns a copy of the stored payload or persistence.ErrNotFound.
func (g *Gateway) Load(ctx context.Context, key persistence.CollectionKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	b, ok := g.blobs[key]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

// Save stores a copy of payload under key.
func (g *Gateway) Save(ctx context.Context, key persistence.CollectionKey, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blobs[key] = append([]byte(nil), payload...)
	return nil
}

// Ping always succeeds.
func (g *Gateway) Ping(ctx context.Context) error {
	return ctx.Err()
}
