// Package objectstore persists collections as JSON objects in an
// S3-compatible bucket, one object per collection.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"doclib/internal/persistence"
	"doclib/internal/storage"
)

const contentType = "application/json"

// Gateway stores each collection under collections/<prefix>/<key>.json.
type Gateway struct {
	store  storage.Storage
	prefix string
}

var _ persistence.Gateway = (*Gateway)(nil)

// New creates a gateway over store. prefix namespaces the object keys.
func New(store storage.Storage, prefix string) *Gateway {
	return &Gateway{store: store, prefix: prefix}
}

// ObjectKey returns the object key for a collection.
func (g *Gateway) ObjectKey(key persistence.CollectionKey) string {
	return path.Join("collections", g.prefix, string(key)+".json")
}

// Load reads the collection object. A missing object is persistence.ErrNotFound.
func (g *Gateway) Load(ctx context.Context, key persistence.CollectionKey) ([]byte, error) {
	rc, _, err := g.store.Get(ctx, g.ObjectKey(key))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

// Save overwrites the collection object.
func (g *Gateway) Save(ctx context.Context, key persistence.CollectionKey, payload []byte) error {
	_, err := g.store.Put(ctx, g.ObjectKey(key), bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: contentType,
		Metadata:    map[string]string{"collection": string(key)},
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Ping checks the bucket.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}
