// Package persistence defines the durable key/value contract the store reads
// from at startup and writes to after each mutation. Backends live in subpackages.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// CollectionKey names one of the four persisted collections.
type CollectionKey string

const (
	Documents CollectionKey = "documents"
	Folders   CollectionKey = "folders"
	Tags      CollectionKey = "tags"
	Activity  CollectionKey = "activity"
)

// Keys returns every collection key in load order.
func Keys() []CollectionKey {
	return []CollectionKey{Documents, Folders, Tags, Activity}
}

// ErrNotFound is returned by Load when nothing was saved under the key.
var ErrNotFound = errors.New("collection not found")

// Gateway is a durable blob store addressed by collection key.
type Gateway interface {
	// Load returns the payload last saved under key, or ErrNotFound.
	Load(ctx context.Context, key CollectionKey) ([]byte, error)
	// Save replaces the payload stored under key.
	Save(ctx context.Context, key CollectionKey, payload []byte) error
}

// Pinger is implemented by gateways backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Encode serializes a collection. time.Time fields are written as RFC 3339
// strings with nanoseconds, which sort lexically in UTC.
func Encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return b, nil
}

// Decode parses a collection saved by Encode. Timestamp fields only accept
// RFC 3339 strings, so a payload with malformed dates is rejected as a whole.
func Decode[T any](payload []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if items == nil {
		return nil, errors.New("decode collection: payload is null")
	}
	return items, nil
}
