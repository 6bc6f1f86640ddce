// Package store owns the canonical document, folder, tag and activity
// collections. Every mutation runs under one lock, persists the collections it
// touched through the gateway, and appends an audit entry where applicable.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/persistence"
	"doclib/internal/seed"
)

// DefaultActivityLimit is how many activity entries the store retains.
const DefaultActivityLimit = 100

// Store is the stateful core of the library. It is safe for concurrent use;
// mutations are serialized so cascades never interleave.
type Store struct {
	mu sync.RWMutex

	gateway persistence.Gateway
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time
	newID   func(prefix string) string
	seed    func() model.Collections
	actor   string
	limit   int

	documents []model.Document
	folders   []model.Folder
	tags      []model.Tag
	activity  []model.ActivityLogEntry
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence and load diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation. The prefix names the record kind.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithActor sets the user recorded as creator and activity actor.
func WithActor(userID string) Option {
	return func(s *Store) { s.actor = userID }
}

// WithActivityLimit caps the retained activity log.
func WithActivityLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithSeed sets the dataset used for absent or unreadable collections and by Reset.
func WithSeed(fn func() model.Collections) Option {
	return func(s *Store) { s.seed = fn }
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates a store with empty collections. Use Open to seed it from the gateway.
func New(gateway persistence.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		logger:  zap.NewNop(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func(prefix string) string { return prefix + "-" + uuid.NewString() },
		seed:    seed.Dataset,
		actor:   seed.CurrentUserID,
		limit:   DefaultActivityLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// Open creates a store and loads its collections from the gateway.
func Open(ctx context.Context, gateway persistence.Gateway, opts ...Option) (*Store, error) {
	if gateway == nil {
		return nil, errors.New("store: gateway is required")
	}
	s := New(gateway, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with what the gateway holds. A missing
// collection is taken from the seed dataset. An unreadable one makes the
// whole state fall back to the seed. Only context cancellation is returned
// as an error.
func (s *Store) Load(ctx context.Context) error {
	ds := s.seed()

	var loaded model.Collections
	var failed error
	for _, key := range persistence.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, err := s.gateway.Load(ctx, key)
		if errors.Is(err, persistence.ErrNotFound) {
			s.logger.Info("collection absent, using seed", zap.String("collection", string(key)))
			seedInto(&loaded, ds, key)
			continue
		}
		if err == nil {
			err = decodeInto(&loaded, key, payload)
		}
		if err != nil {
			failed = err
			s.logger.Warn("collection unreadable, falling back to seed dataset",
				zap.String("collection", string(key)),
				zap.Error(err),
			)
			break
		}
	}
	if failed != nil {
		loaded = ds
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = loaded.Documents
	s.folders = loaded.Folders
	s.tags = loaded.Tags
	s.activity = loaded.Activity
	s.trimActivity()

	s.logger.Info("library loaded",
		zap.Int("documents", len(s.documents)),
		zap.Int("folders", len(s.folders)),
		zap.Int("tags", len(s.tags)),
		zap.Int("activity", len(s.activity)),
	)
	return nil
}

func seedInto(c *model.Collections, ds model.Collections, key persistence.CollectionKey) {
	switch key {
	case persistence.Documents:
		c.Documents = ds.Documents
	case persistence.Folders:
		c.Folders = ds.Folders
	case persistence.Tags:
		c.Tags = ds.Tags
	case persistence.Activity:
		c.Activity = ds.Activity
	}
}

func decodeInto(c *model.Collections, key persistence.CollectionKey, payload []byte) error {
	var err error
	switch key {
	case persistence.Documents:
		c.Documents, err = persistence.Decode[model.Document](payload)
	case persistence.Folders:
		c.Folders, err = persistence.Decode[model.Folder](payload)
	case persistence.Tags:
		c.Tags, err = persistence.Decode[model.Tag](payload)
	case persistence.Activity:
		c.Activity, err = persistence.Decode[model.ActivityLogEntry](payload)
	}
	return err
}

// Reset restores the seed dataset and persists every collection.
func (s *Store) Reset(ctx context.Context) {
	ds := s.seed()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = ds.Documents
	s.folders = ds.Folders
	s.tags = ds.Tags
	s.activity = ds.Activity
	s.trimActivity()
	s.metrics.mutations.WithLabelValues("reset").Inc()
	s.persist(ctx, persistence.Keys()...)
}

// persist writes the named collections. Failures are logged and counted but
// never undo the in-memory mutation. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, keys ...persistence.CollectionKey) {
	for _, key := range keys {
		var payload []byte
		var err error
		switch key {
		case persistence.Documents:
			payload, err = persistence.Encode(s.documents)
		case persistence.Folders:
			payload, err = persistence.Encode(s.folders)
		case persistence.Tags:
			payload, err = persistence.Encode(s.tags)
		case persistence.Activity:
			payload, err = persistence.Encode(s.activity)
		}
		if err == nil {
			err = s.gateway.Save(ctx, key, payload)
		}
		if err != nil {
			err = &domain.PersistenceWriteError{Collection: string(key), Err: err}
			s.metrics.persistFailures.WithLabelValues(string(key)).Inc()
			s.logger.Error("persist collection failed",
				zap.String("collection", string(key)),
				zap.Error(err),
			)
		}
	}
}

// stamp returns the current time, never earlier than floor.
func (s *Store) stamp(floor time.Time) time.Time {
	now := s.now()
	if now.Before(floor) {
		return floor
	}
	return now
}

// Snapshot returns a deep copy of every collection.
func (s *Store) Snapshot() model.Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Collections{
		Documents: s.documents,
		Folders:   s.folders,
		Tags:      s.tags,
		Activity:  s.activity,
	}.Clone()
}

// Documents returns a copy of the document collection.
func (s *Store) Documents() []model.Document {
	return s.Snapshot().Documents
}

// Folders returns a copy of the folder collection.
func (s *Store) Folders() []model.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.folders)
}

// Tags returns a copy of the tag collection.
func (s *Store) Tags() []model.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tags)
}

// Activity returns a copy of the activity log, most recent first.
func (s *Store) Activity() []model.ActivityLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.activity)
}

// Document returns a copy of the document with id.
func (s *Store) Document(id string) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.documentIndex(id)
	if i < 0 {
		return model.Document{}, false
	}
	return s.documents[i].Clone(), true
}

// Folder returns the folder with id.
func (s *Store) Folder(id string) (model.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.folderIndex(id)
	if i < 0 {
		return model.Folder{}, false
	}
	return s.folders[i], true
}

// Actor is the user recorded on created records and activity entries.
func (s *Store) Actor() string {
	return s.actor
}

// Ping checks the gateway when it supports it.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.gateway.(persistence.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Store) documentIndex(id string) int {
	return slices.IndexFunc(s.documents, func(d model.Document) bool { return d.ID == id })
}

func (s *Store) folderIndex(id string) int {
	return slices.IndexFunc(s.folders, func(f model.Folder) bool { return f.ID == id })
}

func (s *Store) tagIndex(id string) int {
	return slices.IndexFunc(s.tags, func(t model.Tag) bool { return t.ID == id })
}
