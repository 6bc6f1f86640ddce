package store

import (
	"context"

	"doclib/internal/model"
	"doclib/internal/persistence"
)

// ActivityDraft is the caller-supplied part of an activity entry.
type ActivityDraft struct {
	Kind        model.ActivityKind
	DocumentID  string
	FolderID    string
	Description string
}

// AppendActivity records an entry with a fresh id, the acting user and the
// current time, most recent first, and drops entries beyond the limit.
func (s *Store) AppendActivity(ctx context.Context, draft ActivityDraft) model.ActivityLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.appendActivity(draft)
	s.persist(ctx, persistence.Activity)
	return entry
}

// appendActivity prepends without persisting. Callers must hold s.mu.
func (s *Store) appendActivity(draft ActivityDraft) model.ActivityLogEntry {
	entry := model.ActivityLogEntry{
		ID:          s.newID("log"),
		Kind:        draft.Kind,
		DocumentID:  draft.DocumentID,
		FolderID:    draft.FolderID,
		UserID:      s.actor,
		Timestamp:   s.now(),
		Description: draft.Description,
	}

	log := make([]model.ActivityLogEntry, 0, len(s.activity)+1)
	log = append(log, entry)
	log = append(log, s.activity...)
	s.activity = log
	s.trimActivity()
	return entry
}

func (s *Store) trimActivity() {
	if len(s.activity) > s.limit {
		s.activity = s.activity[:s.limit:s.limit]
	}
}
