package store

import (
	"context"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/persistence"
)

// TagDraft holds the fields of a new tag. An empty color gets the default.
type TagDraft struct {
	Name  string
	Color string
}

func (d TagDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&d.Color, validation.Required, validation.Match(colorPattern)),
	)
}

// CreateTag adds a tag.
func (s *Store) CreateTag(ctx context.Context, draft TagDraft) (model.Tag, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Color == "" {
		draft.Color = defaultTagColor
	}
	if err := draft.Validate(); err != nil {
		return model.Tag{}, domain.NewValidationError("invalid tag", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Tag{ID: s.newID("tag"), Name: draft.Name, Color: draft.Color}
	s.tags = append(s.tags, t)

	s.metrics.mutations.WithLabelValues("create_tag").Inc()
	s.persist(ctx, persistence.Tags)
	return t, nil
}

// DeleteTag removes the tag and strips it from every document in the same
// step, so no document keeps a dangling tag id. Documents keep their version
// and modification time. It reports whether the tag existed.
func (s *Store) DeleteTag(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tagIndex(id)
	if i < 0 {
		return false
	}
	s.tags = slices.Delete(slices.Clone(s.tags), i, i+1)

	for j := range s.documents {
		if !s.documents[j].HasTag(id) {
			continue
		}
		d := s.documents[j].Clone()
		d.TagIDs = slices.DeleteFunc(d.TagIDs, func(t string) bool { return t == id })
		s.documents[j] = d
	}

	s.metrics.mutations.WithLabelValues("delete_tag").Inc()
	s.persist(ctx, persistence.Tags, persistence.Documents)
	return true
}
