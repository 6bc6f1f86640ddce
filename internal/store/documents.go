package store

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/persistence"
)

// DocumentDraft holds the fields of a new document. Content is nil when the
// upload could not be encoded; the document is still created.
type DocumentDraft struct {
	Name        string
	Type        model.DocumentType
	Size        int64
	Folder      model.FolderRef
	TagIDs      []string
	Description string
	Content     *string
}

func (d DocumentDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&d.Type, validation.Required, validation.In(documentTypeValues()...)),
		validation.Field(&d.Size, validation.Min(int64(0))),
		validation.Field(&d.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// DocumentPatch lists the fields to change. Nil pointers and nil slices are
// left untouched; an empty non-nil slice clears the list.
type DocumentPatch struct {
	Name        *string
	Type        *model.DocumentType
	Size        *int64
	Folder      *model.FolderRef
	TagIDs      []string
	Description *string
	Content     *string
	SharedWith  []model.SharingGrant
	IsFavorite  *bool
}

func (p DocumentPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&p.Type, validation.NilOrNotEmpty, validation.In(documentTypeValues()...)),
		validation.Field(&p.Size, validation.Min(int64(0))),
		validation.Field(&p.Description, validation.Length(0, MaxDescriptionLength)),
		validation.Field(&p.SharedWith, validation.Each(validation.By(validGrant))),
	)
}

// CreateDocument inserts a new document at version 1 and records an upload.
func (s *Store) CreateDocument(ctx context.Context, draft DocumentDraft) (model.Document, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := draft.Validate(); err != nil {
		return model.Document{}, domain.NewValidationError("invalid document", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefs(draft.Folder, draft.TagIDs); err != nil {
		return model.Document{}, err
	}

	now := s.now()
	doc := model.Document{
		ID:          s.newID("doc"),
		Name:        draft.Name,
		Type:        draft.Type,
		Size:        draft.Size,
		Folder:      draft.Folder,
		TagIDs:      uniqueIDs(draft.TagIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   s.actor,
		SharedWith:  []model.SharingGrant{},
		Description: draft.Description,
		Content:     draft.Content,
		Version:     1,
	}
	doc = doc.Clone()
	s.documents = append(s.documents, doc)

	s.appendActivity(ActivityDraft{
		Kind:        model.ActivityUpload,
		DocumentID:  doc.ID,
		Description: "Uploaded " + doc.Name,
	})
	s.metrics.mutations.WithLabelValues("create_document").Inc()
	s.persist(ctx, persistence.Documents, persistence.Activity)
	return doc.Clone(), nil
}

// UpdateDocument merges patch into the document, bumps its version and
// records an edit. A missing document is reported as a NotFoundError and
// leaves the store untouched.
func (s *Store) UpdateDocument(ctx context.Context, id string, patch DocumentPatch) (model.Document, error) {
	patch.Name = trimmed(patch.Name)
	if err := patch.Validate(); err != nil {
		return model.Document{}, domain.NewValidationError("invalid document update", err)
	}
	return s.mutateDocument(ctx, id, "update_document", func(d *model.Document) (ActivityDraft, error) {
		before := d.Name
		if patch.Folder != nil || patch.TagIDs != nil {
			folder := d.Folder
			if patch.Folder != nil {
				folder = *patch.Folder
			}
			if err := s.checkRefs(folder, patch.TagIDs); err != nil {
				return ActivityDraft{}, err
			}
		}

		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Type != nil {
			d.Type = *patch.Type
		}
		if patch.Size != nil {
			d.Size = *patch.Size
		}
		if patch.Folder != nil {
			d.Folder = *patch.Folder
		}
		if patch.TagIDs != nil {
			d.TagIDs = uniqueIDs(patch.TagIDs)
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		if patch.Content != nil {
			c := *patch.Content
			d.Content = &c
		}
		if patch.SharedWith != nil {
			d.SharedWith = append([]model.SharingGrant{}, patch.SharedWith...)
		}
		if patch.IsFavorite != nil {
			d.IsFavorite = *patch.IsFavorite
		}
		return ActivityDraft{Kind: model.ActivityEdit, Description: "Updated " + before}, nil
	})
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	doc, err := s.mutateDocument(ctx, id, "toggle_favorite", func(d *model.Document) (ActivityDraft, error) {
		d.IsFavorite = !d.IsFavorite
		verb := "Removed %s from favorites"
		if d.IsFavorite {
			verb = "Added %s to favorites"
		}
		return ActivityDraft{Kind: model.ActivityEdit, Description: fmt.Sprintf(verb, d.Name)}, nil
	})
	if err != nil {
		return false, err
	}
	return doc.IsFavorite, nil
}

// GrantAccess shares the document with a user. A grant for a user who already
// has one replaces the access level in place instead of adding a duplicate.
func (s *Store) GrantAccess(ctx context.Context, id string, grant model.SharingGrant) (model.Document, error) {
	if err := validGrant(grant); err != nil {
		return model.Document{}, domain.NewValidationError("invalid sharing grant", err)
	}
	return s.mutateDocument(ctx, id, "grant_access", func(d *model.Document) (ActivityDraft, error) {
		replaced := false
		for i := range d.SharedWith {
			if d.SharedWith[i].UserID == grant.UserID {
				d.SharedWith[i].AccessLevel = grant.AccessLevel
				replaced = true
				break
			}
		}
		if !replaced {
			d.SharedWith = append(d.SharedWith, grant)
		}
		return ActivityDraft{
			Kind:        model.ActivityShare,
			Description: fmt.Sprintf("Shared %s with %s as %s", d.Name, grant.UserID, grant.AccessLevel),
		}, nil
	})
}

// MoveDocument places the document in another folder and records a move.
func (s *Store) MoveDocument(ctx context.Context, id string, folder model.FolderRef) (model.Document, error) {
	return s.mutateDocument(ctx, id, "move_document", func(d *model.Document) (ActivityDraft, error) {
		if err := s.checkRefs(folder, nil); err != nil {
			return ActivityDraft{}, err
		}
		d.Folder = folder
		dest := "root"
		if fid, ok := folder.ID(); ok {
			dest = s.folders[s.folderIndex(fid)].Name
		}
		return ActivityDraft{Kind: model.ActivityMove, Description: fmt.Sprintf("Moved %s to %s", d.Name, dest)}, nil
	})
}

// SetDocumentTags replaces the document's tags and records a tag event.
func (s *Store) SetDocumentTags(ctx context.Context, id string, tagIDs []string) (model.Document, error) {
	return s.mutateDocument(ctx, id, "tag_document", func(d *model.Document) (ActivityDraft, error) {
		if err := s.checkRefs(model.Root, tagIDs); err != nil {
			return ActivityDraft{}, err
		}
		d.TagIDs = uniqueIDs(tagIDs)
		return ActivityDraft{Kind: model.ActivityTag, Description: "Tagged " + d.Name}, nil
	})
}

// mutateDocument applies fn to a copy of the document and commits it with a
// bumped version and modification time. When fn fails nothing changes.
func (s *Store) mutateDocument(ctx context.Context, id, op string, fn func(*model.Document) (ActivityDraft, error)) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.documentIndex(id)
	if i < 0 {
		return model.Document{}, domain.NewNotFoundError("document", id)
	}

	prev := s.documents[i]
	next := prev.Clone()
	activity, err := fn(&next)
	if err != nil {
		return model.Document{}, err
	}

	floor := prev.UpdatedAt
	if floor.Before(prev.CreatedAt) {
		floor = prev.CreatedAt
	}
	next.ID, next.CreatedAt, next.CreatedBy = prev.ID, prev.CreatedAt, prev.CreatedBy
	next.UpdatedAt = s.stamp(floor)
	next.Version = prev.Version + 1
	s.documents[i] = next

	activity.DocumentID = prev.ID
	s.appendActivity(activity)
	s.metrics.mutations.WithLabelValues(op).Inc()
	s.persist(ctx, persistence.Documents, persistence.Activity)
	return next.Clone(), nil
}

// DeleteDocument removes the document and records a delete. It reports whether
// anything was removed; deleting a missing document is a no-op.
func (s *Store) DeleteDocument(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.documentIndex(id)
	if i < 0 {
		return false
	}
	doc := s.documents[i]
	s.documents = append(s.documents[:i:i], s.documents[i+1:]...)

	s.appendActivity(ActivityDraft{
		Kind:        model.ActivityDelete,
		DocumentID:  doc.ID,
		Description: "Deleted " + doc.Name,
	})
	s.metrics.mutations.WithLabelValues("delete_document").Inc()
	s.persist(ctx, persistence.Documents, persistence.Activity)
	return true
}
