package store

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/persistence"
	"doclib/internal/tree"
)

// FolderDraft holds the fields of a new folder. The parent is not required to
// exist.
type FolderDraft struct {
	Name   string
	Parent model.FolderRef
	Color  string
	Icon   string
}

func (d FolderDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&d.Color, validation.Match(colorPattern)),
	)
}

// FolderPatch lists the folder fields to change.
type FolderPatch struct {
	Name   *string
	Parent *model.FolderRef
	Color  *string
	Icon   *string
}

func (p FolderPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&p.Color, validation.Match(colorPattern)),
	)
}

// FolderDeletion lists what a folder delete removed.
type FolderDeletion struct {
	Folders   []string `json:"folders"`
	Documents []string `json:"documents"`
}

// CreateFolder adds a folder. No activity is recorded.
func (s *Store) CreateFolder(ctx context.Context, draft FolderDraft) (model.Folder, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := draft.Validate(); err != nil {
		return model.Folder{}, domain.NewValidationError("invalid folder", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	f := model.Folder{
		ID:        s.newID("folder"),
		Name:      draft.Name,
		Parent:    draft.Parent,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: s.actor,
		Color:     draft.Color,
		Icon:      draft.Icon,
	}
	s.folders = append(s.folders, f)

	s.metrics.mutations.WithLabelValues("create_folder").Inc()
	s.persist(ctx, persistence.Folders)
	return f, nil
}

// UpdateFolder merges patch into the folder. Changing the parent records a
// move, changing only the name records a rename. A move under the folder's
// own subtree is rejected.
func (s *Store) UpdateFolder(ctx context.Context, id string, patch FolderPatch) (model.Folder, error) {
	patch.Name = trimmed(patch.Name)
	if err := patch.Validate(); err != nil {
		return model.Folder{}, domain.NewValidationError("invalid folder update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return model.Folder{}, domain.NewNotFoundError("folder", id)
	}
	prev := s.folders[i]
	next := prev

	var activity *ActivityDraft
	if patch.Parent != nil && *patch.Parent != prev.Parent {
		if pid, ok := patch.Parent.ID(); ok && tree.IsDescendant(pid, id, s.folders) {
			return model.Folder{}, domain.NewValidationError(
				fmt.Sprintf("cannot move folder %q beneath itself", prev.Name), nil)
		}
		next.Parent = *patch.Parent
		activity = &ActivityDraft{Kind: model.ActivityMove, Description: "Moved folder " + prev.Name}
	}
	if patch.Name != nil {
		name := *patch.Name
		if name != prev.Name && activity == nil {
			activity = &ActivityDraft{
				Kind:        model.ActivityRename,
				Description: fmt.Sprintf("Renamed folder %s to %s", prev.Name, name),
			}
		}
		next.Name = name
	}
	if patch.Color != nil {
		next.Color = *patch.Color
	}
	if patch.Icon != nil {
		next.Icon = *patch.Icon
	}

	floor := prev.UpdatedAt
	if floor.Before(prev.CreatedAt) {
		floor = prev.CreatedAt
	}
	next.UpdatedAt = s.stamp(floor)
	s.folders[i] = next

	keys := []persistence.CollectionKey{persistence.Folders}
	if activity != nil {
		activity.FolderID = prev.ID
		s.appendActivity(*activity)
		keys = append(keys, persistence.Activity)
	}
	s.metrics.mutations.WithLabelValues("update_folder").Inc()
	s.persist(ctx, keys...)
	return next, nil
}

// DeleteFolder removes the folder, every folder beneath it and every document
// filed anywhere in that subtree in one step. Deleting a missing folder is a
// no-op and returns an empty result.
func (s *Store) DeleteFolder(ctx context.Context, id string) FolderDeletion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := FolderDeletion{Folders: []string{}, Documents: []string{}}
	i := s.folderIndex(id)
	if i < 0 {
		return out
	}
	name, folderID := s.folders[i].Name, s.folders[i].ID
	closure := tree.DescendantClosure(folderID, s.folders)

	folders := make([]model.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		if _, ok := closure[f.ID]; ok {
			out.Folders = append(out.Folders, f.ID)
			continue
		}
		folders = append(folders, f)
	}
	documents := make([]model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		if fid, ok := d.Folder.ID(); ok {
			if _, gone := closure[fid]; gone {
				out.Documents = append(out.Documents, d.ID)
				continue
			}
		}
		documents = append(documents, d)
	}
	s.folders = folders
	s.documents = documents

	s.appendActivity(ActivityDraft{
		Kind:     model.ActivityDelete,
		FolderID: folderID,
		Description: fmt.Sprintf("Deleted folder %s with %d subfolders and %d documents",
			name, len(out.Folders)-1, len(out.Documents)),
	})
	s.metrics.mutations.WithLabelValues("delete_folder").Inc()
	s.persist(ctx, persistence.Folders, persistence.Documents, persistence.Activity)
	return out
}
