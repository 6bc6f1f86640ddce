package store

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"doclib/internal/domain"
	"doclib/internal/model"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	defaultTagColor      = "#64748b"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func documentTypeValues() []interface{} {
	types := model.DocumentTypes()
	out := make([]interface{}, len(types))
	for i, t := range types {
		out[i] = t
	}
	return out
}

func validGrant(value interface{}) error {
	g, ok := value.(model.SharingGrant)
	if !ok {
		return errors.New("must be a sharing grant")
	}
	return validation.ValidateStruct(&g,
		validation.Field(&g.UserID, validation.Required),
		validation.Field(&g.AccessLevel, validation.Required, validation.In(
			model.AccessOwner, model.AccessEditor, model.AccessViewer, model.AccessRestricted,
		)),
	)
}

// checkRefs verifies that a folder reference and tag ids resolve against the
// live collections. Callers must hold s.mu.
func (s *Store) checkRefs(folder model.FolderRef, tagIDs []string) error {
	if id, ok := folder.ID(); ok && s.folderIndex(id) < 0 {
		return domain.NewValidationError(fmt.Sprintf("folder %q does not exist", id), nil)
	}
	for _, id := range tagIDs {
		if s.tagIndex(id) < 0 {
			return domain.NewValidationError(fmt.Sprintf("tag %q does not exist", id), nil)
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// trimmed returns a copy of s without surrounding whitespace; nil stays nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
