// Package query filters and orders a snapshot of documents.
package query

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"doclib/internal/domain"
	"doclib/internal/model"
)

// SortKey selects the field results are ordered by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByDate      SortKey = "date"
	SortBySize      SortKey = "size"
	SortByRelevance SortKey = "relevance"
)

// SortOrder is the direction of the ordering.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortKey maps a request value to a SortKey. Empty selects SortByDate.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(s)); k {
	case "":
		return SortByDate, nil
	case SortByName, SortByDate, SortBySize, SortByRelevance:
		return k, nil
	}
	return "", domain.NewValidationError(fmt.Sprintf("unknown sort key %q", s), nil)
}

// ParseSortOrder maps a request value to a SortOrder. Empty selects Descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(s)); o {
	case "":
		return Descending, nil
	case Ascending, Descending:
		return o, nil
	}
	return "", domain.NewValidationError(fmt.Sprintf("unknown sort order %q", s), nil)
}

// DateRange bounds a creation timestamp, both ends inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filters describes a search. Zero-valued fields impose no constraint.
// Folder distinguishes "unset" (nil) from "root only" (&model.Root).
type Filters struct {
	Query     string
	Types     []model.DocumentType
	TagIDs    []string
	Folder    *model.FolderRef
	DateRange *DateRange
	CreatedBy []string
	SortBy    SortKey
	SortOrder SortOrder
}

// InFolder returns a copy of f restricted to the direct contents of ref.
func (f Filters) InFolder(ref model.FolderRef) Filters {
	f.Folder = &ref
	return f
}

// Search returns the documents matching every filter, ordered by f.SortBy and
// f.SortOrder. tags is the live tag collection used to resolve tag names for
// the text filter. The sort is stable: equal keys keep their input order.
func Search(documents []model.Document, tags []model.Tag, f Filters) []model.Document {
	names := make(map[string]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}
	q := strings.ToLower(f.Query)

	out := make([]model.Document, 0, len(documents))
	for _, d := range documents {
		if matches(d, f, q, names) {
			out = append(out, d)
		}
	}

	sortDocuments(out, f, q)
	return out
}

func matches(d model.Document, f Filters, q string, tagNames map[string]string) bool {
	if q != "" && !strings.Contains(searchableText(d, tagNames), q) {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, d.Type) {
		return false
	}
	if len(f.TagIDs) > 0 && !slices.ContainsFunc(d.TagIDs, func(id string) bool {
		return slices.Contains(f.TagIDs, id)
	}) {
		return false
	}
	if f.Folder != nil && d.Folder != *f.Folder {
		return false
	}
	if f.DateRange != nil && !f.DateRange.Contains(d.CreatedAt) {
		return false
	}
	if len(f.CreatedBy) > 0 && !slices.Contains(f.CreatedBy, d.CreatedBy) {
		return false
	}
	return true
}

func searchableText(d model.Document, tagNames map[string]string) string {
	labels := make([]string, 0, len(d.TagIDs))
	for _, id := range d.TagIDs {
		if name, ok := tagNames[id]; ok {
			labels = append(labels, name)
		}
	}
	return strings.ToLower(d.Name + " " + d.Description + " " + strings.Join(labels, " "))
}

func sortDocuments(docs []model.Document, f Filters, q string) {
	key := f.SortBy
	if key == "" {
		key = SortByDate
	}
	sign := -1
	if f.SortOrder == Ascending {
		sign = 1
	}

	var cmp func(a, b model.Document) int
	switch key {
	case SortByName:
		col := collate.New(language.Und)
		cmp = func(a, b model.Document) int { return col.CompareString(a.Name, b.Name) }
	case SortByDate:
		cmp = func(a, b model.Document) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case SortBySize:
		cmp = func(a, b model.Document) int {
			switch {
			case a.Size < b.Size:
				return -1
			case a.Size > b.Size:
				return 1
			}
			return 0
		}
	case SortByRelevance:
		if q == "" {
			return
		}
		cmp = func(a, b model.Document) int {
			am := strings.Contains(strings.ToLower(a.Name), q)
			bm := strings.Contains(strings.ToLower(b.Name), q)
			switch {
			case am && !bm:
				return -1
			case !am && bm:
				return 1
			}
			return 0
		}
	default:
		return
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return sign*cmp(docs[i], docs[j]) < 0
	})
}
