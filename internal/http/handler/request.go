package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/query"
	"doclib/internal/service"
	"doclib/internal/store"
)

// rootParam selects the implicit root wherever a folder id is accepted in a query string.
const rootParam = "root"

// folderParam parses a folder query value. Empty means unset.
func folderParam(v string) *model.FolderRef {
	switch v {
	case "":
		return nil
	case rootParam:
		ref := model.Root
		return &ref
	default:
		ref := model.In(v)
		return &ref
	}
}

// csv splits a comma separated, possibly repeated, query parameter.
func csv(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		out = append(out, splitList(string(raw))...)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseTime(key, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, domain.NewValidationError(fmt.Sprintf("%s must be RFC3339", key), err)
	}
	return t, nil
}

// parseDocumentQuery reads the document listing filters:
//
//	q, type, tag, folder (root|id), from, to, created_by, sort, order, view
func parseDocumentQuery(c *fiber.Ctx) (service.DocumentQuery, error) {
	var q service.DocumentQuery
	f := &q.Filters

	f.Query = strings.TrimSpace(c.Query("q"))
	for _, t := range csv(c, "type") {
		dt := model.DocumentType(strings.ToLower(t))
		if !dt.Valid() {
			return q, domain.NewValidationError(fmt.Sprintf("unknown document type %q", t), nil)
		}
		f.Types = append(f.Types, dt)
	}
	f.TagIDs = csv(c, "tag")
	f.CreatedBy = csv(c, "created_by")
	f.Folder = folderParam(c.Query("folder"))

	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		r := query.DateRange{End: time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)}
		var err error
		if from != "" {
			if r.Start, err = parseTime("from", from); err != nil {
				return q, err
			}
		}
		if to != "" {
			if r.End, err = parseTime("to", to); err != nil {
				return q, err
			}
		}
		f.DateRange = &r
	}

	var err error
	if f.SortBy, err = query.ParseSortKey(c.Query("sort")); err != nil {
		return q, err
	}
	if f.SortOrder, err = query.ParseSortOrder(c.Query("order")); err != nil {
		return q, err
	}
	if q.View, err = service.ParseView(c.Query("view")); err != nil {
		return q, err
	}
	return q, nil
}

// optionalFolder tells an absent folder field apart from an explicit null (root).
type optionalFolder struct {
	set bool
	ref model.FolderRef
}

func (o *optionalFolder) UnmarshalJSON(b []byte) error {
	o.set = true
	return o.ref.UnmarshalJSON(b)
}

func (o optionalFolder) ptr() *model.FolderRef {
	if !o.set {
		return nil
	}
	ref := o.ref
	return &ref
}

type updateDocumentRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	FolderID    optionalFolder       `json:"folderId"`
	TagIDs      []string             `json:"tagIds"`
	SharedWith  []model.SharingGrant `json:"sharedWith"`
	IsFavorite  *bool                `json:"isFavorite"`
}

func (r updateDocumentRequest) patch() store.DocumentPatch {
	return store.DocumentPatch{
		Name:        r.Name,
		Description: r.Description,
		Folder:      r.FolderID.ptr(),
		TagIDs:      r.TagIDs,
		SharedWith:  r.SharedWith,
		IsFavorite:  r.IsFavorite,
	}
}

type shareRequest struct {
	UserID      string            `json:"userId"`
	AccessLevel model.AccessLevel `json:"accessLevel"`
}

type createFolderRequest struct {
	Name     string          `json:"name"`
	ParentID model.FolderRef `json:"parentId"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

type updateFolderRequest struct {
	Name     *string        `json:"name"`
	ParentID optionalFolder `json:"parentId"`
	Color    *string        `json:"color"`
	Icon     *string        `json:"icon"`
}

type createTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// parseBody decodes a JSON request body into v with the app's JSON decoder.
// The Content-Type header is not required.
func parseBody(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return domain.NewValidationError("request body is required", nil)
	}
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return domain.NewValidationError("malformed JSON body", err)
	}
	return nil
}
