package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"doclib/internal/directory"
	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/query"
	"doclib/internal/store"
	"doclib/internal/tree"
	"doclib/internal/upload"
)

// ErrIDRequired is returned when a path id is empty.
var ErrIDRequired = domain.NewValidationError("id is required", nil)

// DefaultActivityPage is how many activity entries RecentActivity returns by default.
const DefaultActivityPage = 20

// View narrows a document listing the way the sidebar sections do.
type View string

const (
	ViewAll       View = "all"
	ViewFavorites View = "favorites"
	ViewShared    View = "shared"
)

// ParseView maps a request value to a View. Empty selects ViewAll.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case "", ViewAll:
		return ViewAll, nil
	case ViewFavorites, ViewShared:
		return v, nil
	}
	return "", domain.NewValidationError(fmt.Sprintf("unknown view %q", s), nil)
}

// DocumentQuery is a search plus a view.
type DocumentQuery struct {
	Filters query.Filters
	View    View
}

// DocumentView is a document with its tags resolved and its folder path.
type DocumentView struct {
	model.Document
	Tags []model.Tag    `json:"tags"`
	Path []model.Folder `json:"path"`
}

// FolderSummary is a folder with the number of documents anywhere beneath it.
type FolderSummary struct {
	model.Folder
	DocumentCount int `json:"documentCount"`
}

// FolderView is a folder page: breadcrumbs, subfolders and the documents filed directly in it.
type FolderView struct {
	Folder    model.Folder    `json:"folder"`
	Path      []model.Folder  `json:"path"`
	Children  []FolderSummary `json:"children"`
	Documents []DocumentView  `json:"documents"`
}

// TagSummary is a tag with the number of documents carrying it.
type TagSummary struct {
	model.Tag
	DocumentCount int `json:"documentCount"`
}

// UploadRequest carries a raw upload and where to file it.
type UploadRequest struct {
	Filename    string
	ContentType string
	Reader      io.Reader
	Size        int64
	Folder      model.FolderRef
	Description string
	TagIDs      []string
}

// LibraryService defines the use cases of the document library.
type LibraryService interface {
	// ListDocuments searches all documents and narrows the result to the view.
	ListDocuments(ctx context.Context, q DocumentQuery) ([]DocumentView, error)
	GetDocument(ctx context.Context, id string) (*DocumentView, error)
	// UploadDocument encodes the upload and creates the document. An encoding
	// failure is logged and the document is created without inline content.
	UploadDocument(ctx context.Context, req UploadRequest) (*DocumentView, error)
	UpdateDocument(ctx context.Context, id string, patch store.DocumentPatch) (*DocumentView, error)
	// DeleteDocument is idempotent.
	DeleteDocument(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	// ShareDocument grants a directory user access to a document.
	ShareDocument(ctx context.Context, id, userID string, level model.AccessLevel) (*DocumentView, error)
	ShareCandidates(ctx context.Context, id string) ([]model.User, error)

	ListFolders(ctx context.Context, parent model.FolderRef) ([]FolderSummary, error)
	GetFolder(ctx context.Context, id string) (*FolderView, error)
	CreateFolder(ctx context.Context, draft store.FolderDraft) (*model.Folder, error)
	UpdateFolder(ctx context.Context, id string, patch store.FolderPatch) (*model.Folder, error)
	DeleteFolder(ctx context.Context, id string) (*store.FolderDeletion, error)

	ListTags(ctx context.Context) ([]TagSummary, error)
	CreateTag(ctx context.Context, draft store.TagDraft) (*model.Tag, error)
	DeleteTag(ctx context.Context, id string) error

	RecentActivity(ctx context.Context, limit int) ([]model.ActivityLogEntry, error)
	SearchUsers(ctx context.Context, q string) ([]model.User, error)
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Default folder appearance for folders created without one.
const (
	defaultFolderColor = "#3b82f6"
	defaultFolderIcon  = "folder"
)

type libraryService struct {
	store  *store.Store
	users  *directory.Directory
	intake *upload.Intake
	logger *zap.Logger
}

// NewLibraryService constructs a LibraryService.
func NewLibraryService(st *store.Store, users *directory.Directory, intake *upload.Intake, logger *zap.Logger) LibraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &libraryService{store: st, users: users, intake: intake, logger: logger}
}

func (s *libraryService) ListDocuments(ctx context.Context, q DocumentQuery) ([]DocumentView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.store.Snapshot()
	found := query.Search(snap.Documents, snap.Tags, q.Filters)

	out := make([]DocumentView, 0, len(found))
	r := newResolver(snap.Tags, snap.Folders)
	for _, d := range found {
		switch q.View {
		case ViewFavorites:
			if !d.IsFavorite {
				continue
			}
		case ViewShared:
			if len(d.SharedWith) == 0 {
				continue
			}
		}
		out = append(out, r.view(d))
	}
	return out, nil
}

func (s *libraryService) GetDocument(ctx context.Context, id string) (*DocumentView, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, ok := s.store.Document(id)
	if !ok {
		return nil, domain.NewNotFoundError("document", id)
	}
	return s.resolve(d), nil
}

func (s *libraryService) UploadDocument(ctx context.Context, req UploadRequest) (*DocumentView, error) {
	f, err := s.intake.Accept(req.Filename, req.ContentType, req.Reader, req.Size)
	if err != nil {
		if !errors.Is(err, domain.ErrEncoding) {
			return nil, err
		}
		s.logger.Warn("upload stored without inline content",
			zap.String("file", req.Filename),
			zap.Error(err),
		)
	}

	doc, err := s.store.CreateDocument(ctx, store.DocumentDraft{
		Name:        f.Name,
		Type:        f.Type,
		Size:        f.Size,
		Folder:      req.Folder,
		TagIDs:      req.TagIDs,
		Description: req.Description,
		Content:     f.Content,
	})
	if err != nil {
		return nil, err
	}
	return s.resolve(doc), nil
}

func (s *libraryService) UpdateDocument(ctx context.Context, id string, patch store.DocumentPatch) (*DocumentView, error) {
	doc, err := s.store.UpdateDocument(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.resolve(doc), nil
}

func (s *libraryService) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if !s.store.DeleteDocument(ctx, id) {
		s.logger.Debug("delete of missing document ignored", zap.String("document_id", id))
	}
	return nil
}

func (s *libraryService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	return s.store.ToggleFavorite(ctx, id)
}

func (s *libraryService) ShareDocument(ctx context.Context, id, userID string, level model.AccessLevel) (*DocumentView, error) {
	if _, ok := s.users.Get(userID); !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown user %q", userID), nil)
	}
	doc, err := s.store.GrantAccess(ctx, id, model.SharingGrant{UserID: userID, AccessLevel: level})
	if err != nil {
		return nil, err
	}
	return s.resolve(doc), nil
}

func (s *libraryService) ShareCandidates(ctx context.Context, id string) ([]model.User, error) {
	d, ok := s.store.Document(id)
	if !ok {
		return nil, domain.NewNotFoundError("document", id)
	}
	return s.users.Candidates(d), nil
}

func (s *libraryService) ListFolders(ctx context.Context, parent model.FolderRef) ([]FolderSummary, error) {
	snap := s.store.Snapshot()
	return summarize(tree.Children(parent, snap.Folders), snap), nil
}

func (s *libraryService) GetFolder(ctx context.Context, id string) (*FolderView, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	snap := s.store.Snapshot()
	path := tree.PathToRoot(id, snap.Folders)
	if len(path) == 0 {
		return nil, domain.NewNotFoundError("folder", id)
	}

	ref := model.In(id)
	docs := query.Search(snap.Documents, snap.Tags, query.Filters{Folder: &ref, SortBy: query.SortByName, SortOrder: query.Ascending})
	r := newResolver(snap.Tags, snap.Folders)
	views := make([]DocumentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, r.view(d))
	}

	return &FolderView{
		Folder:    path[len(path)-1],
		Path:      path,
		Children:  summarize(tree.Children(ref, snap.Folders), snap),
		Documents: views,
	}, nil
}

func (s *libraryService) CreateFolder(ctx context.Context, draft store.FolderDraft) (*model.Folder, error) {
	if draft.Color == "" {
		draft.Color = defaultFolderColor
	}
	if draft.Icon == "" {
		draft.Icon = defaultFolderIcon
	}
	f, err := s.store.CreateFolder(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *libraryService) UpdateFolder(ctx context.Context, id string, patch store.FolderPatch) (*model.Folder, error) {
	f, err := s.store.UpdateFolder(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *libraryService) DeleteFolder(ctx context.Context, id string) (*store.FolderDeletion, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	res := s.store.DeleteFolder(ctx, id)
	if len(res.Folders) > 0 {
		s.logger.Info("folder deleted",
			zap.String("folder_id", id),
			zap.Int("folders", len(res.Folders)),
			zap.Int("documents", len(res.Documents)),
		)
	}
	return &res, nil
}

func (s *libraryService) ListTags(ctx context.Context) ([]TagSummary, error) {
	snap := s.store.Snapshot()
	counts := make(map[string]int, len(snap.Tags))
	for _, d := range snap.Documents {
		for _, id := range d.TagIDs {
			counts[id]++
		}
	}
	out := make([]TagSummary, 0, len(snap.Tags))
	for _, t := range snap.Tags {
		out = append(out, TagSummary{Tag: t, DocumentCount: counts[t.ID]})
	}
	return out, nil
}

func (s *libraryService) CreateTag(ctx context.Context, draft store.TagDraft) (*model.Tag, error) {
	t, err := s.store.CreateTag(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *libraryService) DeleteTag(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	s.store.DeleteTag(ctx, id)
	return nil
}

func (s *libraryService) RecentActivity(ctx context.Context, limit int) ([]model.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = DefaultActivityPage
	}
	log := s.store.Activity()
	if len(log) > limit {
		log = log[:limit]
	}
	return log, nil
}

func (s *libraryService) SearchUsers(ctx context.Context, q string) ([]model.User, error) {
	return s.users.Search(q), nil
}

func (s *libraryService) Reset(ctx context.Context) error {
	s.store.Reset(ctx)
	s.logger.Info("library reset to demo dataset")
	return nil
}

func (s *libraryService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *libraryService) resolve(d model.Document) *DocumentView {
	snap := s.store.Snapshot()
	v := newResolver(snap.Tags, snap.Folders).view(d)
	return &v
}

// resolver expands tag ids and folder references for display.
type resolver struct {
	tags    map[string]model.Tag
	folders []model.Folder
}

func newResolver(tags []model.Tag, folders []model.Folder) resolver {
	byID := make(map[string]model.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	return resolver{tags: byID, folders: folders}
}

func (r resolver) view(d model.Document) DocumentView {
	v := DocumentView{Document: d, Tags: make([]model.Tag, 0, len(d.TagIDs)), Path: []model.Folder{}}
	for _, id := range d.TagIDs {
		if t, ok := r.tags[id]; ok {
			v.Tags = append(v.Tags, t)
		}
	}
	if id, ok := d.Folder.ID(); ok {
		v.Path = tree.PathToRoot(id, r.folders)
	}
	return v
}

func summarize(folders []model.Folder, snap model.Collections) []FolderSummary {
	hist := tree.Histogram(snap.Documents)
	out := make([]FolderSummary, 0, len(folders))
	for _, f := range folders {
		closure := tree.DescendantClosure(f.ID, snap.Folders)
		out = append(out, FolderSummary{Folder: f, DocumentCount: tree.CountInClosure(closure, hist)})
	}
	return out
}
