package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"doclib/internal/directory"
	"doclib/internal/domain"
	"doclib/internal/model"
	"doclib/internal/persistence/memory"
	"doclib/internal/query"
	"doclib/internal/seed"
	"doclib/internal/store"
	"doclib/internal/upload"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("stream reset") }

func newTestService(t *testing.T, logger *zap.Logger) LibraryService {
	t.Helper()
	st, err := store.Open(context.Background(), memory.New())
	require.NoError(t, err)
	return NewLibraryService(st, directory.New(seed.Users()), upload.New(1024), logger)
}

func docIDs(views []DocumentView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestLibraryService_ListDocuments(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	root := model.Root

	tests := []struct {
		name string
		q    DocumentQuery
		want []string
	}{
		{
			name: "default order is most recently updated first",
			q:    DocumentQuery{},
			want: []string{"doc-5", "doc-2", "doc-8", "doc-4", "doc-7", "doc-1", "doc-6", "doc-3"},
		},
		{
			name: "favorites view",
			q:    DocumentQuery{View: ViewFavorites},
			want: []string{"doc-5", "doc-2"},
		},
		{
			name: "shared view",
			q:    DocumentQuery{View: ViewShared},
			want: []string{"doc-4", "doc-1"},
		},
		{
			name: "root folder only",
			q:    DocumentQuery{Filters: query.Filters{Folder: &root, SortBy: query.SortByName, SortOrder: query.Ascending}},
			want: []string{"doc-8", "doc-5"},
		},
		{
			name: "text matches tag names",
			q:    DocumentQuery{Filters: query.Filters{Query: "contract"}},
			want: []string{"doc-1", "doc-6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListDocuments(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, docIDs(got))
		})
	}
}

func TestLibraryService_GetDocument(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	v, err := svc.GetDocument(ctx, "doc-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance", "Draft"}, []string{v.Tags[0].Name, v.Tags[1].Name})
	require.Len(t, v.Path, 3)
	assert.Equal(t, "Finance", v.Path[0].Name)
	assert.Equal(t, "Q1", v.Path[2].Name)

	root, err := svc.GetDocument(ctx, "doc-8")
	require.NoError(t, err)
	assert.Empty(t, root.Path)
	assert.Empty(t, root.Tags)

	_, err = svc.GetDocument(ctx, "doc-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetDocument(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLibraryService_UploadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc := newTestService(t, nil)
		v, err := svc.UploadDocument(ctx, UploadRequest{
			Filename:    "Plan.md",
			ContentType: "text/markdown",
			Reader:      strings.NewReader("# plan"),
			Size:        6,
			Folder:      model.In("folder-6"),
			Description: "roadmap",
			TagIDs:      []string{"tag-4"},
		})
		require.NoError(t, err)
		assert.Equal(t, model.TypeMD, v.Type)
		assert.Equal(t, int64(6), v.Size)
		require.NotNil(t, v.Content)
		assert.True(t, strings.HasPrefix(*v.Content, "data:text/markdown;base64,"))
		assert.Equal(t, "Draft", v.Tags[0].Name)
		assert.Equal(t, "Engineering", v.Path[0].Name)
	})

	t.Run("encoding failure still creates the document", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		svc := newTestService(t, zap.New(core))

		v, err := svc.UploadDocument(ctx, UploadRequest{Filename: "scan.pdf", Reader: brokenReader{}, Size: 10})

		require.NoError(t, err)
		assert.Nil(t, v.Content)
		assert.Equal(t, model.TypePDF, v.Type)
		assert.Equal(t, 1, logs.FilterMessage("upload stored without inline content").Len())
	})

	t.Run("too large", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.UploadDocument(ctx, UploadRequest{Filename: "big.zip", Reader: strings.NewReader(""), Size: 4096})
		assert.ErrorIs(t, err, upload.ErrTooLarge)
	})

	t.Run("unknown folder", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.UploadDocument(ctx, UploadRequest{Filename: "a.txt", Reader: strings.NewReader("a"), Size: 1, Folder: model.In("nope")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLibraryService_ShareDocument(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	cands, err := svc.ShareCandidates(ctx, "doc-4")
	require.NoError(t, err)
	assert.Len(t, cands, 3)

	v, err := svc.ShareDocument(ctx, "doc-4", "user-2", model.AccessEditor)
	require.NoError(t, err)
	assert.Len(t, v.SharedWith, 3)

	cands, err = svc.ShareCandidates(ctx, "doc-4")
	require.NoError(t, err)
	assert.Len(t, cands, 2)

	_, err = svc.ShareDocument(ctx, "doc-4", "user-404", model.AccessEditor)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.ShareDocument(ctx, "doc-404", "user-2", model.AccessEditor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.ShareCandidates(ctx, "doc-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLibraryService_Folders(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	top, err := svc.ListFolders(ctx, model.Root)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, f := range top {
		counts[f.Name] = f.DocumentCount
	}
	assert.Equal(t, map[string]int{"Legal": 2, "Finance": 2, "Engineering": 1, "Marketing": 1}, counts)

	fv, err := svc.GetFolder(ctx, "folder-3")
	require.NoError(t, err)
	assert.Equal(t, "Finance", fv.Folder.Name)
	assert.Len(t, fv.Path, 1)
	require.Len(t, fv.Children, 1)
	assert.Equal(t, 2, fv.Children[0].DocumentCount)
	assert.Empty(t, fv.Documents)

	_, err = svc.GetFolder(ctx, "folder-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f, err := svc.CreateFolder(ctx, store.FolderDraft{Name: "Research"})
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", f.Color)
	assert.Equal(t, "folder", f.Icon)

	res, err := svc.DeleteFolder(ctx, "folder-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"doc-1", "doc-6"}, res.Documents)
}

func TestLibraryService_Tags(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, tg := range tags {
		counts[tg.ID] = tg.DocumentCount
	}
	assert.Equal(t, 2, counts["tag-1"])
	assert.Equal(t, 1, counts["tag-6"])

	require.NoError(t, svc.DeleteTag(ctx, "tag-1"))
	require.NoError(t, svc.DeleteTag(ctx, "tag-1"))
	v, err := svc.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tag-2"}, v.TagIDs)
}

func TestLibraryService_RecentActivity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	for i := 0; i < 30; i++ {
		_, err := svc.ToggleFavorite(ctx, "doc-3")
		require.NoError(t, err)
	}

	log, err := svc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, log, DefaultActivityPage)

	log, err = svc.RecentActivity(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, log, 5)
}

func TestLibraryService_ResetAndPing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	require.NoError(t, svc.DeleteDocument(ctx, "doc-1"))
	require.NoError(t, svc.DeleteDocument(ctx, "doc-1"))

	require.NoError(t, svc.Reset(ctx))

	_, err := svc.GetDocument(ctx, "doc-1")
	assert.NoError(t, err)
	assert.NoError(t, svc.Ping(ctx))
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewAll, v)

	v, err = ParseView("shared")
	require.NoError(t, err)
	assert.Equal(t, ViewShared, v)

	_, err = ParseView("trash")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
