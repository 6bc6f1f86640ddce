package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclib/internal/domain"
	"doclib/internal/model"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func docIDs(docs []model.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func fixture() ([]model.Document, []model.Tag) {
	tags := []model.Tag{
		{ID: "t-legal", Name: "Legal", Color: "#ef4444"},
		{ID: "t-q1", Name: "Q1 Planning", Color: "#3b82f6"},
	}
	docs := []model.Document{
		{
			ID: "d1", Name: "Contract.pdf", Type: model.TypePDF, Size: 4096,
			Folder: model.In("f-legal"), TagIDs: []string{"t-legal"},
			CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour), CreatedBy: "u1",
			Description: "Signed vendor agreement",
		},
		{
			ID: "d2", Name: "budget.xlsx", Type: model.TypeXLSX, Size: 1024,
			Folder: model.Root, TagIDs: []string{"t-q1"},
			CreatedAt: base.Add(24 * time.Hour), UpdatedAt: base.Add(25 * time.Hour), CreatedBy: "u2",
			Description: "Quarterly budget for the contract team",
		},
		{
			ID: "d3", Name: "notes.md", Type: model.TypeMD, Size: 1024,
			Folder: model.Root,
			CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(1 * time.Hour), CreatedBy: "u1",
		},
		{
			ID: "d4", Name: "Architecture.png", Type: model.TypePNG, Size: 8192,
			Folder: model.In("f-eng"), TagIDs: []string{"t-q1", "t-legal"},
			CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(2 * time.Hour), CreatedBy: "u3",
		},
	}
	return docs, tags
}

func TestSearch_ScenarioFromSingleDocument(t *testing.T) {
	docs := []model.Document{{ID: "d1", Name: "Report.pdf", Type: model.TypePDF, Size: 2048, Folder: model.Root}}

	assert.Equal(t, []string{"d1"}, docIDs(Search(docs, nil, Filters{Query: "report"})))
	assert.Empty(t, Search(docs, nil, Filters{Types: []model.DocumentType{model.TypePNG}}))
}

func TestSearch_Filters(t *testing.T) {
	docs, tags := fixture()
	root := model.Root
	legal := model.In("f-legal")

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "no filters sorts by updated desc",
			filters: Filters{},
			want:    []string{"d2", "d1", "d4", "d3"},
		},
		{
			name:    "query matches name, description and tag names",
			filters: Filters{Query: "CONTRACT", SortOrder: Ascending},
			want:    []string{"d1", "d2"},
		},
		{
			name:    "query matches resolved tag name",
			filters: Filters{Query: "q1 plan", SortBy: SortByName, SortOrder: Ascending},
			want:    []string{"d4", "d2"},
		},
		{
			name:    "type membership",
			filters: Filters{Types: []model.DocumentType{model.TypeMD, model.TypePNG}, SortBy: SortByName, SortOrder: Ascending},
			want:    []string{"d4", "d3"},
		},
		{
			name:    "tag any-of",
			filters: Filters{TagIDs: []string{"t-legal", "t-unused"}, SortBy: SortByName, SortOrder: Ascending},
			want:    []string{"d4", "d1"},
		},
		{
			name:    "root folder is shallow",
			filters: Filters{Folder: &root, SortBy: SortByName, SortOrder: Ascending},
			want:    []string{"d2", "d3"},
		},
		{
			name:    "specific folder",
			filters: Filters{Folder: &legal},
			want:    []string{"d1"},
		},
		{
			name: "date range inclusive on both ends",
			filters: Filters{
				DateRange: &DateRange{Start: base.Add(24 * time.Hour), End: base.Add(48 * time.Hour)},
				SortOrder: Ascending,
			},
			want: []string{"d3", "d2"},
		},
		{
			name:    "creator",
			filters: Filters{CreatedBy: []string{"u1"}, SortBy: SortBySize},
			want:    []string{"d1", "d3"},
		},
		{
			name:    "conjunctive",
			filters: Filters{CreatedBy: []string{"u1"}, Folder: &root},
			want:    []string{"d3"},
		},
		{
			name:    "nothing matches",
			filters: Filters{Query: "zzz"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docIDs(Search(docs, tags, tt.filters)))
		})
	}
}

func TestSearch_UnsetFolderIsNotRoot(t *testing.T) {
	docs, tags := fixture()

	all := Search(docs, tags, Filters{})
	rootOnly := Search(docs, tags, Filters{}.InFolder(model.Root))

	assert.Len(t, all, 4)
	assert.Len(t, rootOnly, 2)
}

func TestSearch_SortIsStable(t *testing.T) {
	docs, tags := fixture()

	// d2 and d3 share size 1024 and must keep input order in both directions.
	asc := docIDs(Search(docs, tags, Filters{SortBy: SortBySize, SortOrder: Ascending}))
	assert.Equal(t, []string{"d2", "d3", "d1", "d4"}, asc)

	desc := docIDs(Search(docs, tags, Filters{SortBy: SortBySize, SortOrder: Descending}))
	assert.Equal(t, []string{"d4", "d1", "d2", "d3"}, desc)
}

func TestSearch_Relevance(t *testing.T) {
	docs, tags := fixture()

	t.Run("name matches first ascending", func(t *testing.T) {
		got := docIDs(Search(docs, tags, Filters{Query: "contract", SortBy: SortByRelevance, SortOrder: Ascending}))
		assert.Equal(t, []string{"d1", "d2"}, got)
	})

	t.Run("direction flips the boost", func(t *testing.T) {
		got := docIDs(Search(docs, tags, Filters{Query: "contract", SortBy: SortByRelevance, SortOrder: Descending}))
		assert.Equal(t, []string{"d2", "d1"}, got)
	})

	t.Run("no query keeps input order", func(t *testing.T) {
		got := docIDs(Search(docs, tags, Filters{SortBy: SortByRelevance}))
		assert.Equal(t, []string{"d1", "d2", "d3", "d4"}, got)
	})
}

func TestSearch_NameCollation(t *testing.T) {
	docs := []model.Document{
		{ID: "1", Name: "zeta.txt"},
		{ID: "2", Name: "Alpha.txt"},
		{ID: "3", Name: "beta.txt"},
	}

	got := docIDs(Search(docs, nil, Filters{SortBy: SortByName, SortOrder: Ascending}))
	assert.Equal(t, []string{"2", "3", "1"}, got)
}

func TestSearch_IdempotentAndPure(t *testing.T) {
	docs, tags := fixture()
	before := docIDs(docs)
	f := Filters{Query: "a", SortBy: SortByName}

	first := Search(docs, tags, f)
	second := Search(docs, tags, f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, docIDs(docs))
}

func TestParseSort(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByDate, k)

	k, err = ParseSortKey("Relevance")
	require.NoError(t, err)
	assert.Equal(t, SortByRelevance, k)

	_, err = ParseSortKey("popularity")
	assert.ErrorIs(t, err, domain.ErrValidation)

	o, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, Descending, o)

	_, err = ParseSortOrder("sideways")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
