package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclib/internal/model"
)

func folder(id string, parent model.FolderRef) model.Folder {
	return model.Folder{ID: id, Name: "Folder " + id, Parent: parent}
}

func ids(folders []model.Folder) []string {
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		out = append(out, f.ID)
	}
	return out
}

// root -> A -> B -> C, root -> D
func sampleTree() []model.Folder {
	return []model.Folder{
		folder("A", model.Root),
		folder("B", model.In("A")),
		folder("C", model.In("B")),
		folder("D", model.Root),
	}
}

func TestPathToRoot(t *testing.T) {
	folders := sampleTree()

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"top level", "A", []string{"A"}},
		{"nested", "B", []string{"A", "B"}},
		{"deep", "C", []string{"A", "B", "C"}},
		{"unknown folder", "missing", []string{}},
		{"root", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(PathToRoot(tt.target, folders)))
		})
	}
}

func TestPathToRoot_TruncatesDanglingParent(t *testing.T) {
	folders := []model.Folder{
		folder("X", model.In("gone")),
		folder("Y", model.In("X")),
	}

	assert.Equal(t, []string{"X", "Y"}, ids(PathToRoot("Y", folders)))
}

func TestPathToRoot_TerminatesOnCycle(t *testing.T) {
	folders := []model.Folder{
		folder("P", model.In("Q")),
		folder("Q", model.In("P")),
	}

	path := PathToRoot("P", folders)
	assert.Equal(t, []string{"Q", "P"}, ids(path))
}

func TestPathToRoot_LengthIsDepth(t *testing.T) {
	var folders []model.Folder
	parent := model.Root
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("f%d", i)
		folders = append(folders, folder(id, parent))
		parent = model.In(id)

		path := PathToRoot(id, folders)
		require.Len(t, path, i+1)
		assert.Equal(t, id, path[len(path)-1].ID)
		assert.True(t, path[0].Parent.IsRoot())
		assert.Equal(t, i+1, Depth(id, folders))
	}
}

func TestChildren(t *testing.T) {
	folders := sampleTree()

	assert.Equal(t, []string{"A", "D"}, ids(Children(model.Root, folders)))
	assert.Equal(t, []string{"B"}, ids(Children(model.In("A"), folders)))
	assert.Empty(t, Children(model.In("C"), folders))
}

func TestDescendantClosure(t *testing.T) {
	folders := sampleTree()

	t.Run("includes self and all descendants", func(t *testing.T) {
		assert.Equal(t, map[string]struct{}{"A": {}, "B": {}, "C": {}}, DescendantClosure("A", folders))
	})

	t.Run("leaf", func(t *testing.T) {
		assert.Equal(t, map[string]struct{}{"D": {}}, DescendantClosure("D", folders))
	})

	t.Run("closed under children", func(t *testing.T) {
		closure := DescendantClosure("A", folders)
		for id := range closure {
			for _, child := range Children(model.In(id), folders) {
				assert.Contains(t, closure, child.ID)
			}
		}
	})

	t.Run("grows as folders are added beneath", func(t *testing.T) {
		before := len(DescendantClosure("A", folders))
		grown := append(sampleTree(), folder("E", model.In("C")))
		assert.Equal(t, before+1, len(DescendantClosure("A", grown)))
	})

	t.Run("terminates on cycle", func(t *testing.T) {
		cyclic := []model.Folder{
			folder("P", model.In("Q")),
			folder("Q", model.In("P")),
		}
		assert.Equal(t, map[string]struct{}{"P": {}, "Q": {}}, DescendantClosure("P", cyclic))
	})
}

func TestIsDescendant(t *testing.T) {
	folders := sampleTree()

	assert.True(t, IsDescendant("C", "A", folders))
	assert.True(t, IsDescendant("A", "A", folders))
	assert.False(t, IsDescendant("A", "C", folders))
	assert.False(t, IsDescendant("D", "A", folders))
}

func TestDocumentCountRecursive(t *testing.T) {
	folders := sampleTree()
	docs := []model.Document{
		{ID: "d1", Folder: model.In("A")},
		{ID: "d2", Folder: model.In("B")},
		{ID: "d3", Folder: model.In("C")},
		{ID: "d4", Folder: model.In("D")},
		{ID: "d5", Folder: model.Root},
	}

	assert.Equal(t, 3, DocumentCountRecursive("A", docs, folders))
	assert.Equal(t, 2, DocumentCountRecursive("B", docs, folders))
	assert.Equal(t, 1, DocumentCountRecursive("D", docs, folders))
	assert.Equal(t, 0, DocumentCountRecursive("missing", docs, folders))

	hist := Histogram(docs)
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, hist)
	assert.Equal(t, 3, CountInClosure(DescendantClosure("A", folders), hist))
}
