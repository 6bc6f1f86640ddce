// Package tree resolves folder hierarchy questions over a snapshot of folders.
// Nothing here mutates its input. Every walk carries a visited set so that a
// corrupted parent graph (a cycle) terminates instead of looping.
package tree

import "doclib/internal/model"

func index(folders []model.Folder) map[string]model.Folder {
	byID := make(map[string]model.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	return byID
}

// PathToRoot returns the folders from the top of the tree down to folderID,
// excluding the implicit root. The walk stops at a Root parent, at a parent id
// that does not resolve, or when a folder repeats.
func PathToRoot(folderID string, folders []model.Folder) []model.Folder {
	if folderID == "" {
		return nil
	}
	byID := index(folders)
	seen := make(map[string]struct{})

	var reversed []model.Folder
	current := folderID
	for current != "" {
		if _, ok := seen[current]; ok {
			break
		}
		seen[current] = struct{}{}

		f, ok := byID[current]
		if !ok {
			break
		}
		reversed = append(reversed, f)
		current, _ = f.Parent.ID()
	}

	path := make([]model.Folder, len(reversed))
	for i, f := range reversed {
		path[len(reversed)-1-i] = f
	}
	return path
}

// Depth is the number of folders on the path from the root to folderID.
func Depth(folderID string, folders []model.Folder) int {
	return len(PathToRoot(folderID, folders))
}

// Children returns the direct children of parent in input order.
func Children(parent model.FolderRef, folders []model.Folder) []model.Folder {
	var out []model.Folder
	for _, f := range folders {
		if f.Parent == parent {
			out = append(out, f)
		}
	}
	return out
}

// DescendantClosure returns folderID together with every folder reachable from
// it through child links.
func DescendantClosure(folderID string, folders []model.Folder) map[string]struct{} {
	byParent := make(map[string][]string, len(folders))
	for _, f := range folders {
		if pid, ok := f.Parent.ID(); ok {
			byParent[pid] = append(byParent[pid], f.ID)
		}
	}

	closure := map[string]struct{}{folderID: {}}
	queue := []string{folderID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range byParent[id] {
			if _, ok := closure[child]; ok {
				continue
			}
			closure[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return closure
}

// IsDescendant reports whether candidate is ancestor itself or lies beneath it.
func IsDescendant(candidate, ancestor string, folders []model.Folder) bool {
	_, ok := DescendantClosure(ancestor, folders)[candidate]
	return ok
}

// Histogram counts documents per direct folder id. Root documents are not counted.
func Histogram(documents []model.Document) map[string]int {
	counts := make(map[string]int)
	for _, d := range documents {
		if id, ok := d.Folder.ID(); ok {
			counts[id]++
		}
	}
	return counts
}

// DocumentCountRecursive counts documents stored in folderID or any of its descendants.
func DocumentCountRecursive(folderID string, documents []model.Document, folders []model.Folder) int {
	return CountInClosure(DescendantClosure(folderID, folders), Histogram(documents))
}

// CountInClosure sums a precomputed histogram over a closure. Use it with one
// Histogram when counting several folders of the same snapshot.
func CountInClosure(closure map[string]struct{}, histogram map[string]int) int {
	total := 0
	for id := range closure {
		total += histogram[id]
	}
	return total
}
