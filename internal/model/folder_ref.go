package model

import (
	"bytes"
	"encoding/json"
)

// FolderRef identifies the folder a record lives in. The zero value is Root,
// the implicit top of the tree that is never stored as a Folder.
type FolderRef struct {
	id string
}

// Root is the implicit root folder.
var Root = FolderRef{}

// In references the folder with the given id. An empty id is Root.
func In(id string) FolderRef {
	return FolderRef{id: id}
}

// IsRoot reports whether r is the implicit root.
func (r FolderRef) IsRoot() bool {
	return r.id == ""
}

// ID returns the referenced folder id and false for Root.
func (r FolderRef) ID() (string, bool) {
	return r.id, r.id != ""
}

func (r FolderRef) String() string {
	if r.IsRoot() {
		return "root"
	}
	return r.id
}

// MarshalJSON encodes Root as null and any other folder as its id.
func (r FolderRef) MarshalJSON() ([]byte, error) {
	if r.IsRoot() {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts null, "" or a folder id.
func (r *FolderRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Root
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = In(id)
	return nil
}
