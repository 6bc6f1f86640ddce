package model

import "time"

// Folder is a named node in the folder tree. Parent is Root for top-level folders.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Parent    FolderRef `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
}

// Tag is a named label with a display color.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
