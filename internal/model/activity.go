package model

import "time"

// ActivityKind classifies an audit record.
type ActivityKind string

const (
	ActivityUpload ActivityKind = "upload"
	ActivityEdit   ActivityKind = "edit"
	ActivityDelete ActivityKind = "delete"
	ActivityShare  ActivityKind = "share"
	ActivityMove   ActivityKind = "move"
	ActivityRename ActivityKind = "rename"
	ActivityTag    ActivityKind = "tag"
)

// Valid reports whether k is a known activity kind.
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityUpload, ActivityEdit, ActivityDelete, ActivityShare, ActivityMove, ActivityRename, ActivityTag:
		return true
	}
	return false
}

// ActivityLogEntry is an immutable audit record.
type ActivityLogEntry struct {
	ID          string       `json:"id"`
	Kind        ActivityKind `json:"type"`
	DocumentID  string       `json:"documentId,omitempty"`
	FolderID    string       `json:"folderId,omitempty"`
	UserID      string       `json:"userId"`
	Timestamp   time.Time    `json:"timestamp"`
	Description string       `json:"description"`
}
