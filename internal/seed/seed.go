// Package seed holds the demo dataset used when nothing has been persisted yet.
package seed

import (
	"time"

	"doclib/internal/model"
)

// CurrentUserID is the acting user of the demo dataset.
const CurrentUserID = "user-1"

func at(day, hour int) time.Time {
	return time.Date(2026, time.January, day, hour, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// Users returns the demo user directory.
func Users() []model.User {
	return []model.User{
		{ID: "user-1", Name: "Alex Morgan", Email: "alex.morgan@example.com", Role: model.RoleAdmin, Department: "Operations", Title: "Operations Lead", Status: model.PresenceOnline, LastActive: ptr(at(20, 9))},
		{ID: "user-2", Name: "Priya Raman", Email: "priya.raman@example.com", Role: model.RoleUser, Department: "Legal", Title: "Counsel", Status: model.PresenceAway, LastActive: ptr(at(19, 17))},
		{ID: "user-3", Name: "Tomas Weber", Email: "tomas.weber@example.com", Role: model.RoleUser, Department: "Finance", Title: "Controller", Status: model.PresenceOffline, LastActive: ptr(at(15, 11))},
		{ID: "user-4", Name: "Jordan Lee", Email: "jordan.lee@example.com", Role: model.RoleUser, Department: "Engineering", Title: "Staff Engineer", Status: model.PresenceOnline},
		{ID: "user-5", Name: "Sam Okafor", Email: "sam.okafor@example.com", Role: model.RoleGuest, Department: "Marketing", Title: "Contractor"},
	}
}

// Tags returns the demo tags.
func Tags() []model.Tag {
	return []model.Tag{
		{ID: "tag-1", Name: "Important", Color: "#ef4444"},
		{ID: "tag-2", Name: "Contract", Color: "#3b82f6"},
		{ID: "tag-3", Name: "Finance", Color: "#10b981"},
		{ID: "tag-4", Name: "Draft", Color: "#f59e0b"},
		{ID: "tag-5", Name: "Design", Color: "#8b5cf6"},
		{ID: "tag-6", Name: "Archive", Color: "#64748b"},
	}
}

// Folders returns the demo folder tree:
//
//	Legal/Contracts, Finance/2026/Q1, Engineering, Marketing
func Folders() []model.Folder {
	folder := func(id, name string, parent model.FolderRef, day int, color string) model.Folder {
		return model.Folder{
			ID: id, Name: name, Parent: parent,
			CreatedAt: at(day, 8), UpdatedAt: at(day, 8),
			CreatedBy: CurrentUserID, Color: color, Icon: "folder",
		}
	}
	return []model.Folder{
		folder("folder-1", "Legal", model.Root, 2, "#3b82f6"),
		folder("folder-2", "Contracts", model.In("folder-1"), 2, "#3b82f6"),
		folder("folder-3", "Finance", model.Root, 3, "#10b981"),
		folder("folder-4", "2026", model.In("folder-3"), 3, "#10b981"),
		folder("folder-5", "Q1", model.In("folder-4"), 4, "#10b981"),
		folder("folder-6", "Engineering", model.Root, 5, "#8b5cf6"),
		folder("folder-7", "Marketing", model.Root, 6, "#ec4899"),
	}
}

// Documents returns the demo documents.
func Documents() []model.Document {
	return []model.Document{
		{
			ID: "doc-1", Name: "Master Services Agreement.pdf", Type: model.TypePDF, Size: 482_304,
			Folder: model.In("folder-2"), TagIDs: []string{"tag-1", "tag-2"},
			CreatedAt: at(7, 10), UpdatedAt: at(12, 14), CreatedBy: "user-2",
			SharedWith: []model.SharingGrant{{UserID: "user-1", AccessLevel: model.AccessEditor}},
			Description: "Signed MSA with the hosting vendor", Version: 3,
		},
		{
			ID: "doc-2", Name: "Q1 Budget.xlsx", Type: model.TypeXLSX, Size: 96_512,
			Folder: model.In("folder-5"), TagIDs: []string{"tag-3", "tag-4"},
			CreatedAt: at(8, 9), UpdatedAt: at(18, 16), CreatedBy: "user-3",
			Description: "Quarterly budget forecast", IsFavorite: true, Version: 5,
		},
		{
			ID: "doc-3", Name: "Architecture Overview.png", Type: model.TypePNG, Size: 1_245_184,
			Folder: model.In("folder-6"), TagIDs: []string{"tag-5"},
			CreatedAt: at(9, 11), UpdatedAt: at(9, 11), CreatedBy: "user-4",
			Description: "System context diagram", Version: 1,
		},
		{
			ID: "doc-4", Name: "Brand Guidelines.pptx", Type: model.TypePPTX, Size: 3_145_728,
			Folder: model.In("folder-7"), TagIDs: []string{"tag-5", "tag-1"},
			CreatedAt: at(10, 13), UpdatedAt: at(16, 10), CreatedBy: "user-5",
			SharedWith: []model.SharingGrant{
				{UserID: "user-1", AccessLevel: model.AccessViewer},
				{UserID: "user-4", AccessLevel: model.AccessViewer},
			},
			Version: 2,
		},
		{
			ID: "doc-5", Name: "Onboarding Checklist.md", Type: model.TypeMD, Size: 4_096,
			Folder: model.Root, TagIDs: []string{"tag-4"},
			CreatedAt: at(11, 15), UpdatedAt: at(19, 9), CreatedBy: CurrentUserID,
			Description: "Steps for new hires", IsFavorite: true, Version: 4,
		},
		{
			ID: "doc-6", Name: "NDA Template.docx", Type: model.TypeDOCX, Size: 38_912,
			Folder: model.In("folder-1"), TagIDs: []string{"tag-2"},
			CreatedAt: at(12, 10), UpdatedAt: at(12, 10), CreatedBy: "user-2",
			Version: 1,
		},
		{
			ID: "doc-7", Name: "2025 Statements.zip", Type: model.TypeZIP, Size: 10_485_760,
			Folder: model.In("folder-4"), TagIDs: []string{"tag-3", "tag-6"},
			CreatedAt: at(13, 12), UpdatedAt: at(13, 12), CreatedBy: "user-3",
			Description: "Archived monthly statements", Version: 1,
		},
		{
			ID: "doc-8", Name: "meeting-notes.txt", Type: model.TypeTXT, Size: 2_048,
			Folder: model.Root,
			CreatedAt: at(14, 16), UpdatedAt: at(17, 8), CreatedBy: CurrentUserID,
			Version: 2,
		},
	}
}

// Activity returns the demo activity log, most recent first.
func Activity() []model.ActivityLogEntry {
	return []model.ActivityLogEntry{
		{ID: "log-4", Kind: model.ActivityEdit, DocumentID: "doc-5", UserID: CurrentUserID, Timestamp: at(19, 9), Description: "Updated Onboarding Checklist.md"},
		{ID: "log-3", Kind: model.ActivityEdit, DocumentID: "doc-2", UserID: "user-3", Timestamp: at(18, 16), Description: "Updated Q1 Budget.xlsx"},
		{ID: "log-2", Kind: model.ActivityShare, DocumentID: "doc-4", UserID: "user-5", Timestamp: at(16, 10), Description: "Shared Brand Guidelines.pptx with Jordan Lee"},
		{ID: "log-1", Kind: model.ActivityUpload, DocumentID: "doc-1", UserID: "user-2", Timestamp: at(7, 10), Description: "Uploaded Master Services Agreement.pdf"},
	}
}

// Dataset returns a fresh copy of every demo collection.
func Dataset() model.Collections {
	return model.Collections{
		Documents: Documents(),
		Folders:   Folders(),
		Tags:      Tags(),
		Activity:  Activity(),
	}
}

// Empty returns collections with nothing in them, used when demo data is disabled.
func Empty() model.Collections {
	return model.Collections{
		Documents: []model.Document{},
		Folders:   []model.Folder{},
		Tags:      []model.Tag{},
		Activity:  []model.ActivityLogEntry{},
	}
}
