package model

import (
	"slices"
	"strings"
	"time"
)

// DocumentType is the closed set of recognized file extensions.
type DocumentType string

const (
	TypePDF   DocumentType = "pdf"
	TypeDOC   DocumentType = "doc"
	TypeDOCX  DocumentType = "docx"
	TypeXLS   DocumentType = "xls"
	TypeXLSX  DocumentType = "xlsx"
	TypePPT   DocumentType = "ppt"
	TypePPTX  DocumentType = "pptx"
	TypeTXT   DocumentType = "txt"
	TypeMD    DocumentType = "md"
	TypeJPG   DocumentType = "jpg"
	TypeJPEG  DocumentType = "jpeg"
	TypePNG   DocumentType = "png"
	TypeGIF   DocumentType = "gif"
	TypeZIP   DocumentType = "zip"
	TypeOther DocumentType = "other"
)

var documentTypes = []DocumentType{
	TypePDF, TypeDOC, TypeDOCX, TypeXLS, TypeXLSX, TypePPT, TypePPTX, TypeTXT,
	TypeMD, TypeJPG, TypeJPEG, TypePNG, TypeGIF, TypeZIP, TypeOther,
}

// DocumentTypes returns every known type tag, "other" last.
func DocumentTypes() []DocumentType {
	return slices.Clone(documentTypes)
}

// Valid reports whether t belongs to the closed set.
func (t DocumentType) Valid() bool {
	return slices.Contains(documentTypes, t)
}

// ParseDocumentType maps an extension (with or without the leading dot, any case)
// to its type tag, falling back to TypeOther.
func ParseDocumentType(ext string) DocumentType {
	t := DocumentType(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if t == "" || !t.Valid() {
		return TypeOther
	}
	return t
}

// AccessLevel is the permission carried by a sharing grant.
type AccessLevel string

const (
	AccessOwner      AccessLevel = "owner"
	AccessEditor     AccessLevel = "editor"
	AccessViewer     AccessLevel = "viewer"
	AccessRestricted AccessLevel = "restricted"
)

// Valid reports whether l is a known access level.
func (l AccessLevel) Valid() bool {
	switch l {
	case AccessOwner, AccessEditor, AccessViewer, AccessRestricted:
		return true
	}
	return false
}

// SharingGrant gives a user access to a document.
type SharingGrant struct {
	UserID      string      `json:"userId"`
	AccessLevel AccessLevel `json:"accessLevel"`
}

// Document is a stored file record. Tags are held by id and resolved against
// the live tag collection when a view is built.
type Document struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        DocumentType   `json:"type"`
	Size        int64          `json:"size"`
	Folder      FolderRef      `json:"folderId"`
	TagIDs      []string       `json:"tagIds"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	CreatedBy   string         `json:"createdBy"`
	SharedWith  []SharingGrant `json:"sharedWith"`
	Description string         `json:"description,omitempty"`
	Content     *string        `json:"content,omitempty"`
	IsFavorite  bool           `json:"isFavorite"`
	Version     int            `json:"version"`
}

// Clone returns a deep copy so callers never alias store-owned slices.
func (d Document) Clone() Document {
	d.TagIDs = slices.Clone(d.TagIDs)
	d.SharedWith = slices.Clone(d.SharedWith)
	if d.Content != nil {
		c := *d.Content
		d.Content = &c
	}
	return d
}

// HasTag reports whether the document references tagID.
func (d Document) HasTag(tagID string) bool {
	return slices.Contains(d.TagIDs, tagID)
}
