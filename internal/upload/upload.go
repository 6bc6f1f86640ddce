// Package upload turns a raw file handle into the fields of a new document:
// name, size, type tag and an inline data URL of its bytes.
package upload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"doclib/internal/domain"
	"doclib/internal/model"
)

// DefaultMaxBytes bounds a single upload when no limit is configured.
const DefaultMaxBytes int64 = 10 << 20

var (
	ErrReaderNil = errors.New("reader is nil")
	ErrTooLarge  = errors.New("file exceeds the upload limit")
)

// File is an accepted upload. Content is nil when the bytes could not be
// encoded; the upload is still usable without inline content.
type File struct {
	Name        string
	Size        int64
	Type        model.DocumentType
	ContentType string
	Content     *string
}

// Intake accepts uploads up to a size limit.
type Intake struct {
	maxBytes int64
}

// New creates an Intake. A non-positive limit selects DefaultMaxBytes.
func New(maxBytes int64) *Intake {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Intake{maxBytes: maxBytes}
}

// MaxBytes is the configured upload limit.
func (in *Intake) MaxBytes() int64 {
	return in.maxBytes
}

// TypeFromFilename derives the type tag from the file extension.
func TypeFromFilename(name string) model.DocumentType {
	return model.ParseDocumentType(filepath.Ext(name))
}

// Accept reads r and encodes it. Oversized or unnamed uploads are rejected
// with a ValidationError. A read failure is not a rejection: the File is
// returned without content together with an EncodingError the caller may log.
func (in *Intake) Accept(name, contentType string, r io.Reader, size int64) (File, error) {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return File{}, domain.NewValidationError("file name is required", nil)
	}
	if r == nil {
		return File{}, domain.NewValidationError("file is required", ErrReaderNil)
	}
	if size > in.maxBytes {
		return File{}, domain.NewValidationError(fmt.Sprintf("%s is %d bytes", name, size), ErrTooLarge)
	}

	f := File{
		Name:        name,
		Size:        size,
		Type:        TypeFromFilename(name),
		ContentType: mediaType(name, contentType),
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, in.maxBytes+1))
	if err != nil {
		if f.Size < 0 {
			f.Size = 0
		}
		return f, &domain.EncodingError{Name: name, Err: err}
	}
	if n > in.maxBytes {
		return File{}, domain.NewValidationError(fmt.Sprintf("%s is larger than %d bytes", name, in.maxBytes), ErrTooLarge)
	}
	if f.Size <= 0 {
		f.Size = n
	}

	content := DataURL(f.ContentType, buf.Bytes())
	f.Content = &content
	return f, nil
}

// DataURL renders b as a base64 data URL.
func DataURL(contentType string, b []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

func mediaType(name, declared string) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return mt
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		mt, _, _ := mime.ParseMediaType(byExt)
		return mt
	}
	return "application/octet-stream"
}
