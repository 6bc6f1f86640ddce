package upload

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclib/internal/domain"
	"doclib/internal/model"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestTypeFromFilename(t *testing.T) {
	tests := map[string]model.DocumentType{
		"Report.PDF":      model.TypePDF,
		"notes.md":        model.TypeMD,
		"archive.tar.gz":  model.TypeOther,
		"README":          model.TypeOther,
		"photo.jpeg":      model.TypeJPEG,
		"dir/budget.xlsx": model.TypeXLSX,
	}
	for name, want := range tests {
		assert.Equal(t, want, TypeFromFilename(name), name)
	}
}

func TestIntake_Accept(t *testing.T) {
	in := New(16)

	tests := []struct {
		name        string
		filename    string
		contentType string
		body        io.Reader
		size        int64
		wantErr     error
		check       func(t *testing.T, f File)
	}{
		{
			name:        "happy path",
			filename:    "hello.txt",
			contentType: "text/plain",
			body:        strings.NewReader("hello"),
			size:        5,
			check: func(t *testing.T, f File) {
				assert.Equal(t, "hello.txt", f.Name)
				assert.Equal(t, int64(5), f.Size)
				assert.Equal(t, model.TypeTXT, f.Type)
				require.NotNil(t, f.Content)
				assert.Equal(t, "data:text/plain;base64,aGVsbG8=", *f.Content)
			},
		},
		{
			name:        "content type from extension",
			filename:    "scan.pdf",
			contentType: "application/octet-stream",
			body:        strings.NewReader("%PDF"),
			size:        4,
			check: func(t *testing.T, f File) {
				assert.Equal(t, "application/pdf", f.ContentType)
				assert.True(t, strings.HasPrefix(*f.Content, "data:application/pdf;base64,"))
			},
		},
		{
			name:     "unknown size is measured",
			filename: "blob",
			body:     strings.NewReader("abc"),
			size:     -1,
			check: func(t *testing.T, f File) {
				assert.Equal(t, int64(3), f.Size)
				assert.Equal(t, model.TypeOther, f.Type)
				assert.Equal(t, "application/octet-stream", f.ContentType)
			},
		},
		{
			name:     "declared too large",
			filename: "big.zip",
			body:     strings.NewReader(""),
			size:     17,
			wantErr:  ErrTooLarge,
		},
		{
			name:     "body too large",
			filename: "big.zip",
			body:     strings.NewReader(strings.Repeat("x", 20)),
			size:     0,
			wantErr:  ErrTooLarge,
		},
		{
			name:     "missing name",
			filename: " ",
			body:     strings.NewReader("x"),
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "nil reader",
			filename: "a.txt",
			wantErr:  ErrReaderNil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := in.Accept(tt.filename, tt.contentType, tt.body, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			tt.check(t, f)
		})
	}
}

func TestIntake_ReadFailureKeepsFile(t *testing.T) {
	f, err := New(0).Accept("notes.md", "text/markdown", failingReader{}, 12)

	assert.ErrorIs(t, err, domain.ErrEncoding)
	var encErr *domain.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "notes.md", encErr.Name)
	assert.Nil(t, f.Content)
	assert.Equal(t, model.TypeMD, f.Type)
	assert.Equal(t, int64(12), f.Size)
}

func TestNew_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxBytes, New(-5).MaxBytes())
	assert.Equal(t, int64(1), New(1).MaxBytes())
}
