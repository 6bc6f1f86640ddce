package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"validation", NewValidationError("invalid document", errors.New("name: cannot be blank")), ErrValidation, "invalid document: name: cannot be blank"},
		{"not found", NewNotFoundError("document", "d1"), ErrNotFound, `document "d1" not found`},
		{"persistence", &PersistenceWriteError{Collection: "tags", Err: errors.New("disk full")}, ErrPersistence, "save tags: disk full"},
		{"encoding", &EncodingError{Name: "a.pdf", Err: errors.New("short read")}, ErrEncoding, "encode a.pdf: short read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
			assert.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestErrorsUnwrapCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &PersistenceWriteError{Collection: "documents", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}
