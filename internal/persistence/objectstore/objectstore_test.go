package objectstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doclib/internal/persistence"
	"doclib/internal/storage"
	storeMocks "doclib/internal/storage/mocks"
)

func TestGateway_ObjectKey(t *testing.T) {
	g := New(new(storeMocks.MockStorage), "doclib")
	assert.Equal(t, "collections/doclib/documents.json", g.ObjectKey(persistence.Documents))
}

func TestGateway_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(m *storeMocks.MockStorage)
		want       []byte
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(m *storeMocks.MockStorage) {
				m.On("Get", ctx, "collections/doclib/tags.json").
					Return(io.NopCloser(strings.NewReader(`[]`)), storage.ObjectInfo{Size: 2}, nil)
			},
			want: []byte(`[]`),
		},
		{
			name: "missing object",
			setupMocks: func(m *storeMocks.MockStorage) {
				m.On("Get", ctx, "collections/doclib/tags.json").
					Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)
			},
			wantErr: persistence.ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(m *storeMocks.MockStorage) {
				m.On("Get", ctx, mock.Anything).
					Return(nil, storage.ObjectInfo{}, errors.New("timeout"))
			},
			wantErrMsg: "get tags: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(storeMocks.MockStorage)
			tt.setupMocks(m)
			g := New(m, "doclib")

			got, err := g.Load(ctx, persistence.Tags)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestGateway_Save(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`[{"id":"tag-1"}]`)

	m := new(storeMocks.MockStorage)
	m.On("Put", ctx, "collections/p/tags.json", mock.MatchedBy(func(r *bytes.Reader) bool {
		return r.Len() == len(payload)
	}), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
		Metadata:    map[string]string{"collection": "tags"},
	}).Return(storage.ObjectInfo{Key: "collections/p/tags.json"}, nil).Once()
	m.On("Put", ctx, "collections/p/activity.json", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, errors.New("quota"))

	g := New(m, "p")
	require.NoError(t, g.Save(ctx, persistence.Tags, payload))
	assert.EqualError(t, g.Save(ctx, persistence.Activity, payload), "put activity: quota")
	m.AssertExpectations(t)
}

func TestGateway_Ping(t *testing.T) {
	m := new(storeMocks.MockStorage)
	m.On("Ping", mock.Anything).Return(nil)
	assert.NoError(t, New(m, "p").Ping(context.Background()))
}
