package mocks

import (
	"context"

	"doclib/internal/model"
	"doclib/internal/service"
	"doclib/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) ListDocuments(ctx context.Context, q service.DocumentQuery) ([]service.DocumentView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DocumentView), args.Error(1)
}

func (m *MockLibraryService) GetDocument(ctx context.Context, id string) (*service.DocumentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockLibraryService) UploadDocument(ctx context.Context, req service.UploadRequest) (*service.DocumentView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockLibraryService) UpdateDocument(ctx context.Context, id string, patch store.DocumentPatch) (*service.DocumentView, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockLibraryService) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLibraryService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryService) ShareDocument(ctx context.Context, id, userID string, level model.AccessLevel) (*service.DocumentView, error) {
	args := m.Called(ctx, id, userID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockLibraryService) ShareCandidates(ctx context.Context, id string) ([]model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockLibraryService) ListFolders(ctx context.Context, parent model.FolderRef) ([]service.FolderSummary, error) {
	args := m.Called(ctx, parent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FolderSummary), args.Error(1)
}

func (m *MockLibraryService) GetFolder(ctx context.Context, id string) (*service.FolderView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FolderView), args.Error(1)
}

func (m *MockLibraryService) CreateFolder(ctx context.Context, draft store.FolderDraft) (*model.Folder, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockLibraryService) UpdateFolder(ctx context.Context, id string, patch store.FolderPatch) (*model.Folder, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockLibraryService) DeleteFolder(ctx context.Context, id string) (*store.FolderDeletion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.FolderDeletion), args.Error(1)
}

func (m *MockLibraryService) ListTags(ctx context.Context) ([]service.TagSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TagSummary), args.Error(1)
}

func (m *MockLibraryService) CreateTag(ctx context.Context, draft store.TagDraft) (*model.Tag, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockLibraryService) DeleteTag(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLibraryService) RecentActivity(ctx context.Context, limit int) ([]model.ActivityLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLogEntry), args.Error(1)
}

func (m *MockLibraryService) SearchUsers(ctx context.Context, q string) ([]model.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockLibraryService) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLibraryService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
