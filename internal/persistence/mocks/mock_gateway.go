package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doclib/internal/persistence"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Load(ctx context.Context, key persistence.CollectionKey) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGateway) Save(ctx context.Context, key persistence.CollectionKey, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func (m *MockGateway) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
