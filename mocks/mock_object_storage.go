package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docval/internal/port"
)

var (
	_ port.ObjectStorage   = (*MockObjectStorage)(nil)
	_ port.TextExtractor   = (*MockTextExtractor)(nil)
	_ port.RecordExtractor = (*MockRecordExtractor)(nil)
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

// Download returns the []byte set with Return, or nil with the error.
func (m *MockObjectStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
