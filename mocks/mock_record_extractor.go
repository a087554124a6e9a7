package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docval/internal/domain"
	"docval/internal/port"
)

// MockRecordExtractor is a mock implementation of port.RecordExtractor.
type MockRecordExtractor struct {
	mock.Mock
}

func (m *MockRecordExtractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedRecord), args.Error(1)
}
