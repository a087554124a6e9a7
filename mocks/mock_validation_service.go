package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docval/internal/domain"
	"docval/internal/service"
)

// MockValidationService is a mock implementation of service.ValidationService.
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateFiles(ctx context.Context, params service.ValidationParams, files []service.SourceFile) (*service.ValidationOutcome, error) {
	args := m.Called(ctx, params, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidationOutcome), args.Error(1)
}

func (m *MockValidationService) ValidateObjects(ctx context.Context, params service.ValidationParams, keys []string) (*service.ValidationOutcome, error) {
	args := m.Called(ctx, params, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidationOutcome), args.Error(1)
}

func (m *MockValidationService) ValidateRecords(ctx context.Context, params service.ValidationParams, records []domain.ExtractedRecord) (*service.ValidationOutcome, error) {
	args := m.Called(ctx, params, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidationOutcome), args.Error(1)
}
