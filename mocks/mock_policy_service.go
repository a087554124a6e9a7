package mocks

import (
	"github.com/stretchr/testify/mock"

	"docval/internal/domain"
	"docval/internal/service"
)

// MockPolicyService is a mock implementation of service.PolicyService.
type MockPolicyService struct {
	mock.Mock
}

func (m *MockPolicyService) ListCountries() []service.CountryPolicies {
	args := m.Called()
	return args.Get(0).([]service.CountryPolicies)
}

func (m *MockPolicyService) Get(country string, personType domain.PersonType) (*domain.DocumentPolicy, error) {
	args := m.Called(country, personType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentPolicy), args.Error(1)
}
