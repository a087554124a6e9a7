package service

import (
	"docval/internal/domain"
	"docval/internal/port"
)

// CountryPolicies lists the person types configured for one country.
type CountryPolicies struct {
	Country     string          `json:"country"`
	PersonTypes []PersonTypeRef `json:"person_types"`
}

// PersonTypeRef is a person type with its display label.
type PersonTypeRef struct {
	Value domain.PersonType `json:"value"`
	Label string            `json:"label"`
}

// PolicyService defines the policy catalog contract.
type PolicyService interface {
	ListCountries() []CountryPolicies
	Get(country string, personType domain.PersonType) (*domain.DocumentPolicy, error)
}

type policyService struct {
	catalog port.PolicyCatalog
}

// NewPolicyService creates a new PolicyService implementation.
func NewPolicyService(catalog port.PolicyCatalog) PolicyService {
	return &policyService{catalog: catalog}
}

func (s *policyService) ListCountries() []CountryPolicies {
	var out []CountryPolicies
	index := make(map[string]int)
	for _, e := range s.catalog.Entries() {
		i, ok := index[e.Key.Country]
		if !ok {
			i = len(out)
			index[e.Key.Country] = i
			out = append(out, CountryPolicies{Country: e.Key.Country})
		}
		out[i].PersonTypes = append(out[i].PersonTypes, PersonTypeRef{
			Value: e.Key.PersonType,
			Label: e.Key.PersonType.Label(),
		})
	}
	if out == nil {
		out = []CountryPolicies{}
	}
	return out
}

func (s *policyService) Get(country string, personType domain.PersonType) (*domain.DocumentPolicy, error) {
	return s.catalog.Lookup(country, personType)
}
