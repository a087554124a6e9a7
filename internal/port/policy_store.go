package port

import "docval/internal/domain"

// PolicyStore resolves the document policy for a country and person type.
type PolicyStore interface {
	Lookup(country string, personType domain.PersonType) (*domain.DocumentPolicy, error)
}

// PolicyCatalog is a PolicyStore that can also enumerate its policies.
type PolicyCatalog interface {
	PolicyStore
	Countries() []string
	Entries() []domain.PolicyEntry
}
