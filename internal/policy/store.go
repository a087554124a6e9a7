package policy

import (
	"errors"
	"fmt"
	"strings"

	"docval/internal/domain"
)

// PolicyNotFoundError is returned by Lookup for an unknown key. It unwraps to
// domain.ErrPolicyNotFound.
type PolicyNotFoundError struct {
	Key domain.PolicyKey
}

func (e *PolicyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s / %s", domain.ErrPolicyNotFound, e.Key.Country, e.Key.PersonType.Label())
}

func (e *PolicyNotFoundError) Unwrap() error {
	return domain.ErrPolicyNotFound
}

// Store is an immutable table of document policies keyed by country and
// person type. It is safe for concurrent use.
type Store struct {
	policies  map[domain.PolicyKey]*domain.DocumentPolicy
	countries []string
}

// New validates entries and builds a Store. Duplicate keys, empty id labels,
// duplicate required kinds and non-positive ages are rejected.
func New(entries []domain.PolicyEntry) (*Store, error) {
	s := &Store{policies: make(map[domain.PolicyKey]*domain.DocumentPolicy, len(entries))}
	seenCountry := make(map[string]bool)

	var errs []error
	for i := range entries {
		e := &entries[i]
		if err := validateEntry(e); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := s.policies[e.Key]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate entry for %s / %s", domain.ErrInvalidPolicy, e.Key.Country, e.Key.PersonType))
			continue
		}
		s.policies[e.Key] = e.Policy.Clone()
		if !seenCountry[e.Key.Country] {
			seenCountry[e.Key.Country] = true
			s.countries = append(s.countries, e.Key.Country)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Default returns a Store holding the built-in table. It panics if the
// built-in table is invalid.
func Default() *Store {
	s, err := New(BuiltinEntries())
	if err != nil {
		panic(fmt.Sprintf("policy: invalid built-in table: %v", err))
	}
	return s
}

func validateEntry(e *domain.PolicyEntry) error {
	where := fmt.Sprintf("%s / %s", e.Key.Country, e.Key.PersonType)
	if strings.TrimSpace(e.Key.Country) == "" {
		return fmt.Errorf("%w: empty country", domain.ErrInvalidPolicy)
	}
	if !e.Key.PersonType.Valid() {
		return fmt.Errorf("%w: %s: unknown person type", domain.ErrInvalidPolicy, where)
	}
	if strings.TrimSpace(e.Policy.IDLabel) == "" {
		return fmt.Errorf("%w: %s: empty id label", domain.ErrInvalidPolicy, where)
	}
	seen := make(map[string]bool, len(e.Policy.RequiredKinds))
	for _, kind := range e.Policy.RequiredKinds {
		if strings.TrimSpace(kind) == "" {
			return fmt.Errorf("%w: %s: empty required kind", domain.ErrInvalidPolicy, where)
		}
		if seen[kind] {
			return fmt.Errorf("%w: %s: required kind %q listed twice", domain.ErrInvalidPolicy, where, kind)
		}
		seen[kind] = true
	}
	for kind, days := range e.Policy.MaxAgeDays {
		if days <= 0 {
			return fmt.Errorf("%w: %s: max age for %q must be positive, got %d", domain.ErrInvalidPolicy, where, kind, days)
		}
	}
	return nil
}

// Lookup returns a copy of the policy for the given country and person type.
func (s *Store) Lookup(country string, personType domain.PersonType) (*domain.DocumentPolicy, error) {
	key := domain.PolicyKey{Country: country, PersonType: personType}
	p, ok := s.policies[key]
	if !ok {
		return nil, &PolicyNotFoundError{Key: key}
	}
	return p.Clone(), nil
}

// Countries returns the configured countries in table order.
func (s *Store) Countries() []string {
	return append([]string(nil), s.countries...)
}

// PersonTypes returns the person types configured for a country.
func (s *Store) PersonTypes(country string) []domain.PersonType {
	var out []domain.PersonType
	for _, pt := range domain.PersonTypes() {
		if _, ok := s.policies[domain.PolicyKey{Country: country, PersonType: pt}]; ok {
			out = append(out, pt)
		}
	}
	return out
}

// Entries returns every policy in table order.
func (s *Store) Entries() []domain.PolicyEntry {
	var out []domain.PolicyEntry
	for _, country := range s.countries {
		for _, pt := range s.PersonTypes(country) {
			key := domain.PolicyKey{Country: country, PersonType: pt}
			out = append(out, domain.PolicyEntry{Key: key, Policy: *s.policies[key].Clone()})
		}
	}
	return out
}
