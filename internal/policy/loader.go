package policy

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"docval/internal/domain"
)

// fileFormat is the on-disk layout of a policy table:
//
//	policies:
//	  - country: Colombia
//	    person_type: natural
//	    id_label: CC / NIT
//	    required_kinds: [RUT, Documento de identidad]
//	    max_age_days: {RUT: 365}
type fileFormat struct {
	Policies []fileEntry `yaml:"policies"`
}

type fileEntry struct {
	Country       string         `yaml:"country"`
	PersonType    string         `yaml:"person_type"`
	IDLabel       string         `yaml:"id_label"`
	RequiredKinds []string       `yaml:"required_kinds"`
	MaxAgeDays    map[string]int `yaml:"max_age_days"`
}

// Parse decodes a YAML policy table and validates it into a Store.
func Parse(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ff fileFormat
	if err := dec.Decode(&ff); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty policy file", domain.ErrInvalidPolicy)
		}
		return nil, fmt.Errorf("decoding policy file: %w", err)
	}
	if len(ff.Policies) == 0 {
		return nil, fmt.Errorf("%w: policy file has no entries", domain.ErrInvalidPolicy)
	}

	entries := make([]domain.PolicyEntry, 0, len(ff.Policies))
	for i, fe := range ff.Policies {
		pt, err := domain.ParsePersonType(fe.PersonType)
		if err != nil {
			return nil, fmt.Errorf("policy entry %d (%s): %w", i, fe.Country, err)
		}
		entries = append(entries, domain.PolicyEntry{
			Key: domain.PolicyKey{Country: fe.Country, PersonType: pt},
			Policy: domain.DocumentPolicy{
				IDLabel:       fe.IDLabel,
				RequiredKinds: fe.RequiredKinds,
				MaxAgeDays:    fe.MaxAgeDays,
			},
		})
	}
	return New(entries)
}

// LoadFile reads a policy table from path. An empty path yields the
// built-in table.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading policy file %s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the store in the same layout Parse reads.
func Marshal(s *Store) ([]byte, error) {
	var ff fileFormat
	for _, e := range s.Entries() {
		ff.Policies = append(ff.Policies, fileEntry{
			Country:       e.Key.Country,
			PersonType:    string(e.Key.PersonType),
			IDLabel:       e.Policy.IDLabel,
			RequiredKinds: e.Policy.RequiredKinds,
			MaxAgeDays:    e.Policy.MaxAgeDays,
		})
	}
	return yaml.Marshal(&ff)
}
