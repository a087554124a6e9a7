package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PersonType is the legal classification of a business partner.
type PersonType string

const (
	PersonTypeNatural PersonType = "natural"
	PersonTypeLegal   PersonType = "legal"
)

// personTypeLabels holds the display labels used by operators.
var personTypeLabels = map[PersonType]string{
	PersonTypeNatural: "Persona natural",
	PersonTypeLegal:   "Persona jurídica",
}

// personTypeAliases maps accepted spellings (lowercased) to a PersonType.
var personTypeAliases = map[string]PersonType{
	"natural":          PersonTypeNatural,
	"persona natural":  PersonTypeNatural,
	"legal":            PersonTypeLegal,
	"juridica":         PersonTypeLegal,
	"jurídica":         PersonTypeLegal,
	"persona juridica": PersonTypeLegal,
	"persona jurídica": PersonTypeLegal,
}

// PersonTypes lists all person types in display order.
func PersonTypes() []PersonType {
	return []PersonType{PersonTypeNatural, PersonTypeLegal}
}

// ParsePersonType accepts either the canonical value or the display label.
func ParsePersonType(s string) (PersonType, error) {
	pt, ok := personTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPersonType, s)
	}
	return pt, nil
}

// Label returns the human-readable label, e.g. "Persona natural".
func (p PersonType) Label() string {
	if l, ok := personTypeLabels[p]; ok {
		return l
	}
	return string(p)
}

// Valid reports whether p is a known person type.
func (p PersonType) Valid() bool {
	_, ok := personTypeLabels[p]
	return ok
}

// ValidationStatus is the severity of a validation outcome. Values are
// totally ordered: StatusOK < StatusWarning < StatusError.
type ValidationStatus int

const (
	StatusOK ValidationStatus = iota
	StatusWarning
	StatusError
)

var statusNames = [...]string{"OK", "WARNING", "ERROR"}

func (s ValidationStatus) String() string {
	if s < StatusOK || s > StatusError {
		return fmt.Sprintf("ValidationStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Max returns the more severe of s and other.
func (s ValidationStatus) Max(other ValidationStatus) ValidationStatus {
	if other > s {
		return other
	}
	return s
}

// MaxStatus reduces a list of statuses to the most severe one. An empty
// list reduces to StatusOK.
func MaxStatus(statuses ...ValidationStatus) ValidationStatus {
	out := StatusOK
	for _, s := range statuses {
		out = out.Max(s)
	}
	return out
}

// ParseValidationStatus is the inverse of String.
func ParseValidationStatus(s string) (ValidationStatus, error) {
	for i, name := range statusNames {
		if strings.EqualFold(s, name) {
			return ValidationStatus(i), nil
		}
	}
	return StatusOK, fmt.Errorf("unknown validation status %q", s)
}

func (s ValidationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ValidationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseValidationStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
