package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnknownDocumentKind is reported for records whose kind was not detected.
const UnknownDocumentKind = "Unknown"

// PolicyKey identifies a document policy.
type PolicyKey struct {
	Country    string     `json:"country" yaml:"country"`
	PersonType PersonType `json:"person_type" yaml:"person_type"`
}

// DocumentPolicy describes which documents a partner must submit and how
// old each kind of document may be.
type DocumentPolicy struct {
	IDLabel       string         `json:"id_label" yaml:"id_label"`
	RequiredKinds []string       `json:"required_kinds" yaml:"required_kinds"`
	MaxAgeDays    map[string]int `json:"max_age_days" yaml:"max_age_days"`
}

// MaxAgeFor returns the maximum allowed age for a document kind, or nil when
// the kind has no vigency rule.
func (p *DocumentPolicy) MaxAgeFor(kind string) *int {
	days, ok := p.MaxAgeDays[kind]
	if !ok {
		return nil
	}
	return &days
}

// Clone returns a deep copy of the policy.
func (p *DocumentPolicy) Clone() *DocumentPolicy {
	out := &DocumentPolicy{
		IDLabel:       p.IDLabel,
		RequiredKinds: append([]string(nil), p.RequiredKinds...),
		MaxAgeDays:    make(map[string]int, len(p.MaxAgeDays)),
	}
	for k, v := range p.MaxAgeDays {
		out.MaxAgeDays[k] = v
	}
	return out
}

// PolicyEntry binds a policy to its lookup key.
type PolicyEntry struct {
	Key    PolicyKey      `json:"key"`
	Policy DocumentPolicy `json:"policy"`
}

// ExtractedRecord is the structured view of one submitted file. Every field
// other than SourceID may be nil, empty or malformed.
type ExtractedRecord struct {
	SourceID       string  `json:"source_id"`
	DocumentKind   *string `json:"tipo_documento"`
	LegalName      *string `json:"razon_social"`
	Identification *string `json:"identificacion"`
	IssueDate      *string `json:"fecha_emision"`
	ExpiryDate     *string `json:"fecha_vencimiento"`
}

// Kind returns the trimmed document kind, or UnknownDocumentKind when blank.
func (r *ExtractedRecord) Kind() string {
	if k := Deref(r.DocumentKind); k != "" {
		return k
	}
	return UnknownDocumentKind
}

// Deref returns the trimmed value of s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Finding is a single issue detected on a document.
type Finding struct {
	Severity ValidationStatus `json:"severity"`
	Reason   string           `json:"reason"`
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	SourceID       string           `json:"source_id"`
	DocumentKind   string           `json:"document_kind"`
	Status         ValidationStatus `json:"status"`
	Reasons        []string         `json:"reasons"`
	LegalName      string           `json:"legal_name"`
	Identification string           `json:"identification"`
	IssueDate      string           `json:"issue_date"`
	ExpiryDate     string           `json:"expiry_date"`
}

// BatchVerdict is the aggregate outcome across one validation run.
type BatchVerdict struct {
	MissingRequiredKinds []string         `json:"missing_required_kinds"`
	HasError             bool             `json:"has_error"`
	HasWarning           bool             `json:"has_warning"`
	Overall              ValidationStatus `json:"overall"`
}

// Report bundles per-document results with the verdict for one run.
type Report struct {
	RunID       uuid.UUID          `json:"run_id"`
	Country     string             `json:"country"`
	PersonType  PersonType         `json:"person_type"`
	IDLabel     string             `json:"id_label"`
	Results     []ValidationResult `json:"results"`
	Verdict     BatchVerdict       `json:"verdict"`
	ValidatedAt time.Time          `json:"validated_at"`
}

// Extraction stages reported in FileFailure.
const (
	StageRead    = "read"
	StageText    = "text_extraction"
	StageExtract = "record_extraction"
)

// FileFailure records a file that could not be turned into an ExtractedRecord.
type FileFailure struct {
	SourceID string `json:"source_id"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}
