package validator

import (
	"time"

	"docval/internal/domain"
)

// ValidateDocument checks one record against a policy. Findings are
// collected in a fixed order (name, identification, vigency) and the status
// is the most severe finding, or OK when there are none. It has no side
// effects and depends on the clock only through now.
func ValidateDocument(rec *domain.ExtractedRecord, p *domain.DocumentPolicy, expectedName, expectedID string, now time.Time) domain.ValidationResult {
	kind := rec.Kind()

	findings := Reconcile(expectedName, expectedID, p.IDLabel, rec)
	if f := CheckVigency(kind, rec.IssueDate, p.MaxAgeFor(kind), now); f != nil {
		findings = append(findings, *f)
	}

	status := domain.StatusOK
	reasons := make([]string, 0, len(findings))
	for _, f := range findings {
		status = status.Max(f.Severity)
		reasons = append(reasons, f.Reason)
	}

	return domain.ValidationResult{
		SourceID:       rec.SourceID,
		DocumentKind:   kind,
		Status:         status,
		Reasons:        reasons,
		LegalName:      domain.Deref(rec.LegalName),
		Identification: domain.Deref(rec.Identification),
		IssueDate:      domain.Deref(rec.IssueDate),
		ExpiryDate:     domain.Deref(rec.ExpiryDate),
	}
}
