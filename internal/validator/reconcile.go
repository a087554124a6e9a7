package validator

import (
	"fmt"
	"strings"

	"docval/internal/domain"
)

// Reconciliation reasons.
const (
	ReasonNameNotDetected = "name/legal-name not detected, requires manual review."
	ReasonNameMismatch    = "legal name does not match expected value."
	ReasonIDNotDetected   = "identification not detected, requires manual review."
	reasonIDMismatchFmt   = "%s does not match expected value."
)

// IDMismatchReason returns the mismatch reason for the given id label,
// e.g. "NIT does not match expected value.".
func IDMismatchReason(idLabel string) string {
	return fmt.Sprintf(reasonIDMismatchFmt, idLabel)
}

// Reconcile compares the record's identity fields against the operator's
// expected values. Blank expectations skip the corresponding check. Matching
// is substring containment: case-insensitive for the name, case-sensitive
// for the identification.
func Reconcile(expectedName, expectedID, idLabel string, rec *domain.ExtractedRecord) []domain.Finding {
	var findings []domain.Finding

	if name := strings.TrimSpace(expectedName); name != "" {
		got := domain.Deref(rec.LegalName)
		switch {
		case got == "":
			findings = append(findings, domain.Finding{Severity: domain.StatusWarning, Reason: ReasonNameNotDetected})
		case !strings.Contains(strings.ToLower(got), strings.ToLower(name)):
			findings = append(findings, domain.Finding{Severity: domain.StatusWarning, Reason: ReasonNameMismatch})
		}
	}

	if id := strings.TrimSpace(expectedID); id != "" {
		got := domain.Deref(rec.Identification)
		switch {
		case got == "":
			findings = append(findings, domain.Finding{Severity: domain.StatusWarning, Reason: ReasonIDNotDetected})
		case !strings.Contains(got, id):
			findings = append(findings, domain.Finding{Severity: domain.StatusWarning, Reason: IDMismatchReason(idLabel)})
		}
	}

	return findings
}
