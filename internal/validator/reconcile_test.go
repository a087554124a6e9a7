package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docval/internal/domain"
	"docval/internal/validator"
)

func record(name, id string) *domain.ExtractedRecord {
	rec := &domain.ExtractedRecord{SourceID: "doc.pdf"}
	if name != "" {
		rec.LegalName = domain.StringPtr(name)
	}
	if id != "" {
		rec.Identification = domain.StringPtr(id)
	}
	return rec
}

func reasons(findings []domain.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Reason)
	}
	return out
}

func TestReconcile_BlankExpectationsSkipChecks(t *testing.T) {
	assert.Empty(t, validator.Reconcile("", "", "NIT", record("", "")))
	assert.Empty(t, validator.Reconcile("  ", "\t", "NIT", &domain.ExtractedRecord{}))
}

func TestReconcile_NameContainmentIgnoresCase(t *testing.T) {
	assert.Empty(t, validator.Reconcile("acme", "", "NIT", record("ACME S.A.S.", "")))
	assert.Empty(t, validator.Reconcile(" Acme S.A.S. ", "", "NIT", record("Comercial ACME s.a.s.", "")))
}

func TestReconcile_NameMissingAndMismatch(t *testing.T) {
	assert.Equal(t, []string{validator.ReasonNameNotDetected}, reasons(validator.Reconcile("ACME", "", "NIT", record("", ""))))
	assert.Equal(t, []string{validator.ReasonNameMismatch}, reasons(validator.Reconcile("ACME", "", "NIT", record("Globex", ""))))
}

func TestReconcile_IDContainmentIsCaseSensitive(t *testing.T) {
	assert.Empty(t, validator.Reconcile("", "900123456", "NIT", record("", "NIT 900123456-7")))

	findings := validator.Reconcile("", "abc123", "RFC", record("", "ABC123"))
	assert.Equal(t, []string{"RFC does not match expected value."}, reasons(findings))
}

func TestReconcile_IDMissing(t *testing.T) {
	findings := validator.Reconcile("", "123", "RUC", record("", "   "))
	assert.Equal(t, []string{validator.ReasonIDNotDetected}, reasons(findings))
}

func TestReconcile_NameBeforeIDAllWarnings(t *testing.T) {
	findings := validator.Reconcile("ACME", "123", "NIT", record("Globex", "999"))

	assert.Equal(t, []string{validator.ReasonNameMismatch, validator.IDMismatchReason("NIT")}, reasons(findings))
	for _, f := range findings {
		assert.Equal(t, domain.StatusWarning, f.Severity)
	}
}
