package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docval/internal/domain"
)

func TestValidationStatus_Ordering(t *testing.T) {
	assert.Less(t, domain.StatusOK, domain.StatusWarning)
	assert.Less(t, domain.StatusWarning, domain.StatusError)
}

func TestValidationStatus_Max(t *testing.T) {
	all := []domain.ValidationStatus{domain.StatusOK, domain.StatusWarning, domain.StatusError}
	for _, a := range all {
		for _, b := range all {
			m := a.Max(b)
			assert.Equal(t, m, b.Max(a), "commutative")
			assert.GreaterOrEqual(t, m, a)
			assert.GreaterOrEqual(t, m, b)
		}
		assert.Equal(t, a, a.Max(domain.StatusOK), "OK is the identity")
	}
	assert.Equal(t, domain.StatusOK, domain.MaxStatus())
	assert.Equal(t, domain.StatusError, domain.MaxStatus(domain.StatusWarning, domain.StatusError, domain.StatusOK))
}

func TestValidationStatus_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		S domain.ValidationStatus `json:"s"`
	}{domain.StatusWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"WARNING"}`, string(data))

	var s domain.ValidationStatus
	require.NoError(t, json.Unmarshal([]byte(`"error"`), &s))
	assert.Equal(t, domain.StatusError, s)
	assert.Error(t, json.Unmarshal([]byte(`"FATAL"`), &s))
}

func TestValidationStatus_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "ValidationStatus(7)", domain.ValidationStatus(7).String())
}

func TestParsePersonType(t *testing.T) {
	cases := map[string]domain.PersonType{
		"natural":          domain.PersonTypeNatural,
		"Persona natural":  domain.PersonTypeNatural,
		" LEGAL ":          domain.PersonTypeLegal,
		"Persona jurídica": domain.PersonTypeLegal,
		"persona juridica": domain.PersonTypeLegal,
	}
	for in, want := range cases {
		got, err := domain.ParsePersonType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParsePersonType("company")
	assert.True(t, errors.Is(err, domain.ErrInvalidPersonType))
}

func TestPersonType_Label(t *testing.T) {
	assert.Equal(t, "Persona natural", domain.PersonTypeNatural.Label())
	assert.Equal(t, "Persona jurídica", domain.PersonTypeLegal.Label())
	assert.Equal(t, "other", domain.PersonType("other").Label())
	assert.False(t, domain.PersonType("other").Valid())
}

func TestExtractedRecord_Kind(t *testing.T) {
	assert.Equal(t, domain.UnknownDocumentKind, (&domain.ExtractedRecord{}).Kind())
	assert.Equal(t, domain.UnknownDocumentKind, (&domain.ExtractedRecord{DocumentKind: domain.StringPtr("  ")}).Kind())
	assert.Equal(t, "RUT", (&domain.ExtractedRecord{DocumentKind: domain.StringPtr(" RUT ")}).Kind())
}

func TestDocumentPolicy_CloneIsDeep(t *testing.T) {
	p := &domain.DocumentPolicy{
		IDLabel:       "RUC",
		RequiredKinds: []string{"RUC"},
		MaxAgeDays:    map[string]int{"RUC": 365},
	}
	c := p.Clone()
	c.RequiredKinds[0] = "changed"
	c.MaxAgeDays["RUC"] = 1

	assert.Equal(t, "RUC", p.RequiredKinds[0])
	assert.Equal(t, 365, *p.MaxAgeFor("RUC"))
	assert.Nil(t, p.MaxAgeFor("Other"))
}
