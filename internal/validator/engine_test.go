package validator_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docval/internal/domain"
	"docval/internal/policy"
	"docval/internal/validator"
)

func TestEngine_Run(t *testing.T) {
	e := validator.NewEngine(policy.Default(),
		validator.WithClock(func() time.Time { return fixedNow }),
		validator.WithWorkers(4),
	)

	report, err := e.Run(validator.Request{
		Country:      "Colombia",
		PersonType:   domain.PersonTypeNatural,
		ExpectedName: "Juan",
		Records: []domain.ExtractedRecord{
			{SourceID: "rut.pdf", DocumentKind: domain.StringPtr("RUT"), LegalName: domain.StringPtr("JUAN PEREZ"), IssueDate: daysAgo(400)},
		},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, "CC / NIT", report.IDLabel)
	assert.Equal(t, fixedNow, report.ValidatedAt)
	require.Len(t, report.Results, 1)
	assert.Equal(t, []string{validator.ExpiredReason(365)}, report.Results[0].Reasons)
	assert.Equal(t, []string{"Documento de identidad", "Certificado Bancario"}, report.Verdict.MissingRequiredKinds)
	assert.Equal(t, domain.StatusError, report.Verdict.Overall)
}

func TestEngine_Run_PolicyNotFound(t *testing.T) {
	e := validator.NewEngine(policy.Default())

	_, err := e.Run(validator.Request{Country: "Atlantis", PersonType: domain.PersonTypeNatural})

	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
	var nf *policy.PolicyNotFoundError
	assert.ErrorAs(t, err, &nf)
}
