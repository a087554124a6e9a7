package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docval/internal/domain"
	"docval/internal/policy"
	"docval/internal/service"
)

func TestPolicyService_ListCountries(t *testing.T) {
	svc := service.NewPolicyService(policy.Default())

	countries := svc.ListCountries()

	require.Len(t, countries, 9)
	assert.Equal(t, "Colombia", countries[0].Country)
	assert.Equal(t, []service.PersonTypeRef{
		{Value: domain.PersonTypeNatural, Label: "Persona natural"},
		{Value: domain.PersonTypeLegal, Label: "Persona jurídica"},
	}, countries[0].PersonTypes)
}

func TestPolicyService_Get(t *testing.T) {
	svc := service.NewPolicyService(policy.Default())

	p, err := svc.Get("Uruguay", domain.PersonTypeLegal)
	require.NoError(t, err)
	assert.NotEmpty(t, p.RequiredKinds)

	_, err = svc.Get("Uruguay", domain.PersonType("robot"))
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}
