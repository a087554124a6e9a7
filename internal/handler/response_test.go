package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"docval/internal/domain"
	"docval/internal/handler"
	"docval/internal/policy"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"policy not found", &policy.PolicyNotFoundError{Key: domain.PolicyKey{Country: "Chile", PersonType: domain.PersonTypeLegal}}, http.StatusNotFound, "POLICY_NOT_FOUND"},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", domain.ErrPolicyNotFound), http.StatusNotFound, "POLICY_NOT_FOUND"},
		{"invalid person type", fmt.Errorf("%w: %q", domain.ErrInvalidPersonType, "company"), http.StatusBadRequest, "INVALID_PERSON_TYPE"},
		{"no documents", domain.ErrNoDocuments, http.StatusBadRequest, "NO_DOCUMENTS"},
		{"too many documents", domain.ErrTooManyDocuments, http.StatusBadRequest, "TOO_MANY_DOCUMENTS"},
		{"unsupported file", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"extractor not ready", domain.ErrExtractorNotReady, http.StatusServiceUnavailable, "EXTRACTOR_NOT_CONFIGURED"},
		{"storage not ready", domain.ErrStorageNotReady, http.StatusServiceUnavailable, "STORAGE_NOT_CONFIGURED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_PolicyNotFoundNamesKey(t *testing.T) {
	err := &policy.PolicyNotFoundError{Key: domain.PolicyKey{Country: "Chile", PersonType: domain.PersonTypeLegal}}

	_, _, msg := handler.MapDomainError(err)

	assert.Contains(t, msg, "Chile")
	assert.Contains(t, msg, "Persona jurídica")
}
