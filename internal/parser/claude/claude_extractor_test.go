package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docval/internal/config"
	"docval/internal/domain"
	"docval/internal/parser"
	"docval/internal/parser/claude"
	"docval/internal/port"
)

func newTestExtractor(serverURL string) *claude.Extractor {
	return claude.NewExtractorWithEndpoint(&config.ParserProviderConfig{
		Provider:     "claude",
		APIKey:       "test-claude-key",
		DefaultModel: "claude-test",
		TimeoutSecs:  5,
	}, serverURL)
}

var input = port.ExtractInput{
	SourceID:   "cnpj.pdf",
	Text:       "CADASTRO NACIONAL DA PESSOA JURIDICA",
	Country:    "Brasil",
	PersonType: domain.PersonTypeLegal,
}

func TestExtractor_Extract_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body["model"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": `{"tipo_documento":"CNPJ","razon_social":"Empresa Ltda","identificacion":"12.345.678/0001-90","fecha_emision":"2024-11-01","fecha_vencimiento":null}`},
			},
			"stop_reason": "end_turn",
		})
	}))
	defer server.Close()

	rec, err := newTestExtractor(server.URL).Extract(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "cnpj.pdf", rec.SourceID)
	assert.Equal(t, "CNPJ", rec.Kind())
	assert.Equal(t, "Empresa Ltda", domain.Deref(rec.LegalName))
}

func TestExtractor_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestExtractor(server.URL).Extract(context.Background(), input)

	var rlErr *parser.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "claude", rlErr.Provider)
}

func TestExtractor_Extract_NoTextBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	_, err := newTestExtractor(server.URL).Extract(context.Background(), input)
	assert.ErrorIs(t, err, parser.ErrEmptyCompletion)
}
