package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"docval/internal/domain"
	"docval/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

type upload struct {
	name    string
	content []byte
}

func newMultipartContext(t *testing.T, fields map[string]string, files ...upload) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/validations", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.APIError {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func sampleReport(overall domain.ValidationStatus) *domain.Report {
	return &domain.Report{
		RunID:      uuid.New(),
		Country:    "Colombia",
		PersonType: domain.PersonTypeNatural,
		IDLabel:    "CC / NIT",
		Results: []domain.ValidationResult{
			{
				SourceID:     "rut.pdf",
				DocumentKind: "RUT",
				Status:       overall,
				Reasons:      []string{},
				LegalName:    "Ana Pérez",
			},
		},
		Verdict: domain.BatchVerdict{
			MissingRequiredKinds: []string{},
			HasError:             overall == domain.StatusError,
			HasWarning:           overall == domain.StatusWarning,
			Overall:              overall,
		},
		ValidatedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}
