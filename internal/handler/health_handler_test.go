package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"docval/internal/handler"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]handler.ReadinessCheck
		status int
		body   string
	}{
		{
			name:   "no checks",
			status: http.StatusOK,
			body:   `{"status":"ok"}`,
		},
		{
			name:   "all pass",
			checks: map[string]handler.ReadinessCheck{"policies": func() error { return nil }},
			status: http.StatusOK,
			body:   `{"status":"ok"}`,
		},
		{
			name:   "failing check",
			checks: map[string]handler.ReadinessCheck{"extractor": func() error { return errors.New("no provider") }},
			status: http.StatusServiceUnavailable,
			body:   `{"status":"unavailable","error":"extractor not ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.checks)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			h.Readiness(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
