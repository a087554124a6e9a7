package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docval/internal/handler"
	"docval/internal/metrics"
	"docval/internal/middleware"
)

// Options configures optional parts of the router.
type Options struct {
	AllowedOrigins     []string
	Metrics            *metrics.Metrics
	MetricsPath        string
	MetricsHandler     http.Handler
	MaxMultipartMemory int64
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	validationH *handler.ValidationHandler,
	policyH *handler.PolicyHandler,
	healthH *handler.HealthHandler,
	opts Options,
) *gin.Engine {
	r := gin.New()
	if opts.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = opts.MaxMultipartMemory
	}

	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/healthz", "/readyz", metricsPath))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	if opts.MetricsHandler != nil {
		r.GET(metricsPath, gin.WrapH(opts.MetricsHandler))
	}

	v1 := r.Group("/api/v1")

	policies := v1.Group("/policies")
	policies.GET("", policyH.List)
	policies.GET("/:country/:person_type", policyH.Get)

	validations := v1.Group("/validations")
	validations.POST("", validationH.Validate)
	validations.POST("/records", validationH.ValidateRecords)
	validations.POST("/records/export", validationH.Export)
	validations.POST("/s3", validationH.ValidateObjects)

	return r
}
