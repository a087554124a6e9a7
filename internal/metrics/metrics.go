package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"docval/internal/domain"
)

// Metrics provides observability for validation runs and document
// extraction. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RunsTotal          *prometheus.CounterVec
	DocumentsTotal     *prometheus.CounterVec
	MissingKindsTotal  *prometheus.CounterVec
	ExtractionFailures *prometheus.CounterVec
	RunDuration        prometheus.Histogram
	ExtractionDuration prometheus.Histogram
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates the validator metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docval_validation_runs_total",
			Help: "Total number of validation runs by overall verdict",
		}, []string{"country", "person_type", "overall"}),
		DocumentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docval_documents_validated_total",
			Help: "Total number of documents validated by status",
		}, []string{"status"}),
		MissingKindsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docval_missing_required_documents_total",
			Help: "Required document kinds absent from a validation run",
		}, []string{"country", "kind"}),
		ExtractionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docval_extraction_failures_total",
			Help: "Files that could not be turned into a record, by stage",
		}, []string{"stage"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docval_validation_run_duration_seconds",
			Help:    "Duration of a validation run including extraction",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docval_extraction_duration_seconds",
			Help:    "Duration of text plus record extraction for one file",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docval_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docval_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveRun records the outcome of a validation run.
// Call with time.Now() at the start of the run.
func (m *Metrics) ObserveRun(report *domain.Report, start time.Time) {
	if m == nil || report == nil {
		return
	}
	m.RunDuration.Observe(time.Since(start).Seconds())
	m.RunsTotal.WithLabelValues(report.Country, string(report.PersonType), report.Verdict.Overall.String()).Inc()
	for i := range report.Results {
		m.DocumentsTotal.WithLabelValues(report.Results[i].Status.String()).Inc()
	}
	for _, kind := range report.Verdict.MissingRequiredKinds {
		m.MissingKindsTotal.WithLabelValues(report.Country, kind).Inc()
	}
}

// IncExtractionFailure records a file dropped from a batch.
func (m *Metrics) IncExtractionFailure(stage string) {
	if m == nil {
		return
	}
	m.ExtractionFailures.WithLabelValues(stage).Inc()
}

// ObserveExtraction records the time spent extracting one file.
// Call with time.Now() at the start of the extraction.
func (m *Metrics) ObserveExtraction(start time.Time) {
	if m == nil {
		return
	}
	m.ExtractionDuration.Observe(time.Since(start).Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, code string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, code).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
