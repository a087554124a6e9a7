package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"docval/internal/config"
	"docval/internal/domain"
	"docval/internal/metrics"
	"docval/internal/port"
	"docval/internal/validator"
)

// ValidationParams identifies the policy and identity a batch is checked against.
type ValidationParams struct {
	Country      string
	PersonType   domain.PersonType
	ExpectedName string
	ExpectedID   string
}

// SourceFile is one uploaded document.
type SourceFile struct {
	Name    string
	Content []byte
}

// ValidationOutcome is the report of a run plus the files that never reached
// the validator.
type ValidationOutcome struct {
	Report   *domain.Report       `json:"report"`
	Failures []domain.FileFailure `json:"failures"`
}

// ValidationEngine runs the compliance rules over extracted records.
type ValidationEngine interface {
	Run(req validator.Request) (*domain.Report, error)
}

// ValidationService defines the document validation contract.
type ValidationService interface {
	ValidateFiles(ctx context.Context, params ValidationParams, files []SourceFile) (*ValidationOutcome, error)
	ValidateObjects(ctx context.Context, params ValidationParams, keys []string) (*ValidationOutcome, error)
	ValidateRecords(ctx context.Context, params ValidationParams, records []domain.ExtractedRecord) (*ValidationOutcome, error)
}

type validationService struct {
	engine   ValidationEngine
	policies port.PolicyStore
	text     port.TextExtractor
	records  port.RecordExtractor
	storage  port.ObjectStorage
	bucket   string
	cfg      config.ValidationConfig
	metrics  *metrics.Metrics
}

// ValidationServiceOption configures optional collaborators.
type ValidationServiceOption func(*validationService)

// WithObjectStorage enables ValidateObjects against the given bucket.
func WithObjectStorage(storage port.ObjectStorage, bucket string) ValidationServiceOption {
	return func(s *validationService) {
		s.storage = storage
		s.bucket = bucket
	}
}

// WithMetrics records run and extraction metrics.
func WithMetrics(m *metrics.Metrics) ValidationServiceOption {
	return func(s *validationService) {
		s.metrics = m
	}
}

// NewValidationService creates a new ValidationService implementation. records
// may be nil, in which case only ValidateRecords is available.
func NewValidationService(
	engine ValidationEngine,
	policies port.PolicyStore,
	text port.TextExtractor,
	records port.RecordExtractor,
	cfg *config.ValidationConfig,
	opts ...ValidationServiceOption,
) ValidationService {
	s := &validationService{
		engine:   engine,
		policies: policies,
		text:     text,
		records:  records,
		cfg:      *cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.Workers < 1 {
		s.cfg.Workers = 1
	}
	return s
}

func (s *validationService) ValidateFiles(ctx context.Context, params ValidationParams, files []SourceFile) (*ValidationOutcome, error) {
	if err := s.checkBatch(params, len(files)); err != nil {
		return nil, err
	}
	maxBytes := s.cfg.MaxFileSizeBytes()
	return s.extractAndRun(ctx, params, len(files), func(_ context.Context, i int) (string, []byte, error) {
		f := files[i]
		if maxBytes > 0 && int64(len(f.Content)) > maxBytes {
			return f.Name, nil, domain.ErrFileTooLarge
		}
		return f.Name, f.Content, nil
	})
}

func (s *validationService) ValidateObjects(ctx context.Context, params ValidationParams, keys []string) (*ValidationOutcome, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageNotReady
	}
	if err := s.checkBatch(params, len(keys)); err != nil {
		return nil, err
	}
	return s.extractAndRun(ctx, params, len(keys), func(ctx context.Context, i int) (string, []byte, error) {
		data, err := s.storage.Download(ctx, s.bucket, keys[i])
		return keys[i], data, err
	})
}

func (s *validationService) ValidateRecords(ctx context.Context, params ValidationParams, records []domain.ExtractedRecord) (*ValidationOutcome, error) {
	if s.cfg.MaxFiles > 0 && len(records) > s.cfg.MaxFiles {
		return nil, domain.ErrTooManyDocuments
	}
	start := time.Now()
	report, err := s.run(params, records)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRun(report, start)
	return &ValidationOutcome{Report: report, Failures: []domain.FileFailure{}}, nil
}

// checkBatch rejects runs that cannot succeed before any file is read.
func (s *validationService) checkBatch(params ValidationParams, n int) error {
	if _, err := s.policies.Lookup(params.Country, params.PersonType); err != nil {
		return err
	}
	if s.records == nil {
		return domain.ErrExtractorNotReady
	}
	if n == 0 {
		return domain.ErrNoDocuments
	}
	if s.cfg.MaxFiles > 0 && n > s.cfg.MaxFiles {
		return domain.ErrTooManyDocuments
	}
	return nil
}

type loadFunc func(ctx context.Context, i int) (name string, content []byte, err error)

// extractAndRun turns n files into records with bounded concurrency, then
// validates the records that were extracted. A failing file is reported in
// the outcome and never aborts the batch.
func (s *validationService) extractAndRun(ctx context.Context, params ValidationParams, n int, load loadFunc) (*ValidationOutcome, error) {
	start := time.Now()
	records := make([]*domain.ExtractedRecord, n)
	failures := make([]*domain.FileFailure, n)

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			records[i], failures[i] = s.extractOne(ctx, params, i, load)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome := &ValidationOutcome{Failures: []domain.FileFailure{}}
	extracted := make([]domain.ExtractedRecord, 0, n)
	for i := 0; i < n; i++ {
		if failures[i] != nil {
			outcome.Failures = append(outcome.Failures, *failures[i])
			continue
		}
		extracted = append(extracted, *records[i])
	}

	report, err := s.run(params, extracted)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRun(report, start)
	log.Printf("service.ValidationService: run %s %s/%s files=%d extracted=%d failed=%d overall=%s",
		report.RunID, params.Country, params.PersonType, n, len(extracted), len(outcome.Failures), report.Verdict.Overall)

	outcome.Report = report
	return outcome, nil
}

func (s *validationService) extractOne(ctx context.Context, params ValidationParams, i int, load loadFunc) (*domain.ExtractedRecord, *domain.FileFailure) {
	start := time.Now()
	defer s.metrics.ObserveExtraction(start)

	name, content, err := load(ctx, i)
	if name == "" {
		name = fmt.Sprintf("file-%d", i+1)
	}
	if err != nil {
		return nil, s.failure(name, domain.StageRead, err)
	}
	if ct := http.DetectContentType(content); ct != "application/pdf" {
		return nil, s.failure(name, domain.StageRead, fmt.Errorf("%w: detected %s", domain.ErrUnsupportedFileType, ct))
	}

	text, err := s.text.ExtractText(ctx, content)
	if err != nil {
		return nil, s.failure(name, domain.StageText, err)
	}

	rec, err := s.records.Extract(ctx, port.ExtractInput{
		SourceID:   name,
		Text:       text,
		Country:    params.Country,
		PersonType: params.PersonType,
	})
	if err != nil {
		return nil, s.failure(name, domain.StageExtract, err)
	}
	if rec == nil {
		return nil, s.failure(name, domain.StageExtract, errors.New("extractor returned no record"))
	}
	out := *rec
	out.SourceID = name
	return &out, nil
}

func (s *validationService) failure(name, stage string, err error) *domain.FileFailure {
	log.Printf("service.ValidationService: %s failed at %s: %v", name, stage, err)
	s.metrics.IncExtractionFailure(stage)
	return &domain.FileFailure{SourceID: name, Stage: stage, Message: err.Error()}
}

func (s *validationService) run(params ValidationParams, records []domain.ExtractedRecord) (*domain.Report, error) {
	return s.engine.Run(validator.Request{
		Country:      params.Country,
		PersonType:   params.PersonType,
		ExpectedName: params.ExpectedName,
		ExpectedID:   params.ExpectedID,
		Records:      records,
	})
}
