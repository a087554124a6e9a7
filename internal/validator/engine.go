package validator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"docval/internal/domain"
	"docval/internal/port"
)

// Request is the input to one validation run.
type Request struct {
	Country      string
	PersonType   domain.PersonType
	ExpectedName string
	ExpectedID   string
	Records      []domain.ExtractedRecord
}

// Engine resolves the policy for a request and runs the batch aggregator.
type Engine struct {
	policies port.PolicyStore
	now      func() time.Time
	workers  int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock sets the time source used for vigency checks.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithWorkers bounds the number of goroutines validating documents of one
// run. Values below 2 validate sequentially.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates a new validation engine.
func NewEngine(policies port.PolicyStore, opts ...EngineOption) *Engine {
	e := &Engine{
		policies: policies,
		now:      time.Now,
		workers:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates a batch. The only error is a missing policy; every
// per-document problem is reported in the results.
func (e *Engine) Run(req Request) (*domain.Report, error) {
	p, err := e.policies.Lookup(req.Country, req.PersonType)
	if err != nil {
		return nil, fmt.Errorf("resolving policy: %w", err)
	}

	now := e.now()
	results, verdict := AggregateParallel(req.Records, p, req.ExpectedName, req.ExpectedID, now, e.workers)

	return &domain.Report{
		RunID:       uuid.New(),
		Country:     req.Country,
		PersonType:  req.PersonType,
		IDLabel:     p.IDLabel,
		Results:     results,
		Verdict:     verdict,
		ValidatedAt: now,
	}, nil
}
