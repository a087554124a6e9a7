package validator

import (
	"time"

	"golang.org/x/sync/errgroup"

	"docval/internal/domain"
)

// Aggregate validates every record in input order and derives the batch
// verdict. An empty batch is valid and reports every required kind as
// missing.
func Aggregate(records []domain.ExtractedRecord, p *domain.DocumentPolicy, expectedName, expectedID string, now time.Time) ([]domain.ValidationResult, domain.BatchVerdict) {
	results := make([]domain.ValidationResult, len(records))
	for i := range records {
		results[i] = ValidateDocument(&records[i], p, expectedName, expectedID, now)
	}
	return results, Verdict(results, p)
}

// AggregateParallel is Aggregate with per-document validation spread over
// at most workers goroutines. Results keep input order.
func AggregateParallel(records []domain.ExtractedRecord, p *domain.DocumentPolicy, expectedName, expectedID string, now time.Time, workers int) ([]domain.ValidationResult, domain.BatchVerdict) {
	if workers <= 1 || len(records) <= 1 {
		return Aggregate(records, p, expectedName, expectedID, now)
	}

	results := make([]domain.ValidationResult, len(records))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range records {
		g.Go(func() error {
			results[i] = ValidateDocument(&records[i], p, expectedName, expectedID, now)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return results, Verdict(results, p)
}

// Verdict computes the batch verdict from per-document results. Required
// kinds are matched case-sensitively and reported in policy order.
func Verdict(results []domain.ValidationResult, p *domain.DocumentPolicy) domain.BatchVerdict {
	seen := make(map[string]bool, len(results))
	v := domain.BatchVerdict{MissingRequiredKinds: []string{}}

	worst := domain.StatusOK
	for i := range results {
		seen[results[i].DocumentKind] = true
		switch results[i].Status {
		case domain.StatusError:
			v.HasError = true
		case domain.StatusWarning:
			v.HasWarning = true
		}
		worst = worst.Max(results[i].Status)
	}

	for _, kind := range p.RequiredKinds {
		if !seen[kind] {
			v.MissingRequiredKinds = append(v.MissingRequiredKinds, kind)
		}
	}
	if len(v.MissingRequiredKinds) > 0 {
		worst = domain.StatusError
	}
	v.Overall = worst
	return v
}
