package parser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"docval/internal/domain"
	"docval/internal/port"
)

// provider is one entry of the fallback chain. cooldownUntil is set when the
// provider answers 429 and cleared implicitly once it passes.
type provider struct {
	name      string
	extractor port.RecordExtractor

	mu            sync.RWMutex
	cooldownUntil time.Time
}

func (p *provider) coolingDown(now time.Time) (time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cooldownUntil, now.Before(p.cooldownUntil)
}

func (p *provider) coolDown(until time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cooldownUntil = until
}

// FallbackExtractor asks each provider in turn for a record and returns the
// first one produced. A provider that was rate limited is skipped for every
// document until its Retry-After has passed, so a batch does not hammer a
// quota-exhausted model once per file. It implements port.RecordExtractor.
type FallbackExtractor struct {
	providers []*provider
}

// NewFallbackExtractor builds the chain from extractors in priority order;
// names label them in logs.
func NewFallbackExtractor(extractors []port.RecordExtractor, names []string) *FallbackExtractor {
	chain := make([]*provider, len(extractors))
	for i, x := range extractors {
		name := fmt.Sprintf("provider-%d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		chain[i] = &provider{name: name, extractor: x}
	}
	return &FallbackExtractor{providers: chain}
}

func (f *FallbackExtractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedRecord, error) {
	now := time.Now()
	var lastErr error
	var soonest time.Time
	onlyRateLimits := true

	noteCooldown := func(until time.Time) {
		if soonest.IsZero() || until.Before(soonest) {
			soonest = until
		}
	}

	for _, p := range f.providers {
		if until, cooling := p.coolingDown(now); cooling {
			log.Printf("parser.FallbackExtractor: %s rate limited until %s, skipping %s", p.name, until.Format(time.RFC3339), input.SourceID)
			noteCooldown(until)
			continue
		}

		rec, err := p.extractor.Extract(ctx, input)
		if err == nil {
			return rec, nil
		}
		lastErr = err
		log.Printf("parser.FallbackExtractor: %s could not extract %s: %v", p.name, input.SourceID, err)

		// a canceled batch must not spill over to the next provider
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			until := now.Add(rlErr.RetryAfter)
			p.coolDown(until)
			noteCooldown(until)
			continue
		}
		onlyRateLimits = false
	}

	if lastErr == nil || onlyRateLimits {
		wait := soonest.Sub(now)
		if wait < time.Second {
			wait = time.Second
		}
		return nil, NewRateLimitError("all", errors.New("every extraction provider is rate limited"), int(wait.Seconds()))
	}
	return nil, fmt.Errorf("all extractors failed: %w", lastErr)
}
