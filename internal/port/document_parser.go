package port

import (
	"context"

	"docval/internal/domain"
)

// ExtractInput carries the text of one file plus the context the extractor
// uses to recognise document kinds.
type ExtractInput struct {
	SourceID   string
	Text       string
	Country    string
	PersonType domain.PersonType
}

// RecordExtractor turns document text into an ExtractedRecord. Implementations
// are typically LLM-backed and therefore unreliable; callers treat an error
// as a failure of that single file.
type RecordExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractedRecord, error)
}

// TextExtractor pulls plain text out of a binary document.
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}
