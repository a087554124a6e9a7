package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"docval/internal/config"
	"docval/internal/domain"
	"docval/internal/parser"
	"docval/internal/port"
)

// generator is the part of *genai.GenerativeModel the extractor uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Extractor implements port.RecordExtractor using the Gemini SDK.
type Extractor struct {
	client   *genai.Client
	model    generator
	maxChars int
}

// NewExtractor creates a Gemini-based record extractor. Close releases the
// underlying client.
func NewExtractor(ctx context.Context, cfg *config.ParserProviderConfig, opts ...option.ClientOption) (*Extractor, error) {
	modelName := cfg.DefaultModel
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	return &Extractor{client: client, model: model, maxChars: cfg.MaxChars}, nil
}

// Factory adapts NewExtractor to parser.ProviderFactory.
func Factory(cfg *config.ParserProviderConfig) (port.RecordExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", parser.ErrMissingAPIKey)
	}
	return NewExtractor(context.Background(), cfg)
}

// Close releases the Gemini client.
func (x *Extractor) Close() error {
	if x.client == nil {
		return nil
	}
	return x.client.Close()
}

func (x *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedRecord, error) {
	prompt := parser.BuildExtractionPrompt(input.Country, input.PersonType, input.Text, x.maxChars)

	resp, err := x.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, parser.NewRateLimitError("gemini", err, parser.ParseRetryAfter(apiErr.Header.Get("Retry-After"), time.Now()))
		}
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini: %w", parser.ErrEmptyCompletion)
	}
	return parser.DecodeRecord(input.SourceID, text), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
