package parser

import (
	"bytes"
	"encoding/json"
	"strings"

	"docval/internal/domain"
)

// UndetectedKind is the document kind assigned when the model output is not
// valid JSON.
const UndetectedKind = "Desconocido"

// DecodeRecord converts raw model output into an ExtractedRecord. It never
// fails: output that is not a JSON object yields a record whose kind is
// UndetectedKind and whose other fields are nil. Code fences around the JSON
// are tolerated, and numeric values are kept as their literal text.
func DecodeRecord(sourceID, raw string) *domain.ExtractedRecord {
	rec := &domain.ExtractedRecord{SourceID: sourceID}

	dec := json.NewDecoder(bytes.NewReader([]byte(stripCodeFence(raw))))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil || fields == nil {
		rec.DocumentKind = domain.StringPtr(UndetectedKind)
		return rec
	}

	rec.DocumentKind = stringField(fields, "tipo_documento")
	rec.LegalName = stringField(fields, "razon_social")
	rec.Identification = stringField(fields, "identificacion")
	rec.IssueDate = stringField(fields, "fecha_emision")
	rec.ExpiryDate = stringField(fields, "fecha_vencimiento")
	return rec
}

func stringField(fields map[string]interface{}, key string) *string {
	switch v := fields[key].(type) {
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	default:
		return nil
	}
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
