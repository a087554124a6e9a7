package report

import (
	"fmt"
	"strings"

	"docval/internal/domain"
)

// Message is one line of the verdict summary shown to operators.
type Message struct {
	Level domain.ValidationStatus `json:"level"`
	Text  string                  `json:"text"`
}

const (
	msgAllClear = "All required documentation looks correct for this country and person type. No automatic anomalies were detected."
	msgCritical = "Expired documents or documents with critical problems were detected (manual review recommended)."
	msgMinor    = "There are minor inconsistencies (names, IDs or doubtful dates). Review the per-document detail."
)

// Summarize renders the verdict of a report as operator messages. A clean
// batch yields a single OK message. Otherwise missing kinds are listed
// first, followed by either the critical or the minor-issues message.
func Summarize(r *domain.Report) []Message {
	v := r.Verdict
	if len(v.MissingRequiredKinds) == 0 && !v.HasError && !v.HasWarning {
		return []Message{{Level: domain.StatusOK, Text: msgAllClear}}
	}

	var out []Message
	if len(v.MissingRequiredKinds) > 0 {
		out = append(out, Message{
			Level: domain.StatusError,
			Text: fmt.Sprintf("Missing required document(s) for %s in %s: %s.",
				r.PersonType.Label(), r.Country, strings.Join(v.MissingRequiredKinds, ", ")),
		})
	}
	switch {
	case v.HasError:
		out = append(out, Message{Level: domain.StatusError, Text: msgCritical})
	case v.HasWarning:
		out = append(out, Message{Level: domain.StatusWarning, Text: msgMinor})
	}
	return out
}
