package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"docval/internal/domain"
)

// Placeholder is shown for values that were not detected.
const Placeholder = "—"

// Columns returns the header row of the result table. The identification
// column is named after the policy's id label.
func Columns(idLabel string) []string {
	return []string{
		"File",
		"Document kind",
		"Detected name",
		fmt.Sprintf("Detected %s", idLabel),
		"Issue date",
		"Expiry date",
		"Status",
		"Detail",
	}
}

// Rows converts each result of a report into a table row, in result order.
func Rows(r *domain.Report) [][]string {
	rows := make([][]string, 0, len(r.Results))
	for i := range r.Results {
		rows = append(rows, resultToRow(&r.Results[i]))
	}
	return rows
}

func resultToRow(res *domain.ValidationResult) []string {
	detail := "OK"
	if len(res.Reasons) > 0 {
		detail = strings.Join(res.Reasons, " | ")
	}
	return []string{
		res.SourceID,
		res.DocumentKind,
		orPlaceholder(res.LegalName),
		orPlaceholder(res.Identification),
		orPlaceholder(res.IssueDate),
		orPlaceholder(res.ExpiryDate),
		res.Status.String(),
		detail,
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Characters
// other than letters, digits, - and _ become _, runs of _ collapse, and the
// result is capped at 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download name for a report export.
// Format: validation_{country}_{person_type}_{YYYY-MM-DD}.{ext}
func BuildFilename(r *domain.Report, ext string) string {
	name := SanitizeFilename(fmt.Sprintf("validation_%s_%s", r.Country, r.PersonType))
	date := r.ValidatedAt
	if date.IsZero() {
		date = time.Now()
	}
	return fmt.Sprintf("%s_%s.%s", name, date.Format("2006-01-02"), ext)
}
