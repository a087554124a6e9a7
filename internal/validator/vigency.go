package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"docval/internal/domain"
)

// ReasonDateUnreadable is reported when a vigency rule applies but the
// issuance date is missing or not an ISO date.
const ReasonDateUnreadable = "issuance date could not be interpreted; vigency not verified."

// ExpiredReason returns the reason reported for a document older than
// maxAgeDays.
func ExpiredReason(maxAgeDays int) string {
	return fmt.Sprintf("document exceeds the %d-day validity window.", maxAgeDays)
}

var errUnparseableDate = errors.New("unparseable date")

// Layouts accepted for issuance dates, without and with a zone offset.
var (
	localLayouts = []string{
		"2006-01-02",
		"20060102",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999",
	}
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02 15:04Z07:00",
	}
)

// maxDurationDays is the largest day count representable as a time.Duration.
const maxDurationDays = int64(1<<63-1) / int64(24*time.Hour)

// ParseIssueDate parses an ISO-8601 calendar date or date-time. Values
// without a zone are read in loc. It never panics; any malformed input
// yields an error.
func ParseIssueDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errUnparseableDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errUnparseableDate, raw)
}

// CheckVigency applies the max-age rule for a document kind. It returns nil
// when no rule applies or the document is recent enough. A document exactly
// maxAgeDays old is still valid.
func CheckVigency(documentKind string, issueDateRaw *string, maxAgeDays *int, now time.Time) *domain.Finding {
	if maxAgeDays == nil {
		return nil
	}
	if issueDateRaw == nil {
		return &domain.Finding{Severity: domain.StatusWarning, Reason: ReasonDateUnreadable}
	}
	issued, err := ParseIssueDate(*issueDateRaw, now.Location())
	if err != nil {
		return &domain.Finding{Severity: domain.StatusWarning, Reason: ReasonDateUnreadable}
	}
	if exceedsDays(wallClockAge(issued, now), *maxAgeDays) {
		return &domain.Finding{Severity: domain.StatusError, Reason: ExpiredReason(*maxAgeDays)}
	}
	return nil
}

// wallClockAge measures the age on the calendar of now's zone, so a
// daylight-saving shift inside the window neither adds nor removes an hour.
func wallClockAge(issued, now time.Time) time.Duration {
	return asWallClock(now).Sub(asWallClock(issued.In(now.Location())))
}

func asWallClock(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.Nanosecond(), time.UTC)
}

func exceedsDays(age time.Duration, days int) bool {
	if int64(days) >= maxDurationDays {
		return false
	}
	return age > time.Duration(days)*24*time.Hour
}
