package services

import (
	"strings"
	"time"

	apperrors "teamboard/internal/errors"
)

// isoLayouts are the accepted ISO-8601 shapes, longest first. Client
// widgets send anything from a full RFC 3339 instant down to a bare date.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISOInstant parses an ISO-8601 instant, normalizing a trailing
// UTC marker to an explicit offset first.
func parseISOInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date: "+s)
}

// truncateToDate discards the time of day, keeping the calendar date in
// the instant's own location.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
