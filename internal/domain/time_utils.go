package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DatetimeLayout     = "2006-01-02T15:04:05Z"
	OnlyDateTimeLayout = "2006-01-02 15:04:05"
	OnlyDate           = "2006-01-02"
)

// acceptedDateLayouts are tried in order when reading dates from the meal backend
var acceptedDateLayouts = []string{
	OnlyDate,
	OnlyDateTimeLayout,
	time.RFC3339,
	DatetimeLayout,
}

// StartOfDay returns midnight of date's calendar day in location.
func StartOfDay(date time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	date = date.In(location)
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, location)
}

// ParseDate parses a date or datetime string from the meal backend.
// Strings without a zone are read in location.
func ParseDate(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidRequest)
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidRequest, value)
}

// FormatDate formats date as a calendar date in location
func FormatDate(date time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return date.In(location).Format(OnlyDate)
}
