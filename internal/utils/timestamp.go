package utils

import (
	"time"

	"github.com/hance08/fintrack/internal/constants"
)

// layouts the backend is known to emit; naive datetimes are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO datetime as the backend stores it.
func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatLocalTimestamp renders raw in loc. Unparseable values are returned as is.
func FormatLocalTimestamp(raw string, loc *time.Location) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return raw
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(constants.DateTimeFormat)
}
