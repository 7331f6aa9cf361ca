// Package isotime parses ISO-8601 dates and date-times.
package isotime

import (
	"fmt"
	"time"
)

// layouts are tried in order. Layouts without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Parse reads s as an ISO-8601 date or date-time and returns it in UTC.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO-8601 date", s)
}

// Valid reports whether s can be parsed.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
