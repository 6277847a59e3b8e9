package parse

import (
	"strconv"
	"strings"
	"time"
)

// Date parses a month/day/year due-date string. Two-digit years are
// promoted to the 2000s. It returns ok=false for anything that is not
// exactly three slash-delimited numeric components, or when the constructed
// date's year does not round-trip — which guards against month overflow
// silently rolling into an adjacent year. Callers must treat an absent date
// as sorting first ascending and as excluded by any active date-range
// filter.
func Date(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	if year >= 0 && year < 100 {
		year += 2000
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}
