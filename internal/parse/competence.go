package parse

import (
	"regexp"
	"strings"
)

var competenceTokenRe = regexp.MustCompile(`([a-z]{3})-?(\d{2})`)

var competenceMonths = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// Competence rewrites a 3-letter-month + 2-digit-year token (case
// insensitive, optional separator) as MM/YYYY. Unrecognized input passes
// through unchanged; this is a display fallback, not an error.
func Competence(s string) string {
	m := competenceTokenRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return s
	}
	month, ok := competenceMonths[m[1]]
	if !ok {
		return s
	}
	return month + "/20" + m[2]
}
