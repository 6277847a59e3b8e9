// Package parse converts the ledger's locale-formatted free-text values
// (BRL currency strings, month/day/year dates, competence-period tokens)
// into numeric and temporal values. The source data is unreliable, so every
// function here is total: malformed input degrades to a zero or absent
// value instead of an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyPrefixRe = regexp.MustCompile(`R\$\s?`)
	leadingFloatRe   = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)
)

// Monetary coerces a raw monetary value to a float64. Numbers pass through
// unchanged. Strings lose a currency-symbol prefix and surrounding
// whitespace; empty or a bare "-" mean zero; thousands dots are stripped
// and a decimal comma becomes a decimal point before parsing. Any other
// non-numeric form maps to zero.
func Monetary(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		return monetaryString(val)
	default:
		return 0
	}
}

func monetaryString(s string) float64 {
	cleaned := strings.TrimSpace(currencyPrefixRe.ReplaceAllString(s, ""))
	if cleaned == "" || cleaned == "-" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	return leadingFloat(cleaned)
}

// leadingFloat parses the longest numeric prefix of s, yielding zero when
// none exists. Trailing garbage after the number is tolerated.
func leadingFloat(s string) float64 {
	m := leadingFloatRe.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
