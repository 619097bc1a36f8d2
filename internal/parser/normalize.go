package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// normalizeLine collapses runs of whitespace to single spaces and trims.
func normalizeLine(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// splitLines breaks an invoice text blob into normalized, non-empty lines.
// All extractors scan this compacted list; multi-line records use bounded
// windows over neighboring entries.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if n := normalizeLine(l); n != "" {
			lines = append(lines, n)
		}
	}
	return lines
}

// reYearRange matches a bare year span like "2012-2021" or "2012 - 2021".
// Vehicle fitment ranges show up on their own lines in several invoice layouts
// and must never be mistaken for a SKU.
var reYearRange = regexp.MustCompile(`^(?:19|20)\d{2}\s*-\s*(?:19|20)\d{2}$`)

func isYearRange(s string) bool {
	return reYearRange.MatchString(strings.TrimSpace(s))
}

// parsePrice parses a captured currency amount (digits only, "$" already
// stripped by the regex). Negative or unparseable amounts are rejected.
func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseQty parses a captured quantity token; only positive integers are valid.
func parseQty(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
