package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language due-date phrases to calendar dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Resolve converts a relative date phrase into an absolute date, using base as
// the reference point (usually time.Now()). The second return value is false
// when the phrase is not recognized; callers treat that as "no due date", not
// as a failure.
//
// "next month" means base+30 days, not a calendar month.
func (p *Parser) Resolve(phrase string, base time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return time.Time{}, false
	}

	switch phrase {
	case "today":
		return p.startOfDay(base), true
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	case "next week":
		return p.startOfDay(base.AddDate(0, 0, 7)), true
	case "next month":
		return p.startOfDay(base.AddDate(0, 0, 30)), true
	}

	// "in N days" style phrases: every digit in the phrase contributes to N.
	if strings.Contains(phrase, "in") && strings.Contains(phrase, "day") {
		if days, ok := extractNumber(phrase); ok {
			return p.startOfDay(base.AddDate(0, 0, days)), true
		}
	}

	if strings.Contains(phrase, "in") && strings.Contains(phrase, "week") {
		if weeks, ok := extractNumber(phrase); ok {
			return p.startOfDay(base.AddDate(0, 0, weeks*7)), true
		}
	}

	return time.Time{}, false
}

// extractNumber concatenates all digit characters in s into one integer.
func extractNumber(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
