package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

var (
	yearOnlyRe     = regexp.MustCompile(`^\d{4}$`)
	isoPartialRe   = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	dayMonthOnlyRe = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}$`)
)

// ParseDate parses a date in YYYY-MM-DD or DD/MM/YYYY format and returns
// midnight of that date in loc.
func ParseDate(input string, loc *time.Location) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY)")
	}

	if t, err := time.ParseInLocation(DateLayout, input, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, loc); err == nil {
		return t, nil
	}

	switch {
	case yearOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case dayMonthOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return time.Time{}, fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}
