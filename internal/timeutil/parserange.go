package timeutil

import (
	"fmt"
	"time"
)

// ParseRangeFlags turns --from/--to/--last flag values into an inclusive
// [start, end] range relative to now. An unset bound is zero for start and
// the end of today for end. --last cannot be combined with --from or --to.
func ParseRangeFlags(now time.Time, fromStr, toStr string, lastDays int) (start, end time.Time, err error) {
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --last value %d: must be positive", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	loc := now.Location()
	if lastDays > 0 {
		return StartOfDay(now.AddDate(0, 0, -(lastDays - 1))), EndOfDay(now), nil
	}

	if fromStr != "" {
		start, err = ParseDate(fromStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	end = EndOfDay(now)
	if toStr != "" {
		to, err := ParseDate(toStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(to)
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			DateKey(start), DateKey(end))
	}

	return start, end, nil
}
