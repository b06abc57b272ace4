// Package stats derives summaries from daily records and the history log.
package stats

import (
	"sort"
	"time"

	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/tally"
	"github.com/xolan/tasbih/internal/timeutil"
)

// Summary contains aggregated statistics over all daily records
type Summary struct {
	Today int
	Week  int
	Month int
	Total int
	// ActiveDays is the number of distinct dates with a record
	ActiveDays          int
	AveragePerActiveDay float64
	BestDay             DayCount
	// CurrentStreak counts consecutive active days ending today, or ending
	// yesterday when nothing has been counted yet today
	CurrentStreak int
	LongestStreak int
}

// DayCount is the total of one calendar date
type DayCount struct {
	Date  string
	Count int
}

// PhraseBreakdown contains the history totals of a single phrase
type PhraseBreakdown struct {
	PhraseID string
	Name     string
	Count    int
	Percent  float64
}

// totalsByDate sums records per date; duplicate dates are merged.
func totalsByDate(records []tally.DailyRecord) map[string]int {
	totals := make(map[string]int, len(records))
	for _, r := range records {
		totals[r.Date] += r.Count
	}
	return totals
}

// Summarize computes the summary of records relative to now.
func Summarize(records []tally.DailyRecord, now time.Time) Summary {
	s := Summary{}
	totals := totalsByDate(records)
	if len(totals) == 0 {
		return s
	}

	today := timeutil.DateKey(now)
	weekStart := timeutil.DateKey(timeutil.StartOfWeek(now))
	monthStart := timeutil.DateKey(timeutil.StartOfMonth(now))

	for date, count := range totals {
		s.Total += count
		if date == today {
			s.Today += count
		}
		// Date keys sort lexicographically in calendar order.
		if date >= weekStart && date <= today {
			s.Week += count
		}
		if date >= monthStart && date <= today {
			s.Month += count
		}
		if count > s.BestDay.Count || (count == s.BestDay.Count && date > s.BestDay.Date) {
			s.BestDay = DayCount{Date: date, Count: count}
		}
	}

	s.ActiveDays = len(totals)
	s.AveragePerActiveDay = float64(s.Total) / float64(s.ActiveDays)
	s.CurrentStreak = currentStreak(totals, now)
	s.LongestStreak = longestStreak(totals)
	return s
}

func currentStreak(totals map[string]int, now time.Time) int {
	day := timeutil.StartOfDay(now)
	if totals[timeutil.DateKey(day)] == 0 {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for totals[timeutil.DateKey(day)] > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func longestStreak(totals map[string]int) int {
	dates := make([]string, 0, len(totals))
	for date, count := range totals {
		if count > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	longest, run := 0, 0
	prev := ""
	for _, date := range dates {
		if p, err := timeutil.PreviousDateKey(date); err == nil && p == prev {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = date
	}
	return longest
}

// LastDays returns the totals of the n days ending today, oldest first.
// Days without a record have a zero count.
func LastDays(records []tally.DailyRecord, now time.Time, n int) []DayCount {
	totals := totalsByDate(records)
	keys := timeutil.LastNDays(now, n)
	out := make([]DayCount, len(keys))
	for i, k := range keys {
		out[i] = DayCount{Date: k, Count: totals[k]}
	}
	return out
}

// BreakdownByPhrase groups history entries by phrase, sorted by count
// descending and then by catalog order.
func BreakdownByPhrase(history []tally.HistoryEntry) []PhraseBreakdown {
	if len(history) == 0 {
		return []PhraseBreakdown{}
	}

	counts := make(map[string]int)
	for _, e := range history {
		counts[e.PhraseID]++
	}

	result := make([]PhraseBreakdown, 0, len(counts))
	for id, count := range counts {
		name := id
		if p, ok := phrase.Lookup(id); ok {
			name = p.Display()
		}
		result = append(result, PhraseBreakdown{
			PhraseID: id,
			Name:     name,
			Count:    count,
			Percent:  float64(count) * 100 / float64(len(history)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return catalogRank(result[i].PhraseID) < catalogRank(result[j].PhraseID)
	})
	return result
}

func catalogRank(id string) int {
	if i := phrase.Index(id); i >= 0 {
		return i
	}
	return len(phrase.Catalog())
}

// FilterHistory returns the entries whose timestamp falls within
// [start, end], preserving order.
func FilterHistory(history []tally.HistoryEntry, start, end time.Time) []tally.HistoryEntry {
	out := []tally.HistoryEntry{}
	for _, e := range history {
		if timeutil.IsInRange(e.Timestamp, start, end) {
			out = append(out, e)
		}
	}
	return out
}

// Recent returns the last n entries, newest first. n <= 0 returns all.
func Recent(history []tally.HistoryEntry, n int) []tally.HistoryEntry {
	if n <= 0 || n > len(history) {
		n = len(history)
	}
	out := make([]tally.HistoryEntry, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		out = append(out, history[i])
	}
	return out
}
