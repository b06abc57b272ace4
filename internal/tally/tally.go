// Package tally implements the counter, the history log and the daily
// aggregator. The three are views over one stream of increment and
// decrement events and are only ever changed together through State's
// methods.
package tally

import (
	"errors"
	"time"

	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/timeutil"
)

// Targets are the selectable target presets, in display order.
var Targets = []int{33, 66, 99, 100, 333, 1000}

// DefaultTarget is the first preset.
const DefaultTarget = 33

// ErrInvalidTarget is returned when a target is not one of the presets.
var ErrInvalidTarget = errors.New("target must be one of 33, 66, 99, 100, 333, 1000")

// HistoryEntry records one increment.
type HistoryEntry struct {
	ID        string    `json:"id"`
	PhraseID  string    `json:"zikr"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyRecord accumulates the increments of one calendar date. Zikr holds the
// display name of the phrase counted last on that date.
type DailyRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Zikr  string `json:"zikr"`
}

// State is the counter aggregate. The zero value is not usable; call New.
type State struct {
	Count    int
	Target   int
	Selected phrase.Phrase
	History  []HistoryEntry
	Daily    []DailyRecord
}

// New returns the default state: zero count, first target preset and the
// first catalog phrase.
func New() State {
	return State{
		Target:   DefaultTarget,
		Selected: phrase.Default(),
		History:  []HistoryEntry{},
		Daily:    []DailyRecord{},
	}
}

// ValidTarget reports whether n is one of the presets.
func ValidTarget(n int) bool {
	for _, t := range Targets {
		if t == n {
			return true
		}
	}
	return false
}

// CycleTarget returns the preset delta steps away from current, wrapping
// around. A current value outside the presets starts from the first preset.
func CycleTarget(current, delta int) int {
	idx := 0
	for i, t := range Targets {
		if t == current {
			idx = i
			break
		}
	}
	n := len(Targets)
	return Targets[((idx+delta)%n+n)%n]
}

// Increment counts one occurrence of p at now. The history entry gets the
// given id. The daily record for now's calendar date is updated as well.
func (s *State) Increment(p phrase.Phrase, id string, now time.Time) HistoryEntry {
	e := HistoryEntry{ID: id, PhraseID: p.ID, Timestamp: now}
	s.Count++
	s.History = append(s.History, e)
	s.recordToday(p, now)
	return e
}

// Decrement removes the most recent history entry, whatever its phrase, and
// lowers the count. It is a no-op at zero. Daily records are left alone.
func (s *State) Decrement() (HistoryEntry, bool) {
	if s.Count <= 0 {
		return HistoryEntry{}, false
	}
	s.Count--
	var removed HistoryEntry
	if n := len(s.History); n > 0 {
		removed = s.History[n-1]
		s.History = s.History[:n-1]
	}
	return removed, true
}

// ResetAll clears the count, the history and every daily record.
func (s *State) ResetAll() {
	s.Count = 0
	s.History = []HistoryEntry{}
	s.Daily = []DailyRecord{}
}

// SelectPhrase changes the phrase future increments are attributed to.
func (s *State) SelectPhrase(p phrase.Phrase) {
	s.Selected = p
}

// SetTarget sets the target to one of the presets.
func (s *State) SetTarget(n int) error {
	if !ValidTarget(n) {
		return ErrInvalidTarget
	}
	s.Target = n
	return nil
}

// Progress returns count/target clamped to [0, 1].
func (s State) Progress() float64 {
	if s.Target <= 0 {
		return 0
	}
	p := float64(s.Count) / float64(s.Target)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Completed reports whether the target has been reached.
func (s State) Completed() bool {
	return s.Target > 0 && s.Count >= s.Target
}

func (s *State) recordToday(p phrase.Phrase, now time.Time) {
	today := timeutil.DateKey(now)
	for i, r := range s.Daily {
		if r.Date == today {
			s.Daily[i] = DailyRecord{Date: today, Count: r.Count + 1, Zikr: p.Display()}
			return
		}
	}
	s.Daily = append(s.Daily, DailyRecord{Date: today, Count: 1, Zikr: p.Display()})
}

// TodayCount sums the records dated today.
func TodayCount(records []DailyRecord, now time.Time) int {
	today := timeutil.DateKey(now)
	total := 0
	for _, r := range records {
		if r.Date == today {
			total += r.Count
		}
	}
	return total
}

// TotalCount sums every record.
func TotalCount(records []DailyRecord) int {
	total := 0
	for _, r := range records {
		total += r.Count
	}
	return total
}

// UniqueDayCount returns the number of distinct dates present.
func UniqueDayCount(records []DailyRecord) int {
	days := make(map[string]struct{}, len(records))
	for _, r := range records {
		days[r.Date] = struct{}{}
	}
	return len(days)
}
