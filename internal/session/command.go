// Package session owns the live counter session. Every external trigger
// (key press, CLI invocation, voice match, timer) is a typed Command handled
// by one Controller on one goroutine; each observable change is written
// through to the durable store.
package session

import (
	"errors"
	"time"

	"github.com/xolan/tasbih/internal/tally"
)

var (
	// ErrUnknownPhrase is returned when selecting a phrase that is not in the catalog.
	ErrUnknownPhrase = errors.New("unknown phrase")
	// ErrUnknownCommand is returned for a command type the controller does not handle.
	ErrUnknownCommand = errors.New("unknown command")
)

// Source identifies what produced an increment.
type Source int

const (
	SourceTap Source = iota
	SourceVoice
)

func (s Source) String() string {
	switch s {
	case SourceTap:
		return "tap"
	case SourceVoice:
		return "voice"
	default:
		return "unknown"
	}
}

// Command is a state transition request.
type Command interface {
	command()
}

// Increment counts the selected phrase once.
type Increment struct{ Source Source }

// Decrement removes the latest history entry.
type Decrement struct{}

// Reset clears the count, history and daily records.
type Reset struct{}

// SelectPhrase selects the phrase with the given ID.
type SelectPhrase struct{ ID string }

// CyclePhrase selects the phrase Delta catalog positions away.
type CyclePhrase struct{ Delta int }

// SetTarget sets the target to a preset.
type SetTarget struct{ Target int }

// CycleTarget moves Delta presets away from the current target.
type CycleTarget struct{ Delta int }

// SetSound turns the feedback tone on or off.
type SetSound struct{ Enabled bool }

// SetDarkMode switches the display theme.
type SetDarkMode struct{ Enabled bool }

// ClearPulse lowers the success pulse raised by increment Seq. A zero Seq
// clears unconditionally; a stale Seq is ignored.
type ClearPulse struct{ Seq uint64 }

func (Increment) command() {}
func (Decrement) command() {}
func (Reset) command() {}
func (SelectPhrase) command() {}
func (CyclePhrase) command() {}
func (SetTarget) command() {}
func (CycleTarget) command() {}
func (SetSound) command() {}
func (SetDarkMode) command() {}
func (ClearPulse) command() {}

// Result describes the outcome of a handled command.
type Result struct {
	// Changed is true when an observable field changed and was persisted.
	Changed bool
	// Entry is the history entry appended by Increment or removed by Decrement.
	Entry tally.HistoryEntry
	// ClearPulseAfter is non-zero after an increment; the caller schedules
	// ClearPulse{Seq: PulseSeq} after this delay.
	ClearPulseAfter time.Duration
	PulseSeq        uint64
}
