package session

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/tally"
)

// StateKey is the store key the snapshot is written under.
const StateKey = "state"

// Snapshot is the persisted form of a session.
type Snapshot struct {
	Count        int                  `json:"count"`
	Target       int                  `json:"target"`
	SelectedZikr string               `json:"selectedZikr"`
	History      []tally.HistoryEntry `json:"history"`
	DailyRecords []tally.DailyRecord  `json:"dailyRecords"`
	SoundEnabled bool                 `json:"soundEnabled"`
	DarkMode     bool                 `json:"darkMode"`
	DeviceID     string               `json:"deviceId"`
}

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// DefaultSnapshot returns the snapshot of a fresh session.
func DefaultSnapshot(newID func() string) Snapshot {
	return Snapshot{
		Count:        0,
		Target:       tally.DefaultTarget,
		SelectedZikr: phrase.Default().ID,
		History:      []tally.HistoryEntry{},
		DailyRecords: []tally.DailyRecord{},
		SoundEnabled: true,
		DarkMode:     false,
		DeviceID:     newID(),
	}
}

// DecodeSnapshot parses a stored document leniently. Every field decodes on
// its own: a missing or malformed field takes its default without affecting
// the others, and an unparseable document yields the full default snapshot.
// Malformed history entries are skipped. The count is reconciled to the
// history length.
func DecodeSnapshot(raw string, newID func() string, logger *slog.Logger) Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	snap := DefaultSnapshot(newID)
	if raw == "" {
		return snap
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		logger.Warn("stored state is unreadable, starting fresh", "error", err)
		return snap
	}

	field := func(name string, dst any) bool {
		data, ok := fields[name]
		if !ok || string(data) == "null" {
			return false
		}
		if err := json.Unmarshal(data, dst); err != nil {
			logger.Warn("ignoring malformed stored field", "field", name, "error", err)
			return false
		}
		return true
	}

	var target int
	if field("target", &target) {
		if tally.ValidTarget(target) {
			snap.Target = target
		} else {
			logger.Warn("stored target is not a preset", "target", target)
		}
	}

	var selected string
	if field("selectedZikr", &selected) {
		if p, ok := resolvePhrase(selected); ok {
			snap.SelectedZikr = p.ID
		} else {
			logger.Warn("stored phrase is unknown", "selectedZikr", selected)
		}
	}

	var entries []json.RawMessage
	if field("history", &entries) {
		for i, data := range entries {
			var e tally.HistoryEntry
			if err := json.Unmarshal(data, &e); err != nil || e.ID == "" {
				logger.Warn("skipping malformed history entry", "index", i)
				continue
			}
			snap.History = append(snap.History, e)
		}
	}

	var records []tally.DailyRecord
	if field("dailyRecords", &records) {
		snap.DailyRecords = records
	}

	var sound bool
	if field("soundEnabled", &sound) {
		snap.SoundEnabled = sound
	}

	var dark bool
	if field("darkMode", &dark) {
		snap.DarkMode = dark
	}

	var deviceID string
	if field("deviceId", &deviceID) && deviceID != "" {
		snap.DeviceID = deviceID
	}

	// The stored count is dropped so the history length always equals it.
	var count int
	if field("count", &count) && count != len(snap.History) {
		logger.Warn("stored count disagrees with history, using history length",
			"count", count, "history", len(snap.History))
	}
	snap.Count = len(snap.History)

	return snap
}

// Encode returns the JSON document written to the store.
func (s Snapshot) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// State converts the snapshot into a tally.State.
func (s Snapshot) State() tally.State {
	st := tally.New()
	if p, ok := resolvePhrase(s.SelectedZikr); ok {
		st.Selected = p
	}
	if tally.ValidTarget(s.Target) {
		st.Target = s.Target
	}
	st.History = append(st.History, s.History...)
	st.Daily = append(st.Daily, s.DailyRecords...)
	st.Count = len(st.History)
	return st
}

// resolvePhrase accepts a phrase ID or, for documents written with display
// names, the Latin display form.
func resolvePhrase(v string) (phrase.Phrase, bool) {
	if p, ok := phrase.Lookup(v); ok {
		return p, true
	}
	for _, p := range phrase.Catalog() {
		if p.Display() == v {
			return p, true
		}
	}
	return phrase.Phrase{}, false
}
