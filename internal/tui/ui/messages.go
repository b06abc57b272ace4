package ui

import (
	"github.com/xolan/tasbih/internal/voice"
)

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// PulseClearMsg asks the root model to lower the count highlight raised by
// the increment with sequence number Seq.
type PulseClearMsg struct {
	Seq uint64
}

// VoiceEventMsg carries a recognition event from the engine goroutine into
// the event loop.
type VoiceEventMsg struct {
	Event voice.Event
}

// NoticeMsg shows a message in the status bar until the next key press.
type NoticeMsg struct {
	Text string
}

// StateChangedMsg is broadcast to the views after the session changed so
// they can refresh derived data.
type StateChangedMsg struct{}
