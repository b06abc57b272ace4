package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		// Navigation
		{"Up", keys.Up},
		{"Down", keys.Down},

		// Tab navigation
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},

		// Actions
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},

		// Counter
		{"Tap", keys.Tap},
		{"Undo", keys.Undo},
		{"Reset", keys.Reset},
		{"PrevPhrase", keys.PrevPhrase},
		{"NextPhrase", keys.NextPhrase},
		{"PrevTarget", keys.PrevTarget},
		{"NextTarget", keys.NextTarget},

		// Toggles
		{"Voice", keys.Voice},
		{"Sound", keys.Sound},
		{"Dark", keys.Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Tap space", keys.Tap, " "},
		{"Tap enter", keys.Tap, "enter"},
		{"Undo u", keys.Undo, "u"},
		{"Undo backspace", keys.Undo, "backspace"},
		{"Reset R", keys.Reset, "R"},
		{"PrevPhrase h", keys.PrevPhrase, "h"},
		{"NextPhrase l", keys.NextPhrase, "l"},
		{"PrevTarget [", keys.PrevTarget, "["},
		{"NextTarget ]", keys.NextTarget, "]"},
		{"Voice v", keys.Voice, "v"},
		{"Sound s", keys.Sound, "s"},
		{"Dark d", keys.Dark, "d"},
		{"Back esc", keys.Back, "esc"},
		{"Help ?", keys.Help, "?"},
		{"Tab1 1", keys.Tab1, "1"},
		{"Tab3 3", keys.Tab3, "3"},
		{"NextTab tab", keys.NextTab, "tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, k := range tt.binding.Keys() {
				if k == tt.key {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected binding %s to include key %q, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestResetIsNotLowercase(t *testing.T) {
	keys := DefaultKeyMap()
	for _, k := range keys.Reset.Keys() {
		if k == "r" {
			t.Error("reset must not be bound to a key that is easy to hit by accident")
		}
	}
}
