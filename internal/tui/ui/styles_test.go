package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"TabSeparator", styles.TabSeparator},
		{"Content", styles.Content},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusValue", styles.StatusValue},
		{"StatusHelp", styles.StatusHelp},
		{"Count", styles.Count},
		{"CountPulse", styles.CountPulse},
		{"CountCompleted", styles.CountCompleted},
		{"Target", styles.Target},
		{"PhraseArabic", styles.PhraseArabic},
		{"PhraseLatin", styles.PhraseLatin},
		{"PhraseOther", styles.PhraseOther},
		{"Listening", styles.Listening},
		{"Idle", styles.Idle},
		{"HistorySelected", styles.HistorySelected},
		{"HistoryIndex", styles.HistoryIndex},
		{"HistoryTime", styles.HistoryTime},
		{"HistoryPhrase", styles.HistoryPhrase},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"Bar", styles.Bar},
		{"HelpKey", styles.HelpKey},
		{"HelpDesc", styles.HelpDesc},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("test")
			if !strings.Contains(rendered, "test") {
				t.Errorf("expected rendered output of %s to contain the input, got %q", tt.name, rendered)
			}
		})
	}
}

func TestStyles_CountVariantsArePadded(t *testing.T) {
	styles := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Count":          styles.Count,
		"CountPulse":     styles.CountPulse,
		"CountCompleted": styles.CountCompleted,
	} {
		if style.GetPaddingLeft() != 2 || style.GetPaddingRight() != 2 {
			t.Errorf("%s: expected horizontal padding 2 so the width does not jump on pulse", name)
		}
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("dracula")
	styles := NewStylesFromRegistry(tp.Registry())

	if styles.App.GetPaddingTop() != 1 {
		t.Errorf("expected App padding 1, got %d", styles.App.GetPaddingTop())
	}
	if styles.StatLabel.GetWidth() != 20 {
		t.Errorf("expected StatLabel width 20, got %d", styles.StatLabel.GetWidth())
	}
	if got := styles.Success.Render("ok"); !strings.Contains(got, "ok") {
		t.Errorf("Success rendered %q", got)
	}
}
