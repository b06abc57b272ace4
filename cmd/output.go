package cmd

import (
	"fmt"
	"strings"

	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/tally"
)

// exitWithError prints an error with optional details and hint, then exits 1.
func exitWithError(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// formatCount renders "12 / 33 (36%)"; a reached target gets a check mark.
func formatCount(s tally.State) string {
	out := fmt.Sprintf("%d / %d (%.0f%%)", s.Count, s.Target, s.Progress()*100)
	if s.Completed() {
		out += " ✓"
	}
	return out
}

// printStatus prints the selected phrase, the count and today's total.
func printStatus(c *session.Controller) {
	s := c.State()
	_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", s.Selected.Latin, s.Selected.Arabic)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(deps.Stdout, "Count:   %s\n", formatCount(s))
	_, _ = fmt.Fprintf(deps.Stdout, "Today:   %d\n", c.TodayCount())
	_, _ = fmt.Fprintf(deps.Stdout, "Sound:   %s\n", onOff(c.SoundEnabled()))
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:   %s\n", themeName(c.DarkMode()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "ry") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
