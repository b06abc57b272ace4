package cmd

import (
	"fmt"
	"strings"
	"testing"
)

func TestShowStats_Empty(t *testing.T) {
	env := setupTest(t)

	showStats()

	assertNoError(t, env)
	out := env.stdout.String()
	assertContains(t, out, fmt.Sprintf("%-18s %d", "All time:", 0))
	assertContains(t, out, "Last 7 days")
	assertContains(t, out, "Sun Mar 10")
	if strings.Contains(out, "Best day:") || strings.Contains(out, "By phrase") {
		t.Errorf("Empty stats should not show best day or phrase breakdown: %s", out)
	}
}

func TestShowStats_AcrossDays(t *testing.T) {
	env := setupTest(t)
	seedDays(env, 1, 3, 2)

	showStats()

	assertNoError(t, env)
	out := env.stdout.String()
	assertContains(t, out, fmt.Sprintf("%-18s %d", "Today:", 1))
	assertContains(t, out, fmt.Sprintf("%-18s %d", "This month:", 6))
	assertContains(t, out, fmt.Sprintf("%-18s %d", "All time:", 6))
	assertContains(t, out, fmt.Sprintf("%-18s %d", "Active days:", 3))
	assertContains(t, out, fmt.Sprintf("%-18s %.1f", "Average per day:", 2.0))
	assertContains(t, out, fmt.Sprintf("%-18s %s (%d)", "Best day:", "2024-03-09", 3))
	assertContains(t, out, fmt.Sprintf("%-18s %d days", "Current streak:", 3))
	assertContains(t, out, fmt.Sprintf("%-18s %d days", "Longest streak:", 3))
	assertContains(t, out, "By phrase (current session)")
	assertContains(t, out, "100.0%")
}

func TestBar(t *testing.T) {
	tests := []struct {
		count, peak, width int
		want               int
	}{
		{0, 10, 30, 0},
		{10, 10, 30, 30},
		{5, 10, 30, 15},
		{1, 1000, 30, 1},
		{3, 0, 30, 0},
	}
	for _, tt := range tests {
		if got := len(bar(tt.count, tt.peak, tt.width)); got != tt.want {
			t.Errorf("bar(%d, %d, %d) has %d cells, want %d", tt.count, tt.peak, tt.width, got, tt.want)
		}
	}
}
