package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/stats"
	"github.com/xolan/tasbih/internal/timeutil"
)

const (
	statsDays     = 7
	statsBarWidth = 30
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily statistics",
	Long: `Show totals for today, this week, this month and all time, the current and
longest streak of consecutive days, the last 7 days and how the current
session splits over the phrases.

Example:
  tasbih stats`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// showStats prints the statistics report
func showStats() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	now := deps.Now()
	state := a.session.State()
	sum := stats.Summarize(state.Daily, now)

	_, _ = fmt.Fprintln(deps.Stdout, "Statistics")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d\n", "Today:", sum.Today)
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d\n", "This week:", sum.Week)
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d\n", "This month:", sum.Month)
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d\n", "All time:", sum.Total)
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d\n", "Active days:", sum.ActiveDays)
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %.1f\n", "Average per day:", sum.AveragePerActiveDay)
	if sum.BestDay.Count > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "%-18s %s (%d)\n", "Best day:", sum.BestDay.Date, sum.BestDay.Count)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d %s\n", "Current streak:", sum.CurrentStreak, pluralize("day", sum.CurrentStreak))
	_, _ = fmt.Fprintf(deps.Stdout, "%-18s %d %s\n", "Longest streak:", sum.LongestStreak, pluralize("day", sum.LongestStreak))

	days := stats.LastDays(state.Daily, now, statsDays)
	peak := 0
	for _, d := range days {
		if d.Count > peak {
			peak = d.Count
		}
	}
	_, _ = fmt.Fprintf(deps.Stdout, "\nLast %d days\n", statsDays)
	for _, d := range days {
		label := d.Date
		if t, err := timeutil.ParseDateKey(d.Date, now.Location()); err == nil {
			label = t.Format("Mon Jan 02")
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s  %-*s %d\n", label, statsBarWidth, bar(d.Count, peak, statsBarWidth), d.Count)
	}

	breakdown := stats.BreakdownByPhrase(state.History)
	if len(breakdown) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "\nBy phrase (current session)")
	for _, b := range breakdown {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-26s %5d  %5.1f%%\n", b.Name, b.Count, b.Percent)
	}
}

// bar draws count relative to peak using at most width cells.
func bar(count, peak, width int) string {
	if peak <= 0 || count <= 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
