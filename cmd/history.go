package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/stats"
	"github.com/xolan/tasbih/internal/timeutil"
)

const defaultHistoryLimit = 20

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent counts",
	Long: `List the counts in the history log, newest first.

The history log holds one entry per count since the last reset. Undo removes
the newest entry.

Examples:
  tasbih history                       Show the last 20 counts
  tasbih history --limit 0             Show every count
  tasbih history --last 7              Counts of the last 7 days
  tasbih history --from 2024-03-01 --to 2024-03-07`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		last, _ := cmd.Flags().GetInt("last")
		listHistory(limit, from, to, last)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of entries to show (0 shows all)")
	historyCmd.Flags().String("from", "", "Start date (YYYY-MM-DD, today, yesterday)")
	historyCmd.Flags().String("to", "", "End date (YYYY-MM-DD, today, yesterday)")
	historyCmd.Flags().Int("last", 0, "Show the last N days, including today")
	rootCmd.AddCommand(historyCmd)
}

// listHistory prints history entries within the requested range
func listHistory(limit int, from, to string, last int) {
	if limit < 0 {
		exitWithError(fmt.Sprintf("Invalid limit %d", limit), nil, "Use 0 to show all entries")
		return
	}

	start, end, err := timeutil.ParseRangeFlags(deps.Now(), from, to, last)
	if err != nil {
		exitWithError("Invalid date range", err, "Dates use the YYYY-MM-DD format")
		return
	}

	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	history := a.session.State().History
	total := len(history)
	if from != "" || to != "" || last > 0 {
		history = stats.FilterHistory(history, start, end)
	}
	if len(history) == 0 {
		if total == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "Nothing counted yet")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "No counts in this range")
		}
		return
	}

	matched := len(history)
	recent := stats.Recent(history, limit)
	for i, e := range recent {
		name := e.PhraseID
		if p, ok := phrase.Lookup(e.PhraseID); ok {
			name = p.Display()
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%4d  %s  %s\n",
			matched-i, e.Timestamp.Local().Format("2006-01-02 15:04:05"), name)
	}
	if len(recent) < matched {
		_, _ = fmt.Fprintf(deps.Stdout, "(%d of %d %s, use --limit 0 to show all)\n",
			len(recent), matched, pluralize("entry", matched))
	}
}
