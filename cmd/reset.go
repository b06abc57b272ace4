package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/tally"
)

var resetYes bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the count, history and daily records",
	Long: `Clear the count, the history log and every daily record.

The target and the selected phrase are kept. The previous state is saved as a
backup first and can be brought back with 'tasbih restore'.
A confirmation prompt will be shown unless --yes is specified.

Example:
  tasbih reset
  tasbih reset --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resetSession()
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

// resetSession clears the session after confirmation
func resetSession() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	s := a.session.State()
	if s.Count == 0 && len(s.History) == 0 && len(s.Daily) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to reset")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Current count: %s, %d %s recorded over %d %s\n",
		formatCount(s),
		tally.TotalCount(s.Daily), pluralize("count", tally.TotalCount(s.Daily)),
		tally.UniqueDayCount(s.Daily), pluralize("day", tally.UniqueDayCount(s.Daily)))

	if !resetYes && !promptConfirmation("Reset all counts, history and daily records? [y/N]: ") {
		_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
		return
	}

	if _, err := a.session.Handle(session.Reset{}); err != nil {
		exitWithError("Failed to reset", err, "")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Reset complete. Restore the previous state with 'tasbih restore'")
}

// promptConfirmation asks a yes/no question on stdin.
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation(question string) bool {
	_, _ = fmt.Fprint(deps.Stdout, question)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
