package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/session"
)

// maxTapsPerInvocation bounds tap [n] so a typo cannot flood the history.
const maxTapsPerInvocation = 1000

// tapCmd represents the tap command
var tapCmd = &cobra.Command{
	Use:   "tap [n]",
	Short: "Count the selected phrase",
	Long: `Count the selected phrase once, or n times.

Each count is added to the history log and to today's daily record.

Examples:
  tasbih tap        Count once
  tasbih tap 33     Count 33 times`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tap(args)
	},
}

func init() {
	rootCmd.AddCommand(tapCmd)
}

// tap increments the counter n times
func tap(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 || v > maxTapsPerInvocation {
			exitWithError(fmt.Sprintf("Invalid count '%s'", args[0]), nil,
				fmt.Sprintf("Use a number between 1 and %d", maxTapsPerInvocation))
			return
		}
		n = v
	}

	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	wasCompleted := a.session.State().Completed()
	for i := 0; i < n; i++ {
		if _, err := a.session.Handle(session.Increment{Source: session.SourceTap}); err != nil {
			exitWithError("Failed to count", err, "")
			return
		}
	}

	s := a.session.State()
	_, _ = fmt.Fprintf(deps.Stdout, "%s: %s\n", s.Selected.Latin, formatCount(s))
	_, _ = fmt.Fprintf(deps.Stdout, "Today: %d\n", a.session.TodayCount())
	if s.Completed() && !wasCompleted {
		_, _ = fmt.Fprintf(deps.Stdout, "Target of %d reached\n", s.Target)
	}
}
