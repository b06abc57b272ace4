package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/tally"
)

// targetCmd represents the target command
var targetCmd = &cobra.Command{
	Use:   "target [n]",
	Short: "Show or set the target",
	Long: `Show the current target, or set it to one of the presets:
33, 66, 99, 100, 333 or 1000.

Examples:
  tasbih target         Show the current target
  tasbih target 99      Set the target to 99`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: targetArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		setTarget(args)
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
}

func targetArgs() []string {
	out := make([]string, len(tally.Targets))
	for i, t := range tally.Targets {
		out[i] = strconv.Itoa(t)
	}
	return out
}

// setTarget prints or changes the target
func setTarget(args []string) {
	presets := strings.Join(targetArgs(), ", ")

	var n int
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			exitWithError(fmt.Sprintf("Invalid target '%s'", args[0]), nil, "Use one of "+presets)
			return
		}
		n = v
	}

	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	if len(args) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Target: %d\n", a.session.Target())
		_, _ = fmt.Fprintf(deps.Stdout, "Presets: %s\n", presets)
		return
	}

	if _, err := a.session.Handle(session.SetTarget{Target: n}); err != nil {
		if errors.Is(err, tally.ErrInvalidTarget) {
			exitWithError(fmt.Sprintf("Invalid target %d", n), nil, "Use one of "+presets)
			return
		}
		exitWithError("Failed to set target", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Target: %s\n", formatCount(a.session.State()))
}
