package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/session"
)

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recent count",
	Long: `Remove the most recent count from the counter and the history log.

The most recent history entry is removed whatever its phrase. Today's daily
record keeps the count; daily records only ever grow until a reset.

Example:
  tasbih undo`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		undo()
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

// undo decrements the counter by one
func undo() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	res, err := a.session.Handle(session.Decrement{})
	if err != nil {
		exitWithError("Failed to undo", err, "")
		return
	}
	if !res.Changed {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to undo")
		return
	}

	name := res.Entry.PhraseID
	if p, ok := phrase.Lookup(res.Entry.PhraseID); ok {
		name = p.Latin
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed: %s (%s)\n", name, res.Entry.Timestamp.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(deps.Stdout, "Count: %s\n", formatCount(a.session.State()))
}
