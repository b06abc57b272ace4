package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/session"
)

// phrasesCmd represents the phrases command
var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "List the phrases that can be counted",
	Long: `List the phrase catalog. The selected phrase is marked with '*'.

Example:
  tasbih phrases`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listPhrases()
	},
}

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select <phrase>",
	Short: "Choose the phrase to count",
	Long: `Choose the phrase future counts are attributed to.

The phrase can be given by id, by name or by its number in 'tasbih phrases'.
Selecting a phrase does not change the count.

Examples:
  tasbih select alhamdulillah
  tasbih select "Allahu Akbar"
  tasbih select 3`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completePhrases,
	Run: func(cmd *cobra.Command, args []string) {
		selectPhrase(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(phrasesCmd)
	rootCmd.AddCommand(selectCmd)
}

// listPhrases prints the catalog
func listPhrases() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	selected := a.session.Selected().ID
	for i, p := range phrase.Catalog() {
		marker := " "
		if p.ID == selected {
			marker = "*"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %d. %-26s %-22s %s\n", marker, i+1, p.Latin, p.ID, p.Arabic)
	}
}

// selectPhrase resolves query and selects the phrase
func selectPhrase(query string) {
	p, ok := phrase.Find(query)
	if !ok {
		exitWithError(fmt.Sprintf("Unknown phrase '%s'", query), nil,
			"Run 'tasbih phrases' to see the available phrases")
		return
	}

	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	if _, err := a.session.Handle(session.SelectPhrase{ID: p.ID}); err != nil {
		exitWithError("Failed to select phrase", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Selected: %s  %s\n", p.Latin, p.Arabic)
}
