package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current count",
	Long: `Show the selected phrase, the count toward the target and today's total.

Example:
  tasbih status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus prints the current session
func showStatus() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	printStatus(a.session)
}
