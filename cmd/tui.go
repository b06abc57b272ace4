package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive counter",
	Long: `Open the terminal UI.

Running tasbih without a command does the same when attached to a terminal.
Press ? inside the UI for the key bindings.

Example:
  tasbih tui`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI opens the session and blocks in the terminal UI
func runTUI() {
	// Log lines would corrupt the alternate screen; they are kept only
	// when --log-file is set.
	a, err := openApp(io.Discard)
	if err != nil {
		exitWithError("Failed to open the tasbih session", err,
			"Check the config file with 'tasbih config' and that the data directory is writable")
		return
	}
	defer a.Close()

	delay, _ := a.cfg.Voice.RestartDelayDuration()
	opts := tui.Options{
		Session:      a.session,
		Engine:       deps.NewEngine(a.cfg.Voice.Command, deps.LookPath, a.logger),
		Locale:       a.cfg.Voice.Locale,
		RestartDelay: delay,
		Logger:       a.logger,
		DarkTheme:    a.cfg.UI.DarkTheme,
		LightTheme:   a.cfg.UI.LightTheme,
	}
	if err := deps.RunTUI(opts); err != nil {
		exitWithError("Failed to run TUI", err, "")
		return
	}
}
