package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasbih",
	Short: "A dhikr counter for the terminal",
	Long: `tasbih counts repetitions of a selected phrase toward a target, by key press,
CLI invocation or voice, and keeps a per-day tally.

Usage:
  tasbih                       Open the counter (shows the status when not on a terminal)
  tasbih tap [n]               Count the selected phrase n times
  tasbih undo                  Remove the last count
  tasbih reset                 Clear the count, history and daily records
  tasbih select <phrase>       Choose the phrase to count
  tasbih target <n>            Choose the target (33, 66, 99, 100, 333, 1000)
  tasbih listen                Count by voice without the terminal UI
  tasbih stats                 Show daily statistics and streaks

Settings are read from config.toml in the user config directory. The data
directory and storage backend can be overridden with --data-dir/--backend or
the TASBIH_DATA_DIR/TASBIH_BACKEND environment variables.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if deps.IsTerminal() {
			runTUI()
			return
		}
		showStatus()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", "", "directory holding the session state (env "+envDataDir+")")
	flags.String("backend", "", "storage backend: file, sqlite or memory (env "+envBackend+")")
	flags.Bool("verbose", false, "log debug messages")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	_ = settings.BindPFlag(keyDataDir, flags.Lookup("data-dir"))
	_ = settings.BindPFlag(keyBackend, flags.Lookup("backend"))
	_ = settings.BindPFlag(keyVerbose, flags.Lookup("verbose"))
	_ = settings.BindPFlag(keyLogFile, flags.Lookup("log-file"))
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tasbih version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
