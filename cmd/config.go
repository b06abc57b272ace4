package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/config"
	"github.com/xolan/tasbih/internal/storage"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration in effect after the config file, environment
variables and flags are applied.

Examples:
  tasbih config          Show the effective settings
  tasbih config init     Write a commented sample config file
  tasbih config path     Print the config file location`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfigPath()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configPathHint returns the config file path for use in messages.
func configPathHint() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.ConfigFile
	}
	return path
}

// showConfig prints the effective configuration
func showConfig() {
	cfg, path, err := loadConfig()
	if err != nil {
		exitWithError("Invalid configuration", err, "Fix the config file or regenerate it with 'tasbih config init'")
		return
	}

	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		if dir, err := storage.DefaultDir(); err == nil {
			dataDir = dir
		}
	}
	command := "(not set)"
	if len(cfg.Voice.Command) > 0 {
		command = strings.Join(cfg.Voice.Command, " ")
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(deps.Stdout, "storage.backend     %s\n", cfg.Storage.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "storage.dir         %s\n", dataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "voice.locale        %s\n", cfg.Voice.Locale)
	_, _ = fmt.Fprintf(deps.Stdout, "voice.command       %s\n", command)
	_, _ = fmt.Fprintf(deps.Stdout, "voice.restart_delay %s\n", cfg.Voice.RestartDelay)
	_, _ = fmt.Fprintf(deps.Stdout, "sound.output        %s\n", cfg.Sound.Output)
	_, _ = fmt.Fprintf(deps.Stdout, "sound.frequency     %g\n", cfg.Sound.Frequency)
	_, _ = fmt.Fprintf(deps.Stdout, "sound.duration_ms   %d\n", cfg.Sound.DurationMs)
	_, _ = fmt.Fprintf(deps.Stdout, "ui.dark_theme       %s\n", cfg.UI.DarkTheme)
	_, _ = fmt.Fprintf(deps.Stdout, "ui.light_theme      %s\n", cfg.UI.LightTheme)
	_, _ = fmt.Fprintf(deps.Stdout, "ui.pulse_ms         %d\n", cfg.UI.PulseMs)
}

// initConfig writes the sample config file
func initConfig() {
	path, err := config.GetConfigPath()
	if err != nil {
		exitWithError("Failed to determine config file location", err, "")
		return
	}
	if err := config.WriteSampleConfig(path); err != nil {
		exitWithError("Failed to create config file", err, "Edit the existing file or remove it first")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
}

// showConfigPath prints where the config file is read from
func showConfigPath() {
	path, err := config.GetConfigPath()
	if err != nil {
		exitWithError("Failed to determine config file location", err, "")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, path)
}
