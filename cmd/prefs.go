package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/session"
)

// soundCmd represents the sound command
var soundCmd = &cobra.Command{
	Use:   "sound [on|off]",
	Short: "Show or set the count tone",
	Long: `Show whether a tone is played on every count, or turn it on or off.

Examples:
  tasbih sound
  tasbih sound off`,
	ValidArgs: []string{"on", "off"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		setSound(args)
	},
}

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the UI theme",
	Long: `Show the theme mode of the terminal UI, or switch between dark and light.

The themes used for each mode are set by ui.dark_theme and ui.light_theme in
the config file.

Examples:
  tasbih theme
  tasbih theme dark`,
	ValidArgs: []string{"dark", "light"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		setTheme(args)
	},
}

func init() {
	rootCmd.AddCommand(soundCmd)
	rootCmd.AddCommand(themeCmd)
}

// setSound prints or changes the sound preference
func setSound(args []string) {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	if len(args) > 0 {
		if _, err := a.session.Handle(session.SetSound{Enabled: args[0] == "on"}); err != nil {
			exitWithError("Failed to change sound", err, "")
			return
		}
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Sound: %s\n", onOff(a.session.SoundEnabled()))
}

// setTheme prints or changes the dark mode preference
func setTheme(args []string) {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	if len(args) > 0 {
		if _, err := a.session.Handle(session.SetDarkMode{Enabled: args[0] == "dark"}); err != nil {
			exitWithError("Failed to change theme", err, "")
			return
		}
	}
	dark := a.session.DarkMode()
	name := a.cfg.UI.LightTheme
	if dark {
		name = a.cfg.UI.DarkTheme
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Theme: %s (%s)\n", themeName(dark), name)
}
