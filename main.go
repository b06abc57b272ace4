package main

import (
	"fmt"
	"os"

	"github.com/xolan/tasbih/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is os.Exit, replaced in tests.
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run checks the configuration and executes the root command. It returns the
// process exit code.
func run() int {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.CheckConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration\nDetails: %v\n", err)
		fmt.Fprintln(os.Stderr, "Hint: Fix the config file or remove it to use the defaults")
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
