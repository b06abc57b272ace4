package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/storage"
)

// backupsCmd represents the backups command
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List the backups taken before each reset",
	Long: `List the stored backups of the session, most recent first.

A backup is taken before every reset and every restore. Up to three are kept.

Example:
  tasbih backups`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listBackups()
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore a backup",
	Long: `Replace the session with backup n (default 1, the most recent).

The current session is backed up first, so a restore can be undone by
restoring again.

Examples:
  tasbih restore        Undo the last reset
  tasbih restore 2      Restore the second most recent backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restore(args)
	},
}

func init() {
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(restoreCmd)
}

// listBackups prints a summary of each backup
func listBackups() {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	key := a.session.StoreKey()
	backups, err := storage.ListBackups(a.store, key)
	if err != nil {
		exitWithError("Failed to list backups", err, "")
		return
	}
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups")
		return
	}

	for _, b := range backups {
		raw, _, err := a.store.Get(b.Key)
		if err != nil {
			a.logger.Warn("failed to read backup", "key", b.Key, "error", err)
			continue
		}
		snap := session.DecodeSnapshot(raw, session.NewID, a.logger)
		_, _ = fmt.Fprintf(deps.Stdout, "%d. count %d / %d, %d %s, %d %s recorded (%d bytes)\n",
			b.Number, snap.Count, snap.Target,
			len(snap.History), pluralize("entry", len(snap.History)),
			len(snap.DailyRecords), pluralize("day", len(snap.DailyRecords)),
			b.Size)
	}
}

// restore replaces the session with a backup and reloads it
func restore(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 || v > storage.MaxBackupCount {
			exitWithError(fmt.Sprintf("Invalid backup number '%s'", args[0]), nil,
				fmt.Sprintf("Use a number between 1 and %d", storage.MaxBackupCount))
			return
		}
		n = v
	}

	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	if err := storage.RestoreBackup(a.store, a.session.StoreKey(), n); err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			exitWithError(fmt.Sprintf("Backup %d does not exist", n), nil, "Run 'tasbih backups' to list the available backups")
			return
		}
		exitWithError("Failed to restore backup", err, "")
		return
	}
	a.session.Hydrate()

	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d\n", n)
	printStatus(a.session)
}
