package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/stats"
	"gopkg.in/yaml.v3"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export the session",
	Long: `Export the stored session with derived totals as JSON (default) or YAML.

Examples:
  tasbih export
  tasbih export yaml
  tasbih export json --output tasbih.json`,
	ValidArgs: []string{"json", "yaml"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		format := "json"
		if len(args) > 0 {
			format = args[0]
		}
		output, _ := cmd.Flags().GetString("output")
		exportSession(format, output)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

type exportDocument struct {
	ExportedAt   time.Time       `json:"exportedAt" yaml:"exportedAt"`
	DeviceID     string          `json:"deviceId" yaml:"deviceId"`
	Count        int             `json:"count" yaml:"count"`
	Target       int             `json:"target" yaml:"target"`
	SelectedZikr string          `json:"selectedZikr" yaml:"selectedZikr"`
	SoundEnabled bool            `json:"soundEnabled" yaml:"soundEnabled"`
	DarkMode     bool            `json:"darkMode" yaml:"darkMode"`
	Totals       exportTotals    `json:"totals" yaml:"totals"`
	History      []exportEntry   `json:"history" yaml:"history"`
	DailyRecords []exportDayline `json:"dailyRecords" yaml:"dailyRecords"`
}

type exportTotals struct {
	Today         int `json:"today" yaml:"today"`
	Week          int `json:"week" yaml:"week"`
	Month         int `json:"month" yaml:"month"`
	AllTime       int `json:"allTime" yaml:"allTime"`
	ActiveDays    int `json:"activeDays" yaml:"activeDays"`
	CurrentStreak int `json:"currentStreak" yaml:"currentStreak"`
	LongestStreak int `json:"longestStreak" yaml:"longestStreak"`
}

type exportEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Zikr      string    `json:"zikr" yaml:"zikr"`
	Name      string    `json:"name" yaml:"name"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type exportDayline struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
	Zikr  string `json:"zikr" yaml:"zikr"`
}

func newExportDocument(snap session.Snapshot, now time.Time) exportDocument {
	state := snap.State()
	sum := stats.Summarize(state.Daily, now)

	doc := exportDocument{
		ExportedAt:   now,
		DeviceID:     snap.DeviceID,
		Count:        snap.Count,
		Target:       snap.Target,
		SelectedZikr: snap.SelectedZikr,
		SoundEnabled: snap.SoundEnabled,
		DarkMode:     snap.DarkMode,
		Totals: exportTotals{
			Today:         sum.Today,
			Week:          sum.Week,
			Month:         sum.Month,
			AllTime:       sum.Total,
			ActiveDays:    sum.ActiveDays,
			CurrentStreak: sum.CurrentStreak,
			LongestStreak: sum.LongestStreak,
		},
		History:      make([]exportEntry, 0, len(snap.History)),
		DailyRecords: make([]exportDayline, 0, len(snap.DailyRecords)),
	}
	for _, e := range snap.History {
		name := e.PhraseID
		if p, ok := phrase.Lookup(e.PhraseID); ok {
			name = p.Display()
		}
		doc.History = append(doc.History, exportEntry{ID: e.ID, Zikr: e.PhraseID, Name: name, Timestamp: e.Timestamp})
	}
	for _, r := range snap.DailyRecords {
		doc.DailyRecords = append(doc.DailyRecords, exportDayline{Date: r.Date, Count: r.Count, Zikr: r.Zikr})
	}
	return doc
}

func encodeExport(doc exportDocument, format string) ([]byte, error) {
	switch format {
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// exportSession writes the export document to stdout or output
func exportSession(format, output string) {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	data, err := encodeExport(newExportDocument(a.session.Snapshot(), deps.Now()), format)
	if err != nil {
		exitWithError("Failed to encode export", err, "Supported formats: json, yaml")
		return
	}

	if output == "" {
		_, _ = deps.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		exitWithError("Failed to write export file", err, "Check that the directory exists and is writable")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", len(a.session.State().History), pluralize("entry", len(a.session.State().History)), output)
}
