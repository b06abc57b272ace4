package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/tally"
	"github.com/xolan/tasbih/internal/tui/ui"
)

// Session is the read side of the counter session the views render.
type Session interface {
	State() tally.State
	Pulse() bool
	SoundEnabled() bool
	DarkMode() bool
	Now() time.Time
}

// HistoryRenderOptions configures how history entries are rendered
type HistoryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected row (-1 for none)
	// Numbers holds the 1-based position of each entry in the full log
	Numbers []int
}

// RenderHistoryList renders history entries with aligned columns. Column
// widths are measured in terminal cells so Arabic text lines up.
func RenderHistoryList(entries []tally.HistoryEntry, styles ui.Styles, opts HistoryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	type row struct {
		index  string
		time   string
		latin  string
		arabic string
	}
	rows := make([]row, len(entries))

	maxIndexWidth, maxTimeWidth, maxLatinWidth := 0, 0, 0
	for i, e := range entries {
		n := i + 1
		if i < len(opts.Numbers) {
			n = opts.Numbers[i]
		}
		r := row{
			index: fmt.Sprintf("[%d]", n),
			time:  e.Timestamp.Format("Jan 02 15:04:05"),
			latin: e.PhraseID,
		}
		if p, ok := phrase.Lookup(e.PhraseID); ok {
			r.latin = p.Latin
			r.arabic = p.Arabic
		}
		maxIndexWidth = max(maxIndexWidth, runewidth.StringWidth(r.index))
		maxTimeWidth = max(maxTimeWidth, runewidth.StringWidth(r.time))
		maxLatinWidth = max(maxLatinWidth, runewidth.StringWidth(r.latin))
		rows[i] = r
	}

	arabicWidth := opts.Width - maxIndexWidth - maxTimeWidth - maxLatinWidth - 6
	var b strings.Builder
	for i, r := range rows {
		index := styles.HistoryIndex.Render(runewidth.FillRight(r.index, maxIndexWidth))
		timeCol := styles.HistoryTime.Render(runewidth.FillRight(r.time, maxTimeWidth))
		latin := styles.HistoryPhrase.Render(runewidth.FillRight(r.latin, maxLatinWidth))
		line := fmt.Sprintf("%s %s %s", index, timeCol, latin)
		if arabicWidth > 4 && r.arabic != "" {
			line += "  " + styles.PhraseOther.Render(runewidth.Truncate(r.arabic, arabicWidth, "…"))
		}
		if i == opts.Cursor {
			line = styles.HistorySelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar draws a horizontal bar of count relative to peak using width cells.
func renderBar(count, peak, width int) string {
	if peak <= 0 || width <= 0 || count <= 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "ry") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
