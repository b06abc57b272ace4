package views

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/tally"
	"github.com/xolan/tasbih/internal/tui/ui"
)

var testNow = time.Date(2024, 3, 10, 18, 30, 0, 0, time.Local)

type fakeSession struct {
	state tally.State
	pulse bool
	sound bool
	dark  bool
}

func (f *fakeSession) State() tally.State { return f.state }
func (f *fakeSession) Pulse() bool { return f.pulse }
func (f *fakeSession) SoundEnabled() bool { return f.sound }
func (f *fakeSession) DarkMode() bool { return f.dark }
func (f *fakeSession) Now() time.Time { return testNow }

func newFakeSession(counts ...string) *fakeSession {
	s := tally.New()
	for i, id := range counts {
		p, _ := phrase.Lookup(id)
		s.Increment(p, fmt.Sprint(i), testNow.Add(time.Duration(i)*time.Minute))
	}
	return &fakeSession{state: s, sound: true}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCounterModel_View(t *testing.T) {
	sess := newFakeSession("subhanallah", "subhanallah")
	m := NewCounterModel(sess, ui.DefaultStyles())
	m.SetSize(80, 30)

	view := m.View()
	for _, want := range []string{"SubhanAllah", "سُبْحَانَ", "2", "/ 33", "Today:", "off", "on", "(1/6)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected counter view to contain %q", want)
		}
	}
}

func TestCounterModel_ListeningIndicator(t *testing.T) {
	m := NewCounterModel(newFakeSession(), ui.DefaultStyles())

	if !strings.Contains(m.View(), "○ off") {
		t.Error("expected idle voice indicator")
	}
	m.SetListening(true)
	if !strings.Contains(m.View(), "● listening") {
		t.Error("expected listening indicator")
	}
}

func TestCounterModel_ProgressClampsAtTarget(t *testing.T) {
	ids := make([]string, 40)
	for i := range ids {
		ids[i] = "subhanallah"
	}
	m := NewCounterModel(newFakeSession(ids...), ui.DefaultStyles())
	m.SetSize(80, 30)

	view := m.View()
	if !strings.Contains(view, "100%") {
		t.Error("expected progress to be capped at 100%")
	}
	if !strings.Contains(view, "40") {
		t.Error("expected the count itself not to be clamped")
	}
}

func TestCounterModel_ThemeChange(t *testing.T) {
	m := NewCounterModel(newFakeSession(), ui.DefaultStyles())
	styles := ui.NewThemeProvider("nord").Styles()

	m, _ = m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: styles})
	if m.styles.App.GetPaddingTop() != styles.App.GetPaddingTop() {
		t.Error("expected styles to be replaced")
	}
}

func TestHistoryModel_EmptyView(t *testing.T) {
	m := NewHistoryModel(newFakeSession(), ui.DefaultStyles(), ui.DefaultKeyMap())

	view := m.View()
	if !strings.Contains(view, "History (0 entries)") {
		t.Errorf("unexpected title in %q", view)
	}
	if !strings.Contains(view, "Nothing counted yet") {
		t.Error("expected empty state message")
	}
}

func TestHistoryModel_NewestFirst(t *testing.T) {
	sess := newFakeSession("subhanallah", "alhamdulillah", "allahuakbar")
	m := NewHistoryModel(sess, ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 20)

	view := m.View()
	akbar := strings.Index(view, "Allahu Akbar")
	subhan := strings.Index(view, "SubhanAllah")
	if akbar < 0 || subhan < 0 {
		t.Fatalf("expected both phrases in view:\n%s", view)
	}
	if akbar > subhan {
		t.Error("expected newest entry first")
	}
	if !strings.Contains(view, "[3]") || !strings.Contains(view, "[1]") {
		t.Error("expected entries numbered by position in the log")
	}
}

func TestHistoryModel_CursorAndScroll(t *testing.T) {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = "subhanallah"
	}
	sess := newFakeSession(ids...)
	m := NewHistoryModel(sess, ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 5) // three visible rows

	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.Cursor() != 9 {
		t.Errorf("expected cursor to stop at the last entry, got %d", m.Cursor())
	}
	view := m.View()
	if !strings.Contains(view, "[1]") || strings.Contains(view, "[10]") {
		t.Errorf("expected the oldest entries in view after scrolling:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 8 {
		t.Errorf("expected cursor 8, got %d", m.Cursor())
	}
}

func TestHistoryModel_ClampsAfterStateChange(t *testing.T) {
	sess := newFakeSession("subhanallah", "subhanallah", "subhanallah")
	m := NewHistoryModel(sess, ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 20)
	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(keyMsg('j'))

	sess.state.Decrement()
	sess.state.Decrement()
	m, _ = m.Update(ui.StateChangedMsg{})
	if m.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.Cursor())
	}
}

func TestRenderHistoryList_AlignsByCellWidth(t *testing.T) {
	entries := []tally.HistoryEntry{
		{ID: "1", PhraseID: "subhanallah", Timestamp: testNow},
		{ID: "2", PhraseID: "lailahaillallah", Timestamp: testNow},
	}
	out := RenderHistoryList(entries, ui.DefaultStyles(), HistoryRenderOptions{Width: 200, Cursor: -1})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Arabic starts in the same cell column on every row.
	col := func(line, arabic string) int {
		return runewidth.StringWidth(line[:strings.Index(line, arabic)])
	}
	a := col(lines[0], "سُبْحَانَ")
	b := col(lines[1], "لَا")
	if a != b {
		t.Errorf("arabic column misaligned: %d vs %d", a, b)
	}
}

func TestRenderHistoryList_UnknownPhraseFallsBackToID(t *testing.T) {
	entries := []tally.HistoryEntry{{ID: "1", PhraseID: "retired", Timestamp: testNow}}
	out := RenderHistoryList(entries, ui.DefaultStyles(), HistoryRenderOptions{Width: 80, Cursor: -1})

	if !strings.Contains(out, "retired") {
		t.Errorf("expected raw phrase id, got %q", out)
	}
}

func TestRenderHistoryList_Empty(t *testing.T) {
	if out := RenderHistoryList(nil, ui.DefaultStyles(), HistoryRenderOptions{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestStatsModel_View(t *testing.T) {
	sess := newFakeSession("subhanallah", "subhanallah", "alhamdulillah")
	sess.state.Daily = append(sess.state.Daily, tally.DailyRecord{Date: "2024-03-09", Count: 5, Zikr: "SubhanAllah"})
	m := NewStatsModel(sess, ui.DefaultStyles())
	m.SetSize(100, 40)

	view := m.View()
	for _, want := range []string{"Statistics", "Today:", "All time:", "8", "Current streak:", "2 days", "Last 7 days", "2024-03-09", "By Phrase", "66.7%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected stats view to contain %q", want)
		}
	}
}

func TestStatsModel_EmptyHistoryOmitsBreakdown(t *testing.T) {
	m := NewStatsModel(newFakeSession(), ui.DefaultStyles())

	if strings.Contains(m.View(), "By Phrase") {
		t.Error("expected no breakdown without history")
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		count, peak, width int
		want               int
	}{
		{0, 10, 20, 0},
		{10, 10, 20, 20},
		{5, 10, 20, 10},
		{1, 1000, 20, 1},
		{3, 0, 20, 0},
	}
	for _, tt := range tests {
		got := runewidth.StringWidth(renderBar(tt.count, tt.peak, tt.width))
		if got != tt.want {
			t.Errorf("renderBar(%d, %d, %d) width = %d, want %d", tt.count, tt.peak, tt.width, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if pluralize("day", 1) != "day" || pluralize("day", 2) != "days" || pluralize("entry", 0) != "entries" {
		t.Error("unexpected pluralize output")
	}
}
