package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/tasbih/internal/tally"
	"github.com/xolan/tasbih/internal/tui/ui"
)

// HistoryModel is the model for the history view. It lists the log newest
// first and scrolls with the cursor.
type HistoryModel struct {
	session Session
	styles  ui.Styles
	keys    ui.KeyMap

	// UI state
	width  int
	height int
	cursor int
	offset int
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(session Session, styles ui.Styles, keys ui.KeyMap) HistoryModel {
	return HistoryModel{
		session: session,
		styles:  styles,
		keys:    keys,
	}
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.session.State().History)
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < n-1 {
				m.cursor++
			}
		}
		m.scroll()

	case ui.StateChangedMsg:
		m.clamp()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m HistoryModel) View() string {
	history := m.session.State().History
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("History (%d %s)", len(history), pluralize("entry", len(history)))))
	b.WriteString("\n")

	if len(history) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("Nothing counted yet. Press space on the counter view."))
		b.WriteString("\n")
		return b.String()
	}

	start := m.offset
	end := min(start+m.visibleRows(), len(history))
	rows := make([]tally.HistoryEntry, 0, end-start)
	numbers := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx := len(history) - 1 - i
		rows = append(rows, history[idx])
		numbers = append(numbers, idx+1)
	}
	b.WriteString(RenderHistoryList(rows, m.styles, HistoryRenderOptions{
		Width:   m.width,
		Cursor:  m.cursor - m.offset,
		Numbers: numbers,
	}))
	return b.String()
}

// SetSize sets the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// Cursor returns the selected row, 0 being the newest entry
func (m HistoryModel) Cursor() int {
	return m.cursor
}

func (m HistoryModel) visibleRows() int {
	// Title and its margin take two lines.
	rows := m.height - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *HistoryModel) clamp() {
	n := len(m.session.State().History)
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scroll()
}

func (m *HistoryModel) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
