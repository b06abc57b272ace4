package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/tally"
	"github.com/xolan/tasbih/internal/tui/ui"
)

// CounterModel is the model for the counter view
type CounterModel struct {
	session Session
	styles  ui.Styles

	// UI state
	width     int
	height    int
	listening bool
	bar       progress.Model
}

// NewCounterModel creates a new counter view model
func NewCounterModel(session Session, styles ui.Styles) CounterModel {
	return CounterModel{
		session: session,
		styles:  styles,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Init implements tea.Model
func (m CounterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Counter keys are handled by the root model.
func (m CounterModel) Update(msg tea.Msg) (CounterModel, tea.Cmd) {
	if msg, ok := msg.(ui.ThemeChangedMsg); ok {
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m CounterModel) View() string {
	state := m.session.State()
	var b strings.Builder

	b.WriteString(m.renderCarousel(state.Selected))
	b.WriteString("\n\n")

	b.WriteString(m.styles.PhraseArabic.Render(state.Selected.Arabic))
	b.WriteString("\n")
	b.WriteString(m.styles.PhraseLatin.Render(state.Selected.Latin))
	b.WriteString("\n\n")

	count := m.styles.Count
	switch {
	case m.session.Pulse():
		count = m.styles.CountPulse
	case state.Completed():
		count = m.styles.CountCompleted
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		count.Render(fmt.Sprintf("%d", state.Count)),
		m.styles.Target.Render(fmt.Sprintf("/ %d", state.Target)),
	))
	b.WriteString("\n\n")

	b.WriteString(m.renderProgress(state))
	b.WriteString("\n\n")

	today := tally.TodayCount(state.Daily, m.session.Now())
	b.WriteString(m.styles.StatLabel.Render("Today:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d", today)))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Voice:"))
	b.WriteString(" ")
	if m.listening {
		b.WriteString(m.styles.Listening.Render("● listening"))
	} else {
		b.WriteString(m.styles.Idle.Render("○ off"))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Sound:"))
	b.WriteString(" ")
	b.WriteString(m.renderToggle(m.session.SoundEnabled()))
	b.WriteString("\n")

	return b.String()
}

// renderCarousel shows the selected phrase between its neighbours.
func (m CounterModel) renderCarousel(selected phrase.Phrase) string {
	catalog := phrase.Catalog()
	idx := phrase.Index(selected.ID)
	prev := phrase.Cycle(selected.ID, -1)
	next := phrase.Cycle(selected.ID, 1)
	return fmt.Sprintf("%s  %s  %s  %s",
		m.styles.PhraseOther.Render("‹ "+prev.Latin),
		m.styles.TabActive.Render(selected.Latin),
		m.styles.PhraseOther.Render(next.Latin+" ›"),
		m.styles.StatusHelp.Render(fmt.Sprintf("(%d/%d)", idx+1, len(catalog))),
	)
}

func (m CounterModel) renderProgress(state tally.State) string {
	bar := m.bar
	bar.Width = m.barWidth()
	percent := state.Progress()
	return fmt.Sprintf("%s %3.0f%%", bar.ViewAs(percent), percent*100)
}

func (m CounterModel) barWidth() int {
	w := m.width - 12
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m CounterModel) renderToggle(on bool) string {
	if on {
		return m.styles.Success.Render("on")
	}
	return m.styles.Idle.Render("off")
}

// SetSize sets the view dimensions
func (m *CounterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetListening updates the voice indicator
func (m *CounterModel) SetListening(listening bool) {
	m.listening = listening
}
