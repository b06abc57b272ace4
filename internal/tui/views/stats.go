package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/tasbih/internal/stats"
	"github.com/xolan/tasbih/internal/tui/ui"
)

// chartDays is the number of days shown in the activity chart
const chartDays = 7

// StatsModel is the model for the stats view
type StatsModel struct {
	session Session
	styles  ui.Styles

	// UI state
	width  int
	height int
}

// NewStatsModel creates a new stats view model
func NewStatsModel(session Session, styles ui.Styles) StatsModel {
	return StatsModel{
		session: session,
		styles:  styles,
	}
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	if msg, ok := msg.(ui.ThemeChangedMsg); ok {
		m.styles = msg.Styles
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	state := m.session.State()
	now := m.session.Now()
	summary := stats.Summarize(state.Daily, now)

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n")

	b.WriteString(m.renderStatLine("Today:", fmt.Sprintf("%d", summary.Today)))
	b.WriteString(m.renderStatLine("This week:", fmt.Sprintf("%d", summary.Week)))
	b.WriteString(m.renderStatLine("This month:", fmt.Sprintf("%d", summary.Month)))
	b.WriteString(m.renderStatLine("All time:", fmt.Sprintf("%d", summary.Total)))
	b.WriteString(m.renderStatLine("Active days:", fmt.Sprintf("%d %s", summary.ActiveDays, pluralize("day", summary.ActiveDays))))
	b.WriteString(m.renderStatLine("Average per day:", fmt.Sprintf("%.1f", summary.AveragePerActiveDay)))
	if summary.BestDay.Count > 0 {
		b.WriteString(m.renderStatLine("Best day:", fmt.Sprintf("%s (%d)", summary.BestDay.Date, summary.BestDay.Count)))
	}
	b.WriteString(m.renderStatLine("Current streak:", fmt.Sprintf("%d %s", summary.CurrentStreak, pluralize("day", summary.CurrentStreak))))
	b.WriteString(m.renderStatLine("Longest streak:", fmt.Sprintf("%d %s", summary.LongestStreak, pluralize("day", summary.LongestStreak))))

	days := stats.LastDays(state.Daily, now, chartDays)
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Count)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Last %d days", chartDays)))
	b.WriteString("\n")
	barWidth := max(min(m.width-24, 40), 10)
	for _, d := range days {
		b.WriteString(fmt.Sprintf("  %s %5d %s\n", d.Date, d.Count, m.styles.Bar.Render(renderBar(d.Count, peak, barWidth))))
	}

	breakdown := stats.BreakdownByPhrase(state.History)
	if len(breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("By Phrase (current session)"))
		b.WriteString("\n")
		for _, p := range breakdown {
			b.WriteString(fmt.Sprintf("  %-28s %6d  %5.1f%%\n", p.Name, p.Count, p.Percent))
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}
