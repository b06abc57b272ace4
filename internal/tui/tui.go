// Package tui provides the Terminal User Interface for the tasbih counter.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/tui/ui"
	"github.com/xolan/tasbih/internal/tui/views"
	"github.com/xolan/tasbih/internal/voice"
)

// Tab represents a view tab
type Tab int

const (
	TabCounter Tab = iota
	TabHistory
	TabStats
)

var tabNames = []string{"Counter", "History", "Stats"}

// resetNotice asks for the second reset key press.
const resetNotice = "Press R again to reset all counts, esc to cancel"

// Options configures the TUI.
type Options struct {
	Session *session.Controller
	// Engine is the speech engine; nil means voice is unavailable
	Engine       voice.Engine
	Locale       string
	RestartDelay time.Duration
	Logger       *slog.Logger
	DarkTheme    string
	LightTheme   string
}

// Model is the root TUI model
type Model struct {
	session *session.Controller
	voice   *voice.Adapter
	bridge  *voiceBridge

	// UI state
	activeTab  Tab
	width      int
	height     int
	showHelp   bool
	resetArmed bool
	notice     string

	// View models
	counterView views.CounterModel
	historyView views.HistoryModel
	statsView   views.StatsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// voiceBridge carries adapter callbacks into the model. post runs on engine
// goroutines; matches and notices are only touched from Update.
type voiceBridge struct {
	mu   sync.Mutex
	send func(tea.Msg)

	matches []phrase.Phrase
	notices []string
}

func (b *voiceBridge) bind(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *voiceBridge) post(ev voice.Event) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(ui.VoiceEventMsg{Event: ev})
	}
}

func (b *voiceBridge) drain() ([]phrase.Phrase, []string) {
	matches, notices := b.matches, b.notices
	b.matches, b.notices = nil, nil
	return matches, notices
}

// New creates a new TUI model
func New(opts Options) Model {
	ctrl := opts.Session
	themeProvider := ui.NewModeThemeProvider(opts.DarkTheme, opts.LightTheme, ctrl.DarkMode())
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	bridge := &voiceBridge{}
	adapter := voice.NewAdapter(voice.Config{
		Engine:       opts.Engine,
		Locale:       opts.Locale,
		Post:         bridge.post,
		Selected:     ctrl.Selected,
		OnMatch:      func(p phrase.Phrase) { bridge.matches = append(bridge.matches, p) },
		Notify:       func(s string) { bridge.notices = append(bridge.notices, s) },
		Logger:       opts.Logger,
		RestartDelay: opts.RestartDelay,
	})

	return Model{
		session:       ctrl,
		voice:         adapter,
		bridge:        bridge,
		activeTab:     TabCounter,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		counterView:   views.NewCounterModel(ctrl, styles),
		historyView:   views.NewHistoryModel(ctrl, styles, keys),
		statsView:     views.NewStatsModel(ctrl, styles),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tasbih")
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.counterView.SetSize(m.width, contentHeight)
		m.historyView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.PulseClearMsg:
		_, _ = m.session.Handle(session.ClearPulse{Seq: msg.Seq})
		return m, nil

	case ui.VoiceEventMsg:
		m.voice.Handle(msg.Event)
		return m, m.afterVoice()

	case ui.NoticeMsg:
		m.notice = msg.Text
		return m, nil
	}

	switch m.activeTab {
	case TabCounter:
		m.counterView, cmd = m.counterView.Update(msg)
	case TabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	if m.resetArmed {
		m.resetArmed = false
		if key.Matches(msg, m.keys.Reset) {
			return m, m.handle(session.Reset{})
		}
		if key.Matches(msg, m.keys.Back) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.voice.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
		return m, nil

	case key.Matches(msg, m.keys.Tab1):
		m.activeTab = TabCounter
		return m, nil

	case key.Matches(msg, m.keys.Tab2):
		m.activeTab = TabHistory
		return m, nil

	case key.Matches(msg, m.keys.Tab3):
		m.activeTab = TabStats
		return m, nil

	case key.Matches(msg, m.keys.Tap):
		return m, m.handle(session.Increment{Source: session.SourceTap})

	case key.Matches(msg, m.keys.Undo):
		return m, m.handle(session.Decrement{})

	case key.Matches(msg, m.keys.Reset):
		if m.session.Count() == 0 && len(m.session.State().Daily) == 0 {
			return m, nil
		}
		m.resetArmed = true
		m.notice = resetNotice
		return m, nil

	case key.Matches(msg, m.keys.PrevPhrase):
		return m, m.handle(session.CyclePhrase{Delta: -1})

	case key.Matches(msg, m.keys.NextPhrase):
		return m, m.handle(session.CyclePhrase{Delta: 1})

	case key.Matches(msg, m.keys.PrevTarget):
		return m, m.handle(session.CycleTarget{Delta: -1})

	case key.Matches(msg, m.keys.NextTarget):
		return m, m.handle(session.CycleTarget{Delta: 1})

	case key.Matches(msg, m.keys.Voice):
		if err := m.voice.Toggle(); err != nil && !errors.Is(err, voice.ErrUnavailable) {
			m.notice = err.Error()
		}
		return m, m.afterVoice()

	case key.Matches(msg, m.keys.Sound):
		return m, m.handle(session.SetSound{Enabled: !m.session.SoundEnabled()})

	case key.Matches(msg, m.keys.Dark):
		cmd := m.handle(session.SetDarkMode{Enabled: !m.session.DarkMode()})
		m.applyTheme()
		return m, cmd
	}

	var cmd tea.Cmd
	if m.activeTab == TabHistory {
		m.historyView, cmd = m.historyView.Update(msg)
	}
	return m, cmd
}

// handle applies a session command and schedules the pulse clear.
func (m *Model) handle(c session.Command) tea.Cmd {
	res, err := m.session.Handle(c)
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	if res.Changed {
		m.historyView, _ = m.historyView.Update(ui.StateChangedMsg{})
	}
	if res.ClearPulseAfter <= 0 {
		return nil
	}
	seq := res.PulseSeq
	return tea.Tick(res.ClearPulseAfter, func(time.Time) tea.Msg {
		return ui.PulseClearMsg{Seq: seq}
	})
}

// afterVoice applies matches and notices collected while the adapter ran.
func (m *Model) afterVoice() tea.Cmd {
	matches, notices := m.bridge.drain()
	if len(notices) > 0 {
		m.notice = notices[len(notices)-1]
	}
	var cmds []tea.Cmd
	for range matches {
		cmds = append(cmds, m.handle(session.Increment{Source: session.SourceVoice}))
	}
	m.counterView.SetListening(m.voice.Listening())
	return tea.Batch(cmds...)
}

func (m *Model) applyTheme() {
	m.themeProvider.ApplyMode(m.session.DarkMode())
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{
		ThemeName: m.themeProvider.CurrentName(),
		Styles:    m.styles,
	}
	m.counterView, _ = m.counterView.Update(themeMsg)
	m.historyView, _ = m.historyView.Update(themeMsg)
	m.statsView, _ = m.statsView.Update(themeMsg)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabCounter:
		b.WriteString(m.counterView.View())
	case TabHistory:
		b.WriteString(m.historyView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var content string
	if m.notice != "" {
		style := m.styles.Warning
		if m.resetArmed {
			style = m.styles.Error
		}
		content = style.Render(m.notice)
	} else {
		var parts []string
		switch m.activeTab {
		case TabCounter:
			parts = append(parts, m.renderKeyHelp("space", "count"))
			parts = append(parts, m.renderKeyHelp("u", "undo"))
			parts = append(parts, m.renderKeyHelp("←/→", "phrase"))
			parts = append(parts, m.renderKeyHelp("[/]", "target"))
			parts = append(parts, m.renderKeyHelp("v", "voice"))
		case TabHistory:
			parts = append(parts, m.renderKeyHelp("j/k", "scroll"))
			parts = append(parts, m.renderKeyHelp("u", "undo"))
		case TabStats:
			parts = append(parts, m.renderKeyHelp("space", "count"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
		content = strings.Join(parts, "  ")
	}

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelpOverlay renders the keyboard shortcuts in place of the view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Counter:"))
	help.WriteString("\n")
	help.WriteString("  space      Count once\n")
	help.WriteString("  u          Undo the last count\n")
	help.WriteString("  R R        Reset everything\n")
	help.WriteString("  ←/→ h/l    Previous/next phrase\n")
	help.WriteString("  [ ]        Previous/next target\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Toggles:"))
	help.WriteString("\n")
	help.WriteString("  v          Voice counting\n")
	help.WriteString("  s          Sound\n")
	help.WriteString("  d          Dark mode\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application and blocks until it exits
func Run(opts Options) error {
	model := New(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.bridge.bind(p.Send)
	defer model.bridge.bind(nil)
	_, err := p.Run()
	model.voice.Close()
	return err
}
