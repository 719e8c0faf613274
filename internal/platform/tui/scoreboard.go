package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/game"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show preset list sidebar
	sidebarWidth       = 20  // Width of preset list sidebar
	maxScores          = 100 // Max results to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev preset"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next preset"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next preset"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev preset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the best-times screen.
type ScoreboardModel struct {
	presets     []string // Tabs, one per preset
	cursor      int      // Currently selected preset index
	store       *storage.Store
	results     []storage.Result
	stats       *storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show preset list sidebar
}

// NewScoreboardModel creates a scoreboard with one tab per preset. Presets
// that only exist in the database (layouts, custom boards) are appended.
func NewScoreboardModel(store *storage.Store, presets []string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		presets:     mergePresets(store, presets),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.presets) > 0 {
		m.load(m.presets[0])
	}
	return m
}

func mergePresets(store *storage.Store, presets []string) []string {
	out := append([]string(nil), presets...)
	if store == nil {
		return out
	}
	all, err := store.AllStats()
	if err != nil {
		return out
	}
	seen := make(map[string]bool, len(out))
	for _, p := range out {
		seen[p] = true
	}
	var extra []string
	for p := range all {
		if !seen[p] {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 10},
		{Title: "Board", Width: 12},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 50 {
		columns[3].Width = min(tableWidth-34, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Header, stats line, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads best times and stats for preset.
func (m *ScoreboardModel) load(preset string) {
	m.results, m.stats = nil, nil
	if m.store != nil {
		if results, err := m.store.BestTimes(preset, maxScores); err == nil {
			m.results = results
		}
		if stats, err := m.store.PresetStats(preset); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(ResultRows(m.results))
	m.table.GotoTop()
}

// ResultRows formats best times as table rows.
func ResultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			FormatDuration(r.Duration),
			fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// FormatDuration renders a finishing time with tenths of a second.
func FormatDuration(d time.Duration) string {
	tenths := d.Milliseconds() / 100 % 10
	return fmt.Sprintf("%s.%d", game.FormatElapsed(d), tenths)
}

// Selected returns the preset shown, or "" when there are none.
func (m ScoreboardModel) Selected() string {
	if len(m.presets) == 0 {
		return ""
	}
	return m.presets[m.cursor]
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			if len(m.presets) > 0 {
				m.cursor = (m.cursor + 1) % len(m.presets)
				m.load(m.presets[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			if len(m.presets) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.presets) - 1
				}
				m.load(m.presets[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST TIMES"
	if p := m.Selected(); p != "" {
		title = fmt.Sprintf("BEST TIMES - %s", p)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// StatsLine summarizes a preset's record.
func StatsLine(st *storage.Stats) string {
	if st == nil || st.Played == 0 {
		return "No games played"
	}
	best := "-"
	if st.BestTime > 0 {
		best = FormatDuration(st.BestTime)
	}
	return fmt.Sprintf("Played %d  Won %d (%.0f%%)  Best %s",
		st.Played, st.Won, st.WinRate()*100, best)
}

// renderWideLayout renders the scoreboard with a sidebar for preset selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Presets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.presets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(p, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with preset tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.presets))
	for i, p := range m.presets {
		name := truncate(p, 12)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.presets) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.presets[m.cursor])
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the stats line and the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := statsStyle.Render(StatsLine(m.stats))

	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return stats + "\n" + emptyStyle.Render("No wins recorded yet.\nClear a board to set a time!")
	}
	return stats + "\n\n" + m.table.View()
}

// truncate shortens s to at most n columns.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > n-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "."
}

// centerText pads s on the left to center it in width columns.
func centerText(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, presets []string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, presets, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
