package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/superrun/internal/registry"
	"github.com/vovakirdan/superrun/internal/storage"
)

// Rows loaded per variant and view.
const scoreboardRows = 100

// ScoreboardView selects what the scoreboard table lists.
type ScoreboardView int

const (
	ViewScores ScoreboardView = iota // high scores, best first
	ViewRuns                         // run log, newest first
)

func (v ScoreboardView) String() string {
	if v == ViewRuns {
		return "RUN LOG"
	}
	return "HIGH SCORES"
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = bannerStyle.Padding(0, 1)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

type scoreboardKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	View       key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.View, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.View}, {k.Back, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		View: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/runs")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the high scores or the run log of one variant at a time.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	cursor int
	view   ScoreboardView

	scores     []storage.ScoreEntry
	scoreStats *storage.ScoreStats
	runs       []storage.RunRecord
	stats      *storage.RunStats

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first variant and the given view.
func NewScoreboardModel(store *storage.Store, width, height int, view ScoreboardView) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		view:   view,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.rebuildTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) currentGameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// columns sizes the table for the current view; the date column takes the slack.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewRuns {
		return []table.Column{
			{Title: "Result", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Lives", Width: 5},
			{Title: "Time", Width: 6},
			{Title: "Stomp/Brk/Smsh", Width: 14},
			{Title: "Date", Width: 12},
		}
	}
	dateWidth := min(max(m.width-30, 12), 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: dateWidth},
	}
}

func (m *ScoreboardModel) rebuildTable() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
		table.WithStyles(styles),
	)
}

// reload fetches the selected variant's rows for the current view.
// Storage errors leave the table empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.scoreStats, m.runs, m.stats = nil, nil, nil, nil

	id := m.currentGameID()
	if m.store != nil && id != "" {
		switch m.view {
		case ViewRuns:
			m.runs, _ = m.store.RecentRuns(id, scoreboardRows)
			m.stats, _ = m.store.GetRunStats(id)
		default:
			m.scores, _ = m.store.TopScores(id, scoreboardRows)
			m.scoreStats, _ = m.store.ScoreStats(id)
		}
	}

	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == ViewRuns {
		rows := make([]table.Row, 0, len(m.runs))
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.Outcome,
				strconv.Itoa(r.Score),
				strconv.Itoa(r.Lives),
				formatDuration(r.Duration),
				fmt.Sprintf("%d/%d/%d", r.Stomps, r.Breaks, r.Smashes),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
		return rows
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	sec := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.rebuildTable()
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the variant cursor with wrap-around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(bannerStyle.Render(m.view.String()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(m.renderTable())))
	b.WriteString("\n")

	if line := m.renderStats(); line != "" {
		b.WriteString(centerText(dimStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		return fmt.Sprintf("< %s >", m.games[m.cursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	switch {
	case m.view == ViewRuns && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinished and abandoned runs show up here.")
	case m.view == ViewScores && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// renderStats summarizes the selected variant, or returns "" when there is nothing to show.
func (m ScoreboardModel) renderStats() string {
	if m.view == ViewRuns {
		st := m.stats
		if st == nil || st.Runs == 0 {
			return ""
		}
		return fmt.Sprintf("%d runs  |  %d won  %d lost  %d quit  |  best %d  |  avg %s",
			st.Runs, st.Wins, st.Losses, st.Quits, st.BestScore, formatDuration(st.AvgDuration))
	}

	st := m.scoreStats
	if st == nil || st.Count == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  |  best %d  |  average %.0f  |  last played %s",
		st.Count, st.Best, st.Average, st.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack reports whether the user asked to return to the launcher.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard and reports whether the user went back to the launcher.
func RunScoreboard(store *storage.Store, width, height int, view ScoreboardView) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, view), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
