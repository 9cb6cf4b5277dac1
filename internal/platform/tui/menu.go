package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/superrun/internal/core"
	"github.com/vovakirdan/superrun/internal/registry"
	"github.com/vovakirdan/superrun/internal/storage"
)

// difficultyChoice is one stop of the launcher's difficulty selector.
type difficultyChoice struct {
	preset string // "" keeps the config file's setting
	blurb  string
}

var menuDifficulties = []difficultyChoice{
	{"", "settings from the config file"},
	{"easy", "5 lives, gentle speed ramp"},
	{"normal", "standard lives and ramp"},
	{"hard", "2 lives, faster start and ramp"},
	{"fixed", "speed never increases"},
}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is a variant listed by the launcher.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPlay
	menuScores
	menuQuit
)

// MenuModel is the launcher: pick a variant and a difficulty, or open the scoreboard.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // index into menuDifficulties
	width      int
	height     int
	config     core.RuntimeConfig
	keys       *KeyMapper
	outcome    menuOutcome
}

// NewMenuModel lists the registered variants with their best scores.
// preset selects the initial difficulty; unknown presets fall back to the config setting.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset string) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
	}

	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.HighScore, _ = store.HighScore(g.ID)
		}
		m.items = append(m.items, item)
	}

	for i, d := range menuDifficulties {
		if d.preset == preset {
			m.difficulty = i
		}
	}
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(menuDifficulties)

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.outcome = menuQuit
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionLeft:
		m.difficulty = (m.difficulty + n - 1) % n
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % n
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.outcome = menuPlay
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.outcome = menuScores
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(bannerStyle.Render("S U P E R   R U N"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-22s best %6d", item.Title, item.HighScore)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	choice := menuDifficulties[m.difficulty]
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render(choice.blurb), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Variant  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Difficulty names the selected preset, or "config" when the file's setting is kept.
func (m MenuModel) Difficulty() string {
	if p := m.preset(); p != "" {
		return p
	}
	return "config"
}

func (m MenuModel) preset() string {
	return menuDifficulties[m.difficulty].preset
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the launcher decided.
type MenuResult struct {
	GameID          string
	Difficulty      string // preset name, "" for the config setting
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config, Difficulty: m.preset()}

	switch m.outcome {
	case menuPlay:
		res.GameID = m.items[m.cursor].GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the launcher until the user picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset string) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, preset), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
