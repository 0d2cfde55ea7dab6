package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/runic/internal/registry"
	"github.com/vovakirdan/runic/internal/storage"
)

const (
	boardRuns  = 50 // runs loaded per variant
	panelWidth = 52 // outer width of one variant panel
	panelGap   = 2
)

var (
	panelBorder = lipgloss.Color("240")
	panelFocus  = lipgloss.Color("57")
	dimText     = lipgloss.Color("241")
	goldText    = lipgloss.Color("229")
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Switch}, {k.Back, k.Quit}}
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
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch board"),
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

// variantBoard holds the runs of one board variant.
type variantBoard struct {
	info   registry.GameInfo
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
}

// ScoreboardModel shows the best runs of every variant, one panel each.
// Panels sit side by side when the terminal is wide enough; otherwise only
// the focused one is drawn.
type ScoreboardModel struct {
	boards    []variantBoard
	focus     int
	keys      ScoreboardKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, g := range games {
		b := variantBoard{info: g}
		if store != nil {
			if scores, err := store.TopScores(g.ID, boardRuns); err == nil {
				b.scores = scores
			}
			if stats, err := store.GetGameStats(g.ID); err == nil {
				b.stats = stats
			}
		}
		m.boards = append(m.boards, b)
	}
	m.buildTables()
	return m
}

// buildTables recreates every table for the current height and focus.
func (m *ScoreboardModel) buildTables() {
	height := max(m.height-11, 3) // title, panel header, stats, help
	for i := range m.boards {
		b := &m.boards[i]
		b.table = table.New(
			table.WithColumns(runColumns()),
			table.WithRows(runRows(b.scores)),
			table.WithHeight(height),
			table.WithFocused(i == m.focus),
		)
		b.table.SetStyles(runTableStyles(i == m.focus))
	}
}

func runColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Pts/mv", Width: 7},
		{Title: "Date", Width: 12},
	}
}

func runRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Moves),
			pointsPerMove(s.Score, s.Moves),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// pointsPerMove formats the run's efficiency, "-" for a run without moves.
func pointsPerMove(score, moves int) string {
	if moves <= 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(score)/float64(moves), 'f', 1, 64)
}

func runTableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(panelBorder).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.Foreground(goldText).Background(panelFocus).Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	return s
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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
		case key.Matches(msg, m.keys.Switch):
			if len(m.boards) > 1 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = len(m.boards) - 1
				}
				m.focus = (m.focus + step) % len(m.boards)
				m.buildTables()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.buildTables()
		return m, nil
	}

	if len(m.boards) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	b := &m.boards[m.focus]
	b.table, cmd = b.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(goldText)
	b.WriteString(centerText(title.Render("H A L L   O F   R U N E S"), m.width))
	b.WriteString("\n\n")

	switch {
	case len(m.boards) == 0:
		b.WriteString(centerText("No boards registered.", m.width))
	case m.sideBySide():
		panels := make([]string, 0, 2*len(m.boards))
		for i := range m.boards {
			if i > 0 {
				panels = append(panels, strings.Repeat(" ", panelGap))
			}
			panels = append(panels, m.renderPanel(i))
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, panels...)))
	default:
		if len(m.boards) > 1 {
			b.WriteString(centerText(fmt.Sprintf("< %d/%d >", m.focus+1, len(m.boards)), m.width))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderPanel(m.focus)))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(dimText).Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sideBySide() bool {
	n := len(m.boards)
	return n > 1 && m.width >= n*panelWidth+(n-1)*panelGap
}

// renderPanel draws one variant: its title, its runs, and its totals.
func (m ScoreboardModel) renderPanel(i int) string {
	b := m.boards[i]
	border := panelBorder
	if i == m.focus {
		border = panelFocus
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(panelWidth-2).
		Padding(0, 1)

	heading := lipgloss.NewStyle().Bold(true).Render(b.info.Title)

	var body string
	if len(b.scores) == 0 {
		body = lipgloss.NewStyle().
			Foreground(dimText).
			Italic(true).
			Padding(1, 2).
			Render("No runs recorded yet.\nFinish a run to set a high score!")
	} else {
		body = b.table.View()
	}

	return style.Render(heading + "\n" + body + "\n" + statsLine(b.stats))
}

// statsLine summarizes every recorded run of a variant.
func statsLine(st *storage.GameStats) string {
	dim := lipgloss.NewStyle().Foreground(dimText)
	if st == nil || st.GamesCount == 0 {
		return dim.Render("0 runs")
	}
	line := fmt.Sprintf("%d runs  best %d  avg %.0f  %s pts/mv",
		st.GamesCount, st.HighScore, st.AvgScore, pointsPerMove(int(st.TotalScore), int(st.TotalMoves)))
	return dim.Render(line)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
