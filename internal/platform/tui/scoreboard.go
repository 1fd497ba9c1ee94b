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

	"github.com/vovakirdan/rocket-arcade/internal/registry"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 22
	boardRowLimit      = 100
	boardDateLayout    = "Jan 02 15:04"
)

type boardView int

const (
	viewScores boardView = iota
	viewRuns
	boardViewCount
)

// boardPage describes one scoreboard view: its heading, columns and how
// to turn the store's records into rows.
type boardPage struct {
	heading string
	columns []table.Column
	load    func(store *storage.Store, gameID string) ([]table.Row, error)
}

var boardPages = [boardViewCount]boardPage{
	viewScores: {
		heading: "HIGH SCORES",
		columns: []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		},
		load: scoreRows,
	},
	viewRuns: {
		heading: "RECENT RUNS",
		columns: []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Player", Width: 10},
			{Title: "Score", Width: 7},
			{Title: "Time", Width: 7},
			{Title: "Speed", Width: 7},
			{Title: "Obst", Width: 5},
		},
		load: runRows,
	},
}

func scoreRows(store *storage.Store, gameID string) ([]table.Row, error) {
	scores, err := store.TopScores(gameID, boardRowLimit)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format(boardDateLayout),
		})
	}
	return rows, nil
}

func runRows(store *storage.Store, gameID string) ([]table.Row, error) {
	runs, err := store.RecentRuns(gameID, boardRowLimit)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		rows = append(rows, table.Row{
			r.CreatedAt.Format(boardDateLayout),
			player,
			strconv.Itoa(r.Score),
			fmt.Sprintf("%.1f", r.Elapsed),
			fmt.Sprintf("%.3f", r.Difficulty),
			strconv.Itoa(r.Obstacles),
		})
	}
	return rows, nil
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	boardTableStyles = func() table.Styles {
		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
		return s
	}()
)

// ScoreboardModel browses saved scores and runs per mode. It never quits
// the program on back; the caller checks IsGoingBack.
type ScoreboardModel struct {
	store *storage.Store
	games []registry.GameInfo
	game  int
	view  boardView

	table   table.Model
	empty   bool
	summary string

	keys          ScoreboardKeyMap
	help          help.Model
	width, height int

	quitting, goingBack bool
}

// NewScoreboardModel opens the board on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// WithGame selects the mode shown first. Unknown IDs are ignored.
func (m ScoreboardModel) WithGame(id string) ScoreboardModel {
	for i, g := range m.games {
		if g.ID == id {
			m.game = i
			m.reload()
			break
		}
	}
	return m
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload rebuilds the table for the selected mode and view. Read errors
// show as an empty board.
func (m *ScoreboardModel) reload() {
	page := boardPages[m.view]

	var rows []table.Row
	m.summary = ""
	if m.store != nil && len(m.games) > 0 {
		rows, _ = page.load(m.store, m.gameID())
		if stats, err := m.store.GetGameStats(m.gameID()); err == nil && stats.GamesCount > 0 {
			m.summary = fmt.Sprintf("%d games  •  best %d  •  avg %.1f",
				stats.GamesCount, stats.HighScore, stats.AvgScore)
		}
	}
	m.empty = len(rows) == 0

	m.table = table.New(
		table.WithColumns(page.columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
		table.WithStyles(boardTableStyles),
	)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := m.keys
		switch {
		case key.Matches(msg, k.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, k.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, k.NextGame):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, k.PrevGame):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, k.ToggleView):
			m.view = (m.view + 1) % boardViewCount
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(delta int) {
	if n := len(m.games); n > 0 {
		m.game = (m.game + delta + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := boardPages[m.view].heading
	if len(m.games) > 0 {
		heading += " - " + m.games[m.game].Title
	}

	body := m.table.View()
	if m.empty {
		body = boardEmptyStyle.Render("Nothing recorded yet.\nPlay a round to get on the board!")
	}
	body = boardPanelStyle.Render(body)
	if m.width >= minWidthForSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	}

	lines := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardTitleStyle.Render(heading)),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footerStyle.Render(m.summary)),
		body,
		footerStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Modes\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		b.WriteString("\n")
		if i == m.game {
			b.WriteString(menuSelectedStyle.Render("> " + g.Title))
		} else {
			b.WriteString("  " + g.Title)
		}
	}
	return boardPanelStyle.Width(sidebarWidth).Render(b.String())
}

// IsGoingBack reports whether the player left the board.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the board as a standalone program, starting on
// gameID when it names a registered mode. Back exits.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	board := NewScoreboardModel(store, width, height).WithGame(gameID)
	_, err := tea.NewProgram(scoreboardProgram{board}, tea.WithAltScreen()).Run()
	return err
}

type scoreboardProgram struct {
	board ScoreboardModel
}

func (p scoreboardProgram) Init() tea.Cmd { return p.board.Init() }

func (p scoreboardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.board.Update(msg)
	p.board = next.(ScoreboardModel)
	if p.board.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}

func (p scoreboardProgram) View() string { return p.board.View() }
