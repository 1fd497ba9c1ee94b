package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

// runReporter is implemented by games that can describe a finished run.
type runReporter interface {
	Snapshot() sim.Snapshot
	Seed() int64
}

// Model plays one game. Key presses are collected into an input frame and
// handed to the game on the next tick, so the simulation only ever
// advances on TickMsg.
type Model struct {
	game   registry.Game
	store  *storage.Store
	config core.RuntimeConfig
	player string

	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int

	keys   GameKeyMap
	help   help.Model
	notice string
	// noticeTicks counts down until notice is cleared.
	noticeTicks int

	allowBack  bool
	quitting   bool
	backToMenu bool
}

// NewModel prepares a game for play. A zero seed is replaced by the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:       game,
		store:      store,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		inputFrame: core.NewInputFrame(),
		highScore:  bestScore(store, game.ID()),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
	}
}

// WithPlayer tags saved runs with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithBack lets the player leave to a menu when paused or after game over.
func (m Model) WithBack() Model {
	m.allowBack = true
	return m
}

// playHeight keeps the bottom row for the footer.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.step(), tickCmd(m.config.TickRate)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionPause)
		}

	case tea.WindowSizeMsg:
		// The world is sized in world units; only the view changes.
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.game.Render(m.screen)
		if path, err := saveScreenshot(m.screen, m.game.ID()); err != nil {
			m.flash("screenshot failed: " + err.Error())
		} else {
			m.flash("saved " + path)
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		m.backToMenu = m.allowBack && (m.gameState.GameOver || m.gameState.Paused)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only means something on the game over screen.
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// step advances the game by one tick with the queued input.
func (m Model) step() Model {
	in := m.inputFrame
	m.inputFrame.Clear()

	if m.noticeTicks > 0 {
		m.noticeTicks--
		if m.noticeTicks == 0 {
			m.notice = ""
		}
	}

	if m.gameState.GameOver && in.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		return m
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if result.Ended {
		m.saveResult()
	}
	return m
}

// flash shows msg in the footer for about two seconds.
func (m *Model) flash(msg string) {
	m.notice = msg
	m.noticeTicks = 2 * max(m.config.TickRate, 1)
}

// saveResult records a finished game. Games that report runs get a full
// run record; others only get a score. Failures are ignored.
func (m *Model) saveResult() {
	score := m.gameState.Score
	m.highScore = max(m.highScore, score)
	if m.store == nil {
		return
	}

	rr, ok := m.game.(runReporter)
	if !ok {
		if score > 0 {
			//nolint:errcheck // Best-effort save
			m.store.SaveScore(m.game.ID(), score)
		}
		return
	}

	snap := rr.Snapshot()
	//nolint:errcheck // Best-effort save
	m.store.RecordResult(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      score,
		Ticks:      snap.Ticks,
		Elapsed:    snap.Elapsed,
		Difficulty: snap.Difficulty,
		Obstacles:  len(snap.Obstacles),
		Seed:       rr.Seed(),
	})
}

func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.highScore > 0 {
		footer += fmt.Sprintf("  •  best %d", m.highScore)
	}
	if m.notice != "" {
		footer += "  •  " + m.notice
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	return err
}
