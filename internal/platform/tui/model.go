package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreSaver records finished games.
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Options configures a Model.
type Options struct {
	FPS       int         // frames per second, defaults to 60
	MoveEvery int         // frames per engine step, defaults to 10
	Player    string      // name recorded with each score
	Scores    ScoreSaver  // may be nil
	Logger    *log.Logger // may be nil

	// Initial terminal size; zero means just large enough for the board.
	// Later tea.WindowSizeMsg updates replace it.
	Width  int
	Height int
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game       *snake.GameState
	screen     *core.Screen
	scores     ScoreSaver
	logger     *log.Logger
	player     string
	runID      string
	fps        int
	pacer      core.Pacer
	keys       KeyMap
	help       help.Model
	width      int // terminal size
	height     int
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the score of the current run has been recorded
}

// NewModel creates a model driving g. The game is shared, not copied: the
// caller can persist it after the program exits.
func NewModel(g *snake.GameState, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.MoveEvery <= 0 {
		opts.MoveEvery = 10
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := BoardSize(g.LevelSize())
	m := Model{
		game:   g,
		screen: core.NewScreen(w, h),
		scores: opts.Scores,
		logger: opts.Logger,
		player: opts.Player,
		runID:  uuid.NewString(),
		fps:    opts.FPS,
		pacer:  core.NewPacer(opts.MoveEvery),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.Width,
		height: opts.Height,
		// A game restored after death was recorded when it ended.
		scoreSaved: !g.SnakeAlive(),
	}
	if m.width <= 0 || m.height <= 0 {
		m.width, m.height = w, h+1
	}
	m.syncKeys()
	return m
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionPause:
		m.paused = !m.paused

	case action == core.ActionRestart:
		m.restart()

	case action.IsMove() && !m.paused:
		m.game.Steer(action.Direction())
	}

	m.syncKeys()
	return m, nil
}

// handleTick advances the frame clock and steps the engine when due.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.paused && m.pacer.Frame() {
		if m.game.Tick() == snake.OutcomeDied {
			m.recordScore()
			m.syncKeys()
		}
	}
	return m, tickCmd(m.fps)
}

// restart begins a new run. The engine keeps its high score.
func (m *Model) restart() {
	m.game.Reset()
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.paused = false
	m.pacer.Reset()
	m.logger.Debug("new run", "run", m.runID)
}

// recordScore appends the finished run to the score history once.
func (m *Model) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.logger.Info("game over", "player", m.player, "run", m.runID, "score", m.game.Score(), "length", m.game.Len())

	if m.scores == nil || m.game.Score() == 0 {
		return
	}
	_, err := m.scores.SaveScore(storage.ScoreEntry{
		Player: m.player,
		RunID:  m.runID,
		Score:  m.game.Score(),
		Length: m.game.Len(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// syncKeys enables the bindings that make sense in the current state so
// key matching and the help footer agree.
func (m *Model) syncKeys() {
	alive := m.game.SnakeAlive()
	m.keys.Restart.SetEnabled(!alive)
	m.keys.Pause.SetEnabled(alive)
	m.keys.Up.SetEnabled(alive)
	m.keys.Down.SetEnabled(alive)
	m.keys.Left.SetEnabled(alive)
	m.keys.Right.SetEnabled(alive)
}

// Game returns the game driven by the model.
func (m Model) Game() *snake.GameState {
	return m.game
}

// Paused reports whether the driver is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// RunID identifies the current run in the score history.
func (m Model) RunID() string {
	return m.runID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	needW, needH := m.screen.Width(), m.screen.Height()+lipgloss.Height(footer)
	if !core.NewRect(0, 0, m.width, m.height).Fits(needW, needH) {
		return tooSmall(m.width, m.height, needW, needH)
	}

	DrawGame(m.screen, m.game, m.paused)
	body := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program for g and blocks until the user quits.
// Extra program options are appended to the defaults.
func Run(g *snake.GameState, opts Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...,
	)

	_, err := p.Run()
	return err
}
