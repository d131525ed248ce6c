package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/registry"
	"github.com/vovakirdan/arena-dash/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	hold      holdState
	input     core.InputFrame
	gameState core.GameState
	quitting  bool
	back      bool
	recorded  bool   // Whether the current round end has been stored
	lastRound string // Round ID of the last stored round
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		keys:      DefaultKeyMap(),
		hold:      newHoldState(),
		input:     core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case isDirection(action):
		m.hold.press(action)
		m.input.Press(action)
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleMouse forwards left-button presses to the game as clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.AddClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that cannot keep their state across a resize start over
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.apply(&m.input)

	result := m.game.Step(m.input)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.hold.release()
	}
	m.recordRound()

	m.input.Clear()
	m.hold.decay()

	return m, tickCmd(m.config.TickRate)
}

// recordRound stores the score and round summary once per round end.
func (m *Model) recordRound() {
	if !m.gameState.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true

	outcome := storage.OutcomeLose
	if m.gameState.Won {
		outcome = storage.OutcomeWin
	}
	m.logger.Info("round over",
		"outcome", outcome,
		"score", m.gameState.Score,
		"lives", m.gameState.Lives,
		"time_left", m.gameState.TimeLeft,
	)

	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("cannot save score", "error", err)
		}
	}
	id, err := m.store.SaveRound(storage.RoundRecord{
		GameID:   m.game.ID(),
		Outcome:  outcome,
		Score:    m.gameState.Score,
		Lives:    m.gameState.Lives,
		TimeLeft: m.gameState.TimeLeft,
		Objects:  m.gameState.Objects,
	})
	if err != nil {
		m.logger.Warn("cannot save round", "error", err)
		return
	}
	m.lastRound = id
}

// saveScreenshot writes the current screen to ~/.arena/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRoundID returns the ID of the most recently stored round, if any.
func (m Model) LastRoundID() string {
	return m.lastRound
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackRequested returns true if the user left the game with the back key.
func (m Model) BackRequested() bool {
	return m.back
}

// Run starts the Bubble Tea program for the given game.
// It reports whether the user left with the back key.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackRequested(), nil
	}
	return false, nil
}
