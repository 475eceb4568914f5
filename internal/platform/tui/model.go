package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxFrameGap caps the elapsed time handed to the game for one frame, so
// a suspended terminal does not release a burst of gravity on resume.
const maxFrameGap = 250 * time.Millisecond

// Game is what the terminal loop drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// ScoreRecorder stores finished games.
type ScoreRecorder interface {
	SaveScore(score, lines int) (int64, error)
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       Game
	screen     *core.Screen
	scores     ScoreRecorder
	log        *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	shotDir    string
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for game. scores may be nil to skip the game
// history; logger may be nil to log nothing.
func NewModel(game Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		scores:     scores,
		log:        logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		shotDir:    filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots"),
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.playConfig())
	m.log.Debug("game started", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// playConfig is the runtime config with the help line taken off the height.
func (m Model) playConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-1, 0)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Push(action)
	return m, nil
}

// handleResize adopts the new terminal size. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-1, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = min(max(now.Sub(m.lastTick), 0), maxFrameGap)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.gameState.GameOver && !result.State.GameOver {
		m.scoreSaved = false
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore appends the finished game to the history.
func (m Model) recordScore() {
	if m.scores == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(m.gameState.Score, m.gameState.Lines); err != nil {
		m.log.Debug("score not recorded", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Debug("screenshot failed", "path", path, "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, scores, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
