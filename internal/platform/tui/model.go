package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/replay"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// highScoreAware is implemented by games that display a stored record.
type highScoreAware interface {
	SetHighScore(hs int)
}

// stageReporter is implemented by games that track campaign progress,
// so the run's furthest stage can be persisted with its score.
type stageReporter interface {
	Stage() int
}

// Options adjusts how a game session runs.
type Options struct {
	// RecordPath, when set, saves the session as a replay file on exit.
	RecordPath string

	// Playback, when set, feeds the session inputs from a recording
	// instead of the keyboard.
	Playback *replay.Recording
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	recording  *replay.Recording
	recordPath string
	playback   *replay.Recording
	playTick   int

	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// A playback carries the runtime it was recorded under; inputs only
	// reproduce the run when seed and tick rate match.
	if opts.Playback != nil {
		pr := opts.Playback.Runtime()
		cfg.Seed = pr.Seed
		if pr.TickRate > 0 {
			cfg.TickRate = pr.TickRate
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if store != nil {
		if aware, ok := game.(highScoreAware); ok {
			if hs, err := store.HighScore(game.ID()); err == nil {
				aware.SetHighScore(hs)
			}
		}
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		recordPath: opts.RecordPath,
		playback:   opts.Playback,
	}
	if opts.RecordPath != "" {
		m.recording = replay.New(game.ID(), cfg)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

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
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}

	// During playback the keyboard only quits; the recording drives
	// everything else.
	if m.playback != nil {
		m.inputFrame.Clear()
	}

	return m, nil
}

// quit finalizes the session: flush the recording, then leave.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.recording != nil && m.recordPath != "" {
		//nolint:errcheck // Best-effort save on the way out
		replay.Save(m.recordPath, m.recording)
	}
	return m, tea.Quit
}

// handleResize processes window resize events. A recorded or replayed
// session keeps its original dimensions so inputs stay reproducible;
// only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)

	if m.recording == nil && m.playback == nil {
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	input := m.inputFrame
	if m.playback != nil {
		input = m.playback.FrameAt(m.playTick)
		m.playTick++
	}

	// Restart reseeds a live session. Recorded and replayed sessions
	// keep their seed, so the restart itself replays deterministically.
	if input.Has(core.ActionRestart) && m.gameState.GameOver && m.recording == nil && m.playback == nil {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.recording != nil {
		m.recording.AppendFrame(input)
	}

	result := m.game.Step(input)
	m.gameState = result.State

	// Save score on game over (once per run, and never from a replay)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 && m.playback == nil {
		if m.store != nil {
			stage := 1
			if sr, ok := m.game.(stageReporter); ok {
				stage = sr.Stage()
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, stage)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tanks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
