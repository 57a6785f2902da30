package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
	"github.com/tuigames/trex-runner/internal/runner"
)

// Model is the Bubble Tea model driving a runner session.
type Model struct {
	game   *runner.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   *KeyMapper

	inputFrame core.InputFrame
	duckHold   int // ticks until the duck key counts as released
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Terminals repeat key-down while a key is held; any duck event
	// extends the hold window.
	if m.inputFrame.Has(core.ActionDuckPress) {
		m.duckHold = duckHoldTicks
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in its
// own virtual viewport, so a resize only reshapes the render target.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Synthesize the stand-up once the duck key repeats stop.
	if m.duckHold > 0 {
		m.duckHold--
		if m.duckHold == 0 {
			m.inputFrame.Set(core.ActionDuckRelease)
		}
	}

	m.game.Tick(time.Time(msg), m.inputFrame)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trex", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("trex_%s.txt", timestamp))

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

// Run starts the Bubble Tea program for a local session.
func Run(cfg *config.Config, store runner.ScoreStore, rt core.RuntimeConfig) error {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := runner.New(cfg, store, rt.Seed)
	model := NewModel(game, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
