package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
	"github.com/vovakirdan/tui-mines/internal/render"
)

// Model is the Bubble Tea model for one game.
type Model struct {
	game     *game.Game
	canvas   *render.Canvas
	config   core.RuntimeConfig
	keys     *KeyMapper
	mouse    MouseTracker
	lastTick time.Time
	quitting bool
}

// NewModel creates a model drawing g on a canvas of the configured size.
func NewModel(g *game.Game, cfg core.RuntimeConfig, bg core.RGBA) Model {
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:   g,
		canvas: render.NewCanvas(cfg.ScreenW, cfg.ScreenH, bg),
		config: cfg,
		keys:   NewKeyMapper(),
		mouse:  NewMouseTracker(),
	}
}

// Game returns the wrapped game.
func (m Model) Game() *game.Game { return m.game }

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
		if ev, ok := m.mouse.Translate(msg); ok {
			m.game.HandleInput(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.MapKey(msg); a != core.ActionNone {
		m.game.HandleInput(core.ActionEvent{Action: a})
	}
	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize re-lays the board; the board itself is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Update(frameDelta(m.lastTick, now, m.config.TickRate))
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".mines", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.Preset(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.canvas.Plain()), 0o600)
}

func (m Model) draw() {
	m.canvas.Clear()
	m.game.Draw(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return m.canvas.String()
}

// ProgramOptions are the options every game program runs with. All-motion
// mouse reporting is required for hover fades.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, bg core.RGBA) error {
	p := tea.NewProgram(NewModel(g, cfg, bg), ProgramOptions()...)
	_, err := p.Run()
	return err
}
