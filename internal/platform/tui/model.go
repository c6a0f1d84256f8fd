package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/world"
)

// Model is the Bubble Tea model for playing a map.
type Model struct {
	world    *world.World
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	logger   *log.Logger
	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel creates a play model over w.
func NewModel(w *world.World, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		world:  w,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		hold:   NewHoldTracker(input.HoldWindow),
		logger: logger,
	}
}

// helpRows is the number of rows below the game screen used by the help line.
const helpRows = 1

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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.hold.Release()
	case core.ActionRestart:
		m.world.Restart()
		m.hold.Release()
		m.logger.Info("restarted")
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.hold.Press(a, time.Now())
	}
	return m, nil
}

// handleTick runs one simulation step with the measured frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	if !m.paused {
		cues := m.world.Step(m.hold.Frame(now), dt)
		if cues.Any() {
			m.logger.Debug("cues", "jumped", cues.Jumped, "landed", cues.Landed,
				"footstep", cues.Footstep, "end", cues.EndReached, "died", cues.Died)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.world.Render(m.screen)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawCenteredMessage draws a framed message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// Run starts the Bubble Tea program for playing w.
func Run(w *world.World, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) error {
	model := NewModel(w, cfg, input, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
