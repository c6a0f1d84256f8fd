package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/editor"
	"github.com/vovakirdan/agewalk/internal/tile"
)

// EditorKeyMap holds the editor key bindings.
type EditorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Carve     key.Binding
	Pencil    key.Binding
	Erase     key.Binding
	Start     key.Binding
	StopAging key.Binding
	End       key.Binding
	Borders   key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultEditorKeyMap returns the default editor bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Carve:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space/click", "carve")),
		Pencil:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "slab")),
		Erase:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e/right click", "erase")),
		Start:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "start")),
		StopAging: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "stop aging")),
		End:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "end")),
		Borders:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "borders")),
		Save:      key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Carve, k.Start, k.End, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Carve, k.Pencil, k.Erase, k.Borders},
		{k.Start, k.StopAging, k.End},
		{k.Save, k.Help, k.Quit},
	}
}

// EditorModel is the Bubble Tea model for the map editor.
type EditorModel struct {
	ed       *editor.Editor
	screen   *core.Screen
	keys     EditorKeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewEditorModel creates an editor model.
func NewEditorModel(ed *editor.Editor, cfg core.RuntimeConfig, logger *log.Logger) EditorModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return EditorModel{
		ed:     ed,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		keys:   DefaultEditorKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init initializes the editor model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey applies editor commands at the cursor.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.ed
	cursor := ed.Cursor()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if ed.Dirty() {
			// Save on exit; a failure is already logged
			_ = ed.Save()
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		ed.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		ed.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		ed.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		ed.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Carve):
		ed.Click(cursor)
	case key.Matches(msg, m.keys.Pencil):
		ed.Pencil(cursor)
	case key.Matches(msg, m.keys.Erase):
		ed.Erase(cursor)
	case key.Matches(msg, m.keys.Start):
		m.placeMarker(tile.Start)
	case key.Matches(msg, m.keys.StopAging):
		m.placeMarker(tile.StopAging)
	case key.Matches(msg, m.keys.End):
		m.placeMarker(tile.End)
	case key.Matches(msg, m.keys.Borders):
		ed.RecomputeBorders()
	case key.Matches(msg, m.keys.Save):
		_ = ed.Save()
	}
	return m, nil
}

func (m EditorModel) placeMarker(k tile.Kind) {
	if err := m.ed.PlaceMarker(k, m.ed.Cursor()); err != nil {
		m.logger.Warn("cannot place marker", "kind", k, "error", err)
	}
}

// handleMouse carves with the left button and erases with the right one.
func (m EditorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	c, ok := m.ed.ScreenToCell(msg.X, msg.Y, m.screen.Height())
	if !ok {
		return m, nil
	}

	m.ed.SetCursor(c)
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.ed.Click(c)
	case tea.MouseButtonRight:
		m.ed.Erase(c)
	}
	return m, nil
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}
	m.ed.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// RunEditor starts the Bubble Tea program for editing.
func RunEditor(ed *editor.Editor, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewEditorModel(ed, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
