package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/editor"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/world"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func newPlayModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultGameConfig()
	m := worldmap.New(cfg.Grid.Width, cfg.Grid.Height)
	for x := range 40 {
		_ = m.Set(worldmap.C(x, 10), tile.Slab)
	}
	_ = m.Set(worldmap.C(5, 5), tile.Start)

	w, err := world.New(cfg, m, quiet())
	if err != nil {
		t.Fatalf("world.New() failed: %v", err)
	}
	return NewModel(w, core.DefaultConfig(), cfg.Input, quiet())
}

func TestModelTickAdvancesWorld(t *testing.T) {
	model := newPlayModel(t)
	t0 := time.Now()

	var tm tea.Model = model
	for i := range 10 {
		tm, _ = tm.Update(TickMsg(t0.Add(time.Duration(i) * 16 * time.Millisecond)))
	}

	m := tm.(Model)
	if m.world.Now() == 0 {
		t.Error("world clock did not advance")
	}
	if m.world.Player().Position() == m.world.Player().Spawn() {
		t.Error("player should have started falling")
	}
}

func TestModelPause(t *testing.T) {
	var tm tea.Model = newPlayModel(t)
	tm, _ = tm.Update(runeKey('p'))

	t0 := time.Now()
	for i := range 5 {
		tm, _ = tm.Update(TickMsg(t0.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
	if tm.(Model).world.Now() != 0 {
		t.Error("world advanced while paused")
	}
	view := tm.View()
	if !strings.Contains(view, "PAUSED") || !strings.Contains(view, "Press P to resume") {
		t.Error("View() should show the pause banner")
	}
	if !strings.ContainsRune(view, '┌') || !strings.ContainsRune(view, '┘') {
		t.Error("pause banner should be framed")
	}
}

func TestModelQuit(t *testing.T) {
	var tm tea.Model = newPlayModel(t)
	tm, cmd := tm.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if tm.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func newEditorModel(t *testing.T) (EditorModel, *editor.Editor) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.json")
	ed := editor.New(worldmap.New(100, 52), path, 3, quiet())
	return NewEditorModel(ed, core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60}, quiet()), ed
}

func TestEditorModelKeys(t *testing.T) {
	model, ed := newEditorModel(t)
	ed.SetCursor(worldmap.C(10, 10))

	var tm tea.Model = model
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !ed.Map().Is(worldmap.C(10, 10), tile.Blank) {
		t.Error("space should carve at the cursor")
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRight})
	tm, _ = tm.Update(runeKey('x'))
	if !ed.Map().Is(worldmap.C(11, 10), tile.Start) {
		t.Error("x should place Start at the moved cursor")
	}

	_, _ = tm.Update(runeKey('z'))
	if ed.Map().Count(tile.End) != 1 {
		t.Error("z should place End")
	}
}

func TestEditorModelQuitSaves(t *testing.T) {
	model, ed := newEditorModel(t)
	ed.Pencil(worldmap.C(3, 3))

	var tm tea.Model = model
	_, cmd := tm.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}

	loaded, err := worldmap.Read(ed.Path(), 100, 52)
	if err != nil {
		t.Fatalf("map was not saved on exit: %v", err)
	}
	if !loaded.Is(worldmap.C(3, 3), tile.Slab) {
		t.Error("saved map is missing the edit")
	}
}

func TestEditorModelMouse(t *testing.T) {
	model, ed := newEditorModel(t)
	ed.SetCursor(worldmap.C(0, 0))
	_ = model.View() // lay out the view origin

	var tm tea.Model = model
	tm, _ = tm.Update(tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !ed.Map().Is(worldmap.C(20, 10), tile.Blank) {
		t.Error("left click should carve the clicked cell")
	}
	if ed.Cursor() != worldmap.C(20, 10) {
		t.Errorf("Cursor() = %s, expected the clicked cell", ed.Cursor())
	}

	_, _ = tm.Update(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if !ed.Map().Is(worldmap.C(40, 5), tile.Blank) {
		t.Error("right click should erase the clicked cell")
	}
	if ed.Map().Is(worldmap.C(41, 5), tile.Blank) {
		t.Error("right click should only erase a single cell")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "agewalk", core.ColorText)
	s.SetColored(0, 1, '◗', core.ColorPlayer)

	out := RenderScreen(s)
	if !strings.Contains(out, "agewalk") || !strings.ContainsRune(out, '◗') {
		t.Errorf("RenderScreen() = %q, expected the drawn text", out)
	}
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected MenuChoice
	}{
		{
			name:     "enter picks play",
			keys:     []tea.KeyMsg{{Type: tea.KeyEnter}},
			expected: ChoicePlay,
		},
		{
			name:     "down then enter picks edit",
			keys:     []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			expected: ChoiceEdit,
		},
		{
			name:     "cursor stops at the last item",
			keys:     []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			expected: ChoiceEdit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var model tea.Model = NewMenuModel("map.json", core.DefaultConfig())
			for _, k := range tc.keys {
				model, _ = model.Update(k)
			}
			selected := model.(MenuModel).Selected()
			if selected == nil {
				t.Fatal("Selected() = nil, expected a choice")
			}
			if selected.Choice != tc.expected {
				t.Errorf("Selected().Choice = %v, expected %v", selected.Choice, tc.expected)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	model, cmd := NewMenuModel("map.json", core.DefaultConfig()).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("Esc should return a quit command")
	}
	if model.(MenuModel).Selected() != nil {
		t.Error("Selected() should be nil after quitting")
	}
	if !strings.Contains(NewMenuModel("caves/first.json", core.DefaultConfig()).View(), "caves/first.json") {
		t.Error("View() should show the map path")
	}
}
