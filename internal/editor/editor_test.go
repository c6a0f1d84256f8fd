package editor

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

func newEditor(t *testing.T) *Editor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.json")
	return New(worldmap.New(100, 52), path, 3, log.New(io.Discard))
}

func TestClickStampsBrush(t *testing.T) {
	e := newEditor(t)

	if !e.Click(worldmap.C(10, 10)) {
		t.Fatal("Click() inside the grid returned false")
	}

	m := e.Map()
	for y := 9; y <= 11; y++ {
		for x := 9; x <= 11; x++ {
			if !m.Is(worldmap.C(x, y), tile.Blank) {
				t.Errorf("cell (%d,%d) is not Blank after the brush", x, y)
			}
		}
	}
	// Borders were recomputed
	if !m.Is(worldmap.C(10, 8), tile.StoneSlabUp) {
		t.Error("cell (10,8) should be an up-facing slab above the carved square")
	}
	if !m.Is(worldmap.C(8, 8), tile.StoneUpLeft) {
		t.Error("cell (8,8) should be an up-left corner")
	}
	if !e.Dirty() {
		t.Error("Dirty() = false after an edit")
	}
}

func TestClickBrushClippedAtEdge(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(0, 0))

	if n := e.Map().Count(tile.Blank); n != 4 {
		t.Errorf("Count(Blank) = %d after a corner click, expected 4", n)
	}
}

func TestClickTogglesBlank(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(10, 10))

	e.Click(worldmap.C(10, 10))

	m := e.Map()
	if _, ok := m.Get(worldmap.C(10, 10)); ok && m.Is(worldmap.C(10, 10), tile.Blank) {
		t.Error("clicking a Blank cell should empty it")
	}
	if n := m.Count(tile.Blank); n != 8 {
		t.Errorf("Count(Blank) = %d, expected 8", n)
	}
	// The emptied cell is surrounded by Blank and is re-derived as stone
	if k, ok := m.Get(worldmap.C(10, 10)); !ok || !k.Derived() {
		t.Errorf("cell (10,10) = %v, %v, expected a derived stone", k, ok)
	}
}

func TestClickOnDerivedTileCarves(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(10, 10))

	// (10,8) is a derived slab: clicking it stamps a new square
	e.Click(worldmap.C(10, 8))
	if !e.Map().Is(worldmap.C(10, 7), tile.Blank) {
		t.Error("clicking a derived tile should carve around it")
	}
}

func TestClickOutOfBounds(t *testing.T) {
	e := newEditor(t)
	if e.Click(worldmap.C(-1, 5)) {
		t.Error("Click() outside the grid returned true")
	}
	if e.Map().Len() != 0 || e.Dirty() {
		t.Error("out-of-bounds click changed the map")
	}
}

func TestSingleStartInvariant(t *testing.T) {
	e := newEditor(t)
	cells := []worldmap.Coord{worldmap.C(1, 1), worldmap.C(5, 5), worldmap.C(5, 5), worldmap.C(40, 20)}

	for _, c := range cells {
		if err := e.PlaceMarker(tile.Start, c); err != nil {
			t.Fatalf("PlaceMarker(Start, %s) failed: %v", c, err)
		}
		if n := e.Map().Count(tile.Start); n != 1 {
			t.Fatalf("Count(Start) = %d after placing at %s, expected 1", n, c)
		}
	}
	if !e.Map().Is(worldmap.C(40, 20), tile.Start) {
		t.Error("Start should be at the last placed cell")
	}
}

func TestMarkersAreIndependent(t *testing.T) {
	e := newEditor(t)
	_ = e.PlaceMarker(tile.Start, worldmap.C(1, 1))
	_ = e.PlaceMarker(tile.StopAging, worldmap.C(2, 2))
	_ = e.PlaceMarker(tile.End, worldmap.C(3, 3))
	_ = e.PlaceMarker(tile.End, worldmap.C(4, 4))

	m := e.Map()
	if m.Count(tile.Start) != 1 || m.Count(tile.StopAging) != 1 || m.Count(tile.End) != 1 {
		t.Errorf("marker counts = %d/%d/%d, expected one of each",
			m.Count(tile.Start), m.Count(tile.StopAging), m.Count(tile.End))
	}
	if !m.Is(worldmap.C(4, 4), tile.End) {
		t.Error("End should have moved to (4,4)")
	}
}

func TestPlaceMarkerSkipsRecompute(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(10, 10))
	before := e.Map().Clone()

	_ = e.PlaceMarker(tile.End, worldmap.C(10, 8))

	after := e.Map()
	if after.Len() != before.Len() {
		t.Errorf("Len() = %d, expected %d: placing a marker must not rederive borders", after.Len(), before.Len())
	}
	if !after.Is(worldmap.C(9, 8), tile.StoneSlabUp) {
		t.Error("neighboring derived tiles should be untouched")
	}
}

func TestPlaceMarkerRejects(t *testing.T) {
	e := newEditor(t)

	if err := e.PlaceMarker(tile.Slab, worldmap.C(1, 1)); err == nil {
		t.Error("PlaceMarker(Slab) should fail")
	}
	err := e.PlaceMarker(tile.Start, worldmap.C(100, 1))
	if !errors.Is(err, worldmap.ErrOutOfBounds) {
		t.Errorf("PlaceMarker() out of bounds = %v, expected ErrOutOfBounds", err)
	}
}

func TestPencilAndErase(t *testing.T) {
	e := newEditor(t)

	if !e.Pencil(worldmap.C(3, 3)) {
		t.Fatal("Pencil() returned false")
	}
	if !e.Erase(worldmap.C(4, 4)) {
		t.Fatal("Erase() returned false")
	}

	m := e.Map()
	if !m.Is(worldmap.C(3, 3), tile.Slab) || !m.Is(worldmap.C(4, 4), tile.Blank) {
		t.Error("Pencil/Erase did not place Slab/Blank")
	}
	// Neither recomputes borders
	if m.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", m.Len())
	}
	if e.Pencil(worldmap.C(-1, 0)) || e.Erase(worldmap.C(0, 52)) {
		t.Error("Pencil/Erase outside the grid should return false")
	}
}

func TestEraseThenRecompute(t *testing.T) {
	e := newEditor(t)
	e.Erase(worldmap.C(10, 10))
	e.RecomputeBorders()

	m := e.Map()
	if !m.Is(worldmap.C(10, 9), tile.StoneSlabUp) {
		t.Error("cell (10,9) should be an up-facing slab above the single carved cell")
	}
	if !m.Is(worldmap.C(9, 9), tile.StoneUpLeft) {
		t.Error("cell (9,9) should be an up-left corner")
	}
}

func TestRecomputeBordersReportsChange(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(20, 20))
	if err := e.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if e.RecomputeBorders() {
		t.Error("RecomputeBorders() = true on an up-to-date map, expected false")
	}
	if e.Dirty() {
		t.Error("Dirty() = true after a no-op recompute")
	}

	e.Pencil(worldmap.C(50, 40))
	if err := e.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !e.RecomputeBorders() {
		t.Error("RecomputeBorders() = false after the slab was stripped, expected true")
	}
	if !e.Dirty() {
		t.Error("Dirty() = false after the map changed")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(20, 20))
	_ = e.PlaceMarker(tile.Start, worldmap.C(20, 20))

	if err := e.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if e.Dirty() {
		t.Error("Dirty() = true after saving")
	}

	loaded, err := worldmap.Read(e.Path(), 100, 52)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if !loaded.Equal(e.Map()) {
		t.Error("saved map differs from the edited map")
	}
}

func TestSaveFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	dir := t.TempDir()
	// The target is an existing directory, so the final rename fails
	e := New(worldmap.New(10, 10), dir, 3, log.New(&logs))
	e.Pencil(worldmap.C(1, 1))

	if err := e.Save(); err == nil {
		t.Fatal("Save() over a directory should fail")
	}
	if !strings.Contains(logs.String(), "failed to save map") {
		t.Errorf("log = %q, expected the save failure", logs.String())
	}
	if !e.Dirty() {
		t.Error("Dirty() = false after a failed save")
	}
	if e.Map().Len() != 1 {
		t.Error("a failed save should keep the map")
	}
}

func TestEvenBrushRoundsUp(t *testing.T) {
	e := New(worldmap.New(10, 10), "map.json", 4, log.New(io.Discard))
	if e.BrushSize() != 5 {
		t.Errorf("BrushSize() = %d, expected 5", e.BrushSize())
	}
}

func TestCursorClamped(t *testing.T) {
	e := newEditor(t)
	e.SetCursor(worldmap.C(0, 0))
	e.MoveCursor(-5, -5)
	if e.Cursor() != worldmap.C(0, 0) {
		t.Errorf("Cursor() = %s, expected (0,0)", e.Cursor())
	}
	e.MoveCursor(500, 500)
	if e.Cursor() != worldmap.C(99, 51) {
		t.Errorf("Cursor() = %s, expected (99,51)", e.Cursor())
	}
}

func TestRenderAndScreenToCell(t *testing.T) {
	e := newEditor(t)
	e.Click(worldmap.C(10, 10))
	_ = e.PlaceMarker(tile.Start, worldmap.C(10, 10))
	e.SetCursor(worldmap.C(60, 40))

	screen := core.NewScreen(40, 20)
	e.Render(screen)

	// The cursor is scrolled into view
	c, ok := e.ScreenToCell(39, 18, 20)
	if !ok || c != worldmap.C(60, 40) {
		t.Errorf("ScreenToCell(39, 18) = %s, %v, expected (60,40), true", c, ok)
	}
	if screen.GetCell(39, 18).Color != core.ColorCursor {
		t.Error("cursor cell is not drawn in the cursor color")
	}
	status := strings.Split(screen.String(), "\n")[19]
	if !strings.Contains(status, "(60,40)") {
		t.Errorf("status line = %q, expected the cursor position", status)
	}
	if _, ok := e.ScreenToCell(5, 19, 20); ok {
		t.Error("the status line should not map to a cell")
	}

	// Back to the carved area: Start and carved cells are visible while editing
	e.SetCursor(worldmap.C(0, 0))
	e.Render(screen)
	if screen.Get(10, 10) != 'S' {
		t.Errorf("cell (10,10) drawn as %q, expected the Start marker", screen.Get(10, 10))
	}
	if screen.Get(9, 9) != '·' {
		t.Errorf("cell (9,9) drawn as %q, expected a carved cell", screen.Get(9, 9))
	}
}
