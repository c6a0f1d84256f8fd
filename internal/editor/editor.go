// Package editor implements the map editing operations: carving with a square
// brush, toggling carved cells back, single-cell pencil and eraser, and the
// single-instance Start, StopAging and End markers.
package editor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// Editor mutates a map in response to editing commands. Carving operations
// recompute borders; markers, pencil and eraser do not.
type Editor struct {
	m      *worldmap.Map
	path   string
	brush  int
	cursor worldmap.Coord
	origin worldmap.Coord // Cell drawn at the top-left of the map view
	dirty  bool
	logger *log.Logger
}

// New creates an editor over m that saves to path. brushSize must be odd; an
// even size is rounded up. A nil logger uses the default logger.
func New(m *worldmap.Map, path string, brushSize int, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.Default()
	}
	if brushSize < 1 {
		brushSize = 1
	}
	if brushSize%2 == 0 {
		brushSize++
	}
	return &Editor{
		m:      m,
		path:   path,
		brush:  brushSize,
		cursor: worldmap.C(m.Width()/2, m.Height()/2),
		logger: logger,
	}
}

// Map returns the edited map.
func (e *Editor) Map() *worldmap.Map { return e.m }

// Path returns the file the editor saves to.
func (e *Editor) Path() string { return e.path }

// BrushSize returns the edge of the square brush.
func (e *Editor) BrushSize() int { return e.brush }

// Dirty reports whether the map changed since the last save.
func (e *Editor) Dirty() bool { return e.dirty }

// Cursor returns the cell keyboard commands apply to.
func (e *Editor) Cursor() worldmap.Coord { return e.cursor }

// SetCursor moves the cursor to c, clamped to the grid.
func (e *Editor) SetCursor(c worldmap.Coord) {
	e.cursor = worldmap.C(
		core.Clamp(c.X, 0, e.m.Width()-1),
		core.Clamp(c.Y, 0, e.m.Height()-1),
	)
}

// MoveCursor moves the cursor by (dx, dy), clamped to the grid.
func (e *Editor) MoveCursor(dx, dy int) {
	e.SetCursor(e.cursor.Add(dx, dy))
}

// Click applies a primary click at c. Clicking a Blank cell empties it;
// clicking anywhere else carves a brush-sized square of Blank centered on c,
// clipped to the grid. Borders are recomputed either way. Returns false if c
// is outside the grid.
func (e *Editor) Click(c worldmap.Coord) bool {
	if !e.m.InBounds(c) {
		return false
	}

	if e.m.Is(c, tile.Blank) {
		e.m.Delete(c)
	} else {
		half := e.brush / 2
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				// Cells outside the grid are clipped
				_ = e.m.Set(c.Add(dx, dy), tile.Blank)
			}
		}
	}

	worldmap.RecomputeBorders(e.m)
	e.dirty = true
	return true
}

// PlaceMarker removes every existing tile of kind k and puts one at c. Only
// Start, StopAging and End are markers.
func (e *Editor) PlaceMarker(k tile.Kind, c worldmap.Coord) error {
	switch k {
	case tile.Start, tile.StopAging, tile.End:
	default:
		return fmt.Errorf("editor: %s is not a marker", k)
	}
	if !e.m.InBounds(c) {
		return fmt.Errorf("editor: cannot place %s: %w", k, worldmap.ErrOutOfBounds)
	}

	if n := e.m.RemoveKind(k); n > 0 {
		e.logger.Debug("marker moved", "kind", k, "removed", n)
	}
	if err := e.m.Set(c, k); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	e.dirty = true
	return nil
}

// Pencil places a plain slab at c.
func (e *Editor) Pencil(c worldmap.Coord) bool {
	return e.put(c, tile.Slab)
}

// Erase carves the single cell at c.
func (e *Editor) Erase(c worldmap.Coord) bool {
	return e.put(c, tile.Blank)
}

func (e *Editor) put(c worldmap.Coord, k tile.Kind) bool {
	if err := e.m.Set(c, k); err != nil {
		return false
	}
	e.dirty = true
	return true
}

// RecomputeBorders rebuilds every derived tile and reports whether the map
// changed.
func (e *Editor) RecomputeBorders() bool {
	before := e.m.Clone()
	worldmap.RecomputeBorders(e.m)
	if e.m.Equal(before) {
		return false
	}
	e.dirty = true
	return true
}

// Save writes the map to the editor's path. Failures are logged and returned;
// the map stays in memory either way.
func (e *Editor) Save() error {
	if err := worldmap.Save(e.m, e.path); err != nil {
		e.logger.Error("failed to save map", "path", e.path, "error", err)
		return err
	}
	e.dirty = false
	e.logger.Info("map saved", "path", e.path, "tiles", e.m.Len())
	return nil
}
