// Package worldmap holds the sparse tile grid the player moves through, its
// JSON file format and the border derivation pass that surrounds carved cells
// with stone.
package worldmap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/tile"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("worldmap: coordinate out of bounds")

// Coord is a grid cell position. X increases to the right, Y increases
// downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Map is a bounded sparse grid of tile kinds. A missing cell is empty and is
// distinct from an explicit Blank. Iteration order is unspecified.
type Map struct {
	width  int
	height int
	tiles  map[Coord]tile.Kind
}

// New creates an empty map with the given grid bounds.
func New(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		tiles:  make(map[Coord]tile.Kind),
	}
}

// Width returns the grid width in cells.
func (m *Map) Width() int {
	return m.width
}

// Height returns the grid height in cells.
func (m *Map) Height() int {
	return m.height
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (m *Map) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Len returns the number of occupied cells.
func (m *Map) Len() int {
	return len(m.tiles)
}

// Get returns the kind stored at c and whether the cell is occupied.
func (m *Map) Get(c Coord) (tile.Kind, bool) {
	k, ok := m.tiles[c]
	return k, ok
}

// Is reports whether the cell at c holds kind k.
func (m *Map) Is(c Coord, k tile.Kind) bool {
	got, ok := m.tiles[c]
	return ok && got == k
}

// Set stores kind k at c.
func (m *Map) Set(c Coord, k tile.Kind) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if !k.Valid() {
		return fmt.Errorf("worldmap: invalid kind %s at %s", k, c)
	}
	m.tiles[c] = k
	return nil
}

// Delete empties the cell at c.
func (m *Map) Delete(c Coord) {
	delete(m.tiles, c)
}

// All iterates over every occupied cell in unspecified order.
func (m *Map) All() iter.Seq2[Coord, tile.Kind] {
	return func(yield func(Coord, tile.Kind) bool) {
		for c, k := range m.tiles {
			if !yield(c, k) {
				return
			}
		}
	}
}

// Find returns a cell holding kind k. When several exist, which one is
// returned is unspecified.
func (m *Map) Find(k tile.Kind) (Coord, bool) {
	for c, got := range m.tiles {
		if got == k {
			return c, true
		}
	}
	return Coord{}, false
}

// FindAll returns every cell holding kind k, sorted by row then column.
func (m *Map) FindAll(k tile.Kind) []Coord {
	var found []Coord
	for c, got := range m.tiles {
		if got == k {
			found = append(found, c)
		}
	}
	sortCoords(found)
	return found
}

// Count returns how many cells hold kind k.
func (m *Map) Count(k tile.Kind) int {
	n := 0
	for _, got := range m.tiles {
		if got == k {
			n++
		}
	}
	return n
}

// Retain keeps only the cells for which keep returns true.
func (m *Map) Retain(keep func(Coord, tile.Kind) bool) {
	for c, k := range m.tiles {
		if !keep(c, k) {
			delete(m.tiles, c)
		}
	}
}

// RemoveKind empties every cell holding kind k and returns how many there were.
func (m *Map) RemoveKind(k tile.Kind) int {
	removed := 0
	m.Retain(func(_ Coord, got tile.Kind) bool {
		if got == k {
			removed++
			return false
		}
		return true
	})
	return removed
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	clone := New(m.width, m.height)
	for c, k := range m.tiles {
		clone.tiles[c] = k
	}
	return clone
}

// Equal reports whether two maps hold the same cells.
func (m *Map) Equal(other *Map) bool {
	if len(m.tiles) != len(other.tiles) {
		return false
	}
	for c, k := range m.tiles {
		if got, ok := other.tiles[c]; !ok || got != k {
			return false
		}
	}
	return true
}

// CellRect returns the world-space rectangle covered by cell c.
func CellRect(c Coord, tileSize int) core.Rect {
	ts := float64(tileSize)
	return core.NewRect(float64(c.X)*ts, float64(c.Y)*ts, ts, ts)
}

// sortCoords orders coordinates by row, then column.
func sortCoords(cs []Coord) {
	slices.SortFunc(cs, func(a, b Coord) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
