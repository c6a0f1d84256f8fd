package editor

import (
	"fmt"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// CursorChar marks the cursor on an empty cell.
const CursorChar = '▒'

// statusRows is the number of rows reserved below the map view.
const statusRows = 1

// Render draws the map, every marker, the cursor and a status line. The view
// scrolls to keep the cursor visible.
func (e *Editor) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()-statusRows
	e.scrollTo(w, h)

	for sy := range h {
		for sx := range w {
			c := e.origin.Add(sx, sy)
			if !e.m.InBounds(c) {
				continue
			}
			if k, ok := e.m.Get(c); ok {
				r, color := k.Glyph()
				dst.SetColored(sx, sy, r, color)
			}
		}
	}

	// Cursor
	cx, cy := e.cursor.X-e.origin.X, e.cursor.Y-e.origin.Y
	r := dst.Get(cx, cy)
	if r == ' ' {
		r = CursorChar
	}
	dst.SetColored(cx, cy, r, core.ColorCursor)

	kind := "empty"
	if k, ok := e.m.Get(e.cursor); ok {
		kind = k.String()
	}
	status := fmt.Sprintf(" %s %-14s brush %d  %s", e.cursor, kind, e.brush, e.path)
	if e.dirty {
		status += " [modified]"
	}
	dst.DrawTextColored(0, h, status, core.ColorText)
}

// ScreenToCell converts a screen position from the last Render to a grid
// cell. Returns false for the status line and cells outside the grid.
func (e *Editor) ScreenToCell(sx, sy, screenH int) (worldmap.Coord, bool) {
	if sy < 0 || sy >= screenH-statusRows || sx < 0 {
		return worldmap.Coord{}, false
	}
	c := e.origin.Add(sx, sy)
	return c, e.m.InBounds(c)
}

// scrollTo adjusts the view origin so the cursor lies within a w x h view.
func (e *Editor) scrollTo(w, h int) {
	if e.cursor.X < e.origin.X {
		e.origin.X = e.cursor.X
	} else if e.cursor.X >= e.origin.X+w {
		e.origin.X = e.cursor.X - w + 1
	}
	if e.cursor.Y < e.origin.Y {
		e.origin.Y = e.cursor.Y
	} else if e.cursor.Y >= e.origin.Y+h {
		e.origin.Y = e.cursor.Y - h + 1
	}
	e.origin.X = max(e.origin.X, 0)
	e.origin.Y = max(e.origin.Y, 0)
}
