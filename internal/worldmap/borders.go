package worldmap

import "github.com/vovakirdan/agewalk/internal/tile"

// cornerRule places an outer corner when the diagonal neighbor is Blank and
// neither orthogonal neighbor next to that diagonal is.
type cornerRule struct {
	dx, dy int
	kind   tile.Kind
}

// edgeRule places a slab when the orthogonal neighbor is Blank. The kind's
// direction names where the slab sits relative to that Blank cell, so a
// slab with Blank below it is StoneSlabUp.
type edgeRule struct {
	dx, dy int
	kind   tile.Kind
}

// Precedence is significant: it decides which kind wins at junctions that
// satisfy several rules.
var (
	cornerRules = []cornerRule{
		{dx: 1, dy: 1, kind: tile.StoneUpLeft},
		{dx: -1, dy: 1, kind: tile.StoneUpRight},
		{dx: 1, dy: -1, kind: tile.StoneDownLeft},
		{dx: -1, dy: -1, kind: tile.StoneDownRight},
	}
	edgeRules = []edgeRule{
		{dx: 0, dy: 1, kind: tile.StoneSlabUp},
		{dx: 0, dy: -1, kind: tile.StoneSlabDown},
		{dx: 1, dy: 0, kind: tile.StoneSlabLeft},
		{dx: -1, dy: 0, kind: tile.StoneSlabRight},
	}
)

// RecomputeBorders discards every tile except Blank and Start, then derives
// stone border tiles for each empty cell from its Blank neighbors. Running it
// twice gives the same map as running it once.
func RecomputeBorders(m *Map) {
	m.Retain(func(_ Coord, k tile.Kind) bool {
		return k == tile.Blank || k == tile.Start
	})

	derived := make(map[Coord]tile.Kind)
	for y := range m.height {
		for x := range m.width {
			c := C(x, y)
			if _, occupied := m.tiles[c]; occupied {
				continue
			}
			if k, ok := BorderKind(m, c); ok {
				derived[c] = k
			}
		}
	}

	for c, k := range derived {
		m.tiles[c] = k
	}
}

// BorderKind returns the stone kind an empty cell at c should hold given its
// neighbors, or false when no Blank cell touches it.
func BorderKind(m *Map, c Coord) (tile.Kind, bool) {
	blank := func(dx, dy int) bool {
		return m.Is(c.Add(dx, dy), tile.Blank)
	}

	for _, r := range cornerRules {
		if blank(r.dx, r.dy) && !blank(r.dx, 0) && !blank(0, r.dy) {
			return r.kind, true
		}
	}
	for _, r := range edgeRules {
		if blank(r.dx, r.dy) {
			return r.kind, true
		}
	}
	return 0, false
}
