package player

import (
	"math"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// HitBox returns the solid rectangle of a tile of kind k at cell c. The End
// tile stands hitboxTiles cells tall, anchored at the bottom of its cell.
func HitBox(c worldmap.Coord, k tile.Kind, tileSize int, hitboxTiles float64) core.Rect {
	r := worldmap.CellRect(c, tileSize)
	if k == tile.End && hitboxTiles > 1 {
		h := hitboxTiles * float64(tileSize)
		return core.NewRect(r.X, r.Bottom()-h, r.W, h)
	}
	return r
}

// Collides returns the hit-box of a solid tile that overlaps box. When several
// overlap, any one of them may be returned.
func Collides(m *worldmap.Map, box core.Rect, tileSize int, hitboxTiles float64) (core.Rect, bool) {
	ts := float64(tileSize)
	x0 := int(math.Floor(box.X / ts))
	x1 := int(math.Floor(box.Right() / ts))
	y0 := int(math.Floor(box.Y / ts))
	// End tiles reach upward, so cells below the box can still hit it
	y1 := int(math.Floor(box.Bottom()/ts)) + int(math.Ceil(hitboxTiles))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := worldmap.C(x, y)
			k, ok := m.Get(c)
			if !ok || !k.Collidable() {
				continue
			}
			hit := HitBox(c, k, tileSize, hitboxTiles)
			if box.Intersects(hit) {
				return hit, true
			}
		}
	}
	return core.Rect{}, false
}
