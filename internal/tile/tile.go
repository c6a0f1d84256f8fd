// Package tile is the catalog of block kinds a map cell can hold, with their
// collision and special-zone classification and how each is drawn.
package tile

import (
	"fmt"

	"github.com/vovakirdan/agewalk/internal/core"
)

// Kind is the category of a grid cell. The set is closed.
//
// Directional stone kinds are named for where the tile sits relative to the
// carved cell it borders: StoneSlabUp sits above a Blank cell, StoneUpLeft
// sits up and to the left of one.
type Kind uint8

const (
	Blank Kind = iota
	StoneUpLeft
	StoneUpRight
	StoneDownLeft
	StoneDownRight
	StoneSlabUp
	StoneSlabDown
	StoneSlabLeft
	StoneSlabRight
	Slab
	Start
	StopAging
	End

	kindCount
)

var names = [kindCount]string{
	Blank:          "Blank",
	StoneUpLeft:    "StoneUpLeft",
	StoneUpRight:   "StoneUpRight",
	StoneDownLeft:  "StoneDownLeft",
	StoneDownRight: "StoneDownRight",
	StoneSlabUp:    "StoneSlabUp",
	StoneSlabDown:  "StoneSlabDown",
	StoneSlabLeft:  "StoneSlabLeft",
	StoneSlabRight: "StoneSlabRight",
	Slab:           "Slab",
	Start:          "Start",
	StopAging:      "StopAging",
	End:            "End",
}

// All returns every kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the persisted name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return names[k]
}

// Parse returns the kind with the given persisted name.
func Parse(name string) (Kind, bool) {
	for k, n := range names {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("tile: unknown kind %d", uint8(k))
	}
	return []byte(names[k]), nil
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("tile: unknown kind %q", text)
	}
	*k = parsed
	return nil
}

// Collidable reports whether the kind blocks player movement.
func (k Kind) Collidable() bool {
	switch k {
	case Blank, Start, StopAging:
		return false
	}
	return k.Valid()
}

// SpecialZone reports whether the kind triggers a gameplay effect on overlap
// or proximity.
func (k Kind) SpecialZone() bool {
	return k == StopAging || k == End
}

// Derived reports whether the kind is produced by border derivation.
func (k Kind) Derived() bool {
	return k >= StoneUpLeft && k <= StoneSlabRight
}

// Rendered reports whether the kind is drawn during play. Carved cells and
// invisible markers are not.
func (k Kind) Rendered() bool {
	switch k {
	case Blank, Start, StopAging:
		return false
	}
	return k.Valid()
}

// Sprite returns the cell coordinate of the kind in the tileset sheet.
func (k Kind) Sprite() (x, y int) {
	switch k {
	case StoneUpLeft:
		return 0, 0
	case StoneSlabUp:
		return 1, 0
	case StoneUpRight:
		return 2, 0
	case StoneSlabLeft:
		return 0, 1
	case Slab:
		return 1, 1
	case StoneSlabRight:
		return 2, 1
	case StoneDownLeft:
		return 0, 2
	case StoneSlabDown:
		return 1, 2
	case StoneDownRight:
		return 2, 2
	case Start:
		return 3, 0
	case StopAging:
		return 3, 1
	case End:
		return 3, 2
	default:
		return 4, 0
	}
}

// Glyph returns the terminal rune and color used to draw the kind.
func (k Kind) Glyph() (rune, core.Color) {
	switch k {
	case StoneUpLeft:
		return '▗', core.ColorStone
	case StoneUpRight:
		return '▖', core.ColorStone
	case StoneDownLeft:
		return '▝', core.ColorStone
	case StoneDownRight:
		return '▘', core.ColorStone
	case StoneSlabUp:
		return '▄', core.ColorStone
	case StoneSlabDown:
		return '▀', core.ColorStone
	case StoneSlabLeft:
		return '▐', core.ColorStone
	case StoneSlabRight:
		return '▌', core.ColorStone
	case Slab:
		return '▬', core.ColorSlab
	case Start:
		return 'S', core.ColorStart
	case StopAging:
		return '⧗', core.ColorZone
	case End:
		return 'Ψ', core.ColorDevil
	default:
		return '·', core.ColorCarved
	}
}
