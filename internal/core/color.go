package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the world and editor renderers.
const (
	ColorDefault Color = iota
	ColorStone         // derived border tiles
	ColorSlab          // plain slabs placed with the pencil
	ColorPlayer
	ColorDevil  // End tile and its tall hit-box
	ColorStart  // Start marker (editor only)
	ColorZone   // StopAging marker
	ColorCarved // Blank cells, shown in the editor
	ColorDim    // unlit cells outside the sight radius
	ColorCursor
	ColorText
	ColorWarn
)
