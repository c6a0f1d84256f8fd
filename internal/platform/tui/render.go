package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/agewalk/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	core.ColorSlab:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDevil:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorZone:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorCarved:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Italic(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
