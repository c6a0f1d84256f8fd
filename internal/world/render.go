package world

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/player"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// Visual characters for rendering
const (
	PlayerRight     = '◗'
	PlayerLeft      = '◖'
	PlayerStepRight = '▶' // Odd walk frames
	PlayerStepLeft  = '◀'
	PlayerAir       = '◓'
	PlayerFalling   = '◌' // Death frames before the last
	PlayerDead      = '✝'
	DimChar         = '░'
)

// hudRows is the number of screen rows used by the status line.
const hudRows = 1

// Viewport returns the grid cell drawn at the top-left of a screen of the given
// size. One screen cell shows one tile; the camera position is centered.
func (w *World) Viewport(screenW, screenH int) worldmap.Coord {
	ts := float64(w.cfg.Grid.TileSize)
	cam := w.camera.Position()
	rows := screenH - hudRows
	return worldmap.C(
		int(math.Floor(cam.X/ts))-screenW/2,
		int(math.Floor(cam.Y/ts))-rows/2,
	)
}

// Render draws the visible part of the world and the status line.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()

	p := w.player
	ts := float64(w.cfg.Grid.TileSize)
	origin := w.Viewport(dst.Width(), dst.Height())
	px, py := p.Box().Center()
	light := w.cfg.Sight.LightRadius * p.Sight()
	faded := w.FadeAlpha() >= 128

	for sy := hudRows; sy < dst.Height(); sy++ {
		for sx := range dst.Width() {
			c := origin.Add(sx, sy-hudRows)
			k, ok := w.m.Get(c)
			if !ok || !k.Rendered() {
				continue
			}
			r, color := k.Glyph()
			cx, cy := worldmap.CellRect(c, w.cfg.Grid.TileSize).Center()
			if faded || math.Hypot(cx-px, cy-py) > light {
				r, color = DimChar, core.ColorDim
			}
			dst.SetColored(sx, sy, r, color)
		}
	}

	// Player
	sx := int(math.Floor(px/ts)) - origin.X
	sy := int(math.Floor(py/ts)) - origin.Y + hudRows
	if sy >= hudRows {
		dst.SetColored(sx, sy, w.playerGlyph(), core.ColorPlayer)
	}

	w.drawHUD(dst)
}

// playerGlyph picks the player sprite from the animation state and frame.
func (w *World) playerGlyph() rune {
	p := w.player
	left := p.Facing() == player.FacingLeft
	frame := player.FrameOf(p.State())

	switch p.State().(type) {
	case player.Dying:
		if frame >= w.cfg.Animation.DeathFinalFrame {
			return PlayerDead
		}
		return PlayerFalling
	case player.Jumping:
		return PlayerAir
	case player.Walking:
		if frame%2 == 1 {
			if left {
				return PlayerStepLeft
			}
			return PlayerStepRight
		}
	}
	if left {
		return PlayerLeft
	}
	return PlayerRight
}

// drawHUD renders the status line: stage, life bar and latched flags.
func (w *World) drawHUD(dst *core.Screen) {
	p := w.player
	const barWidth = 10
	filled := int(p.Aging().Progress(w.clock.Now()) * barWidth)
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", barWidth-filled)

	status := fmt.Sprintf(" %-8s %s ", p.Stage(), bar)
	dst.DrawTextColored(0, 0, status, core.ColorText)

	var flags []string
	if !p.AgingEnabled() {
		flags = append(flags, "time stands still")
	}
	if p.EndTriggered() {
		flags = append(flags, "something waits ahead")
	}
	if p.Dying() {
		flags = append(flags, "farewell")
	} else if p.Stage().Final() {
		flags = append(flags, "your steps grow heavy")
	}
	if len(flags) > 0 {
		text := " " + strings.Join(flags, " · ") + " "
		dst.DrawTextColored(dst.Width()-len([]rune(text)), 0, text, core.ColorWarn)
	}
}
