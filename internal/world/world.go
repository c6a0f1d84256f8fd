// Package world ties the map, the player and the camera together and runs one
// simulation tick at a time. It also derives the one-shot cues the front-end
// turns into sounds and messages.
package world

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/player"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// World is the simulation root. It owns the map while playing.
type World struct {
	cfg    config.GameConfig
	m      *worldmap.Map
	player *player.Player
	camera Camera
	cues   cueTracker
	clock  core.Clock
	logger *log.Logger
}

// New creates a world over m with the player at the resolved spawn point.
// A nil logger uses the default logger.
func New(cfg config.GameConfig, m *worldmap.Map, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.Default()
	}

	spawn := ResolveSpawn(m, cfg.Grid)
	p, err := player.New(cfg, spawn, logger)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	logger.Debug("player spawned", "x", spawn.X, "y", spawn.Y)

	w := &World{
		cfg:    cfg,
		m:      m,
		player: p,
		logger: logger,
	}
	w.camera = NewCamera(cfg.Camera, w.focus())
	w.cues = newCueTracker(p)
	return w, nil
}

// ResolveSpawn returns the body position of a new player: the Start tile
// scaled by the tile size, or the center of the base viewport without one.
func ResolveSpawn(m *worldmap.Map, grid config.GridConfig) core.Vec {
	if c, ok := m.Find(tile.Start); ok {
		ts := float64(grid.TileSize)
		return core.V(float64(c.X)*ts, float64(c.Y)*ts)
	}
	return core.V(grid.BaseWidth()/2, grid.BaseHeight()/2)
}

// Step advances the simulation by the measured frame delta dt using the held
// input and returns the cues raised on this tick.
func (w *World) Step(in core.InputFrame, dt time.Duration) Cues {
	tick := w.clock.Advance(dt)
	footstep := w.player.Update(in, tick, w.m)
	w.camera.Follow(w.focus(), w.player.EndTriggered())
	return w.cues.observe(w.player, in, footstep)
}

// Now returns the simulation time.
func (w *World) Now() time.Duration { return w.clock.Now() }

// Restart respawns the player immediately.
func (w *World) Restart() {
	w.player.Respawn(w.clock.Now())
	w.cues = newCueTracker(w.player)
}

// Player returns the simulated player.
func (w *World) Player() *player.Player { return w.player }

// Map returns the world map.
func (w *World) Map() *worldmap.Map { return w.m }

// Camera returns the camera.
func (w *World) Camera() Camera { return w.camera }

// Config returns the game configuration.
func (w *World) Config() config.GameConfig { return w.cfg }

// FadeAlpha returns the opacity of the death fade overlay, 0 to 255.
func (w *World) FadeAlpha() uint8 {
	return uint8(core.SmoothStep(w.player.DeathFraction()) * 255)
}

// focus is the point the camera follows: the center of the player's body.
func (w *World) focus() core.Vec {
	x, y := w.player.Body().Center()
	return core.V(x, y)
}
