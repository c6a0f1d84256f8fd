// Package player implements the player controller: input to velocity, gravity,
// axis-separated collision against the world map, the life-cycle driven
// animation state machine, special zones and respawn.
//
// The controller reads the map but never mutates it. All time values are
// durations since the simulation started.
package player

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/lifecycle"
	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

// Player is the single simulated character.
type Player struct {
	physics  config.PhysicsConfig
	body     config.PlayerConfig
	anim     config.AnimationConfig
	zones    config.ZoneConfig
	sightCfg config.SightConfig
	tileSize int
	logger   *log.Logger

	aging *lifecycle.Aging

	pos    core.Vec // Top-left of the body rectangle
	vel    core.Vec
	height float64 // Collision box height; trails the stage height while blocked
	facing Facing
	state  State

	grounded     bool
	endTriggered bool
	dying        bool
	deathStart   time.Duration

	spawn    core.Vec
	lastJump time.Duration
	jumped   bool // Whether lastJump is set in this life

	sight       float64
	sightTarget float64

	now time.Duration // Time of the latest tick
}

// New creates a player whose body starts at spawn, at simulation time zero.
// A nil logger uses the default logger.
func New(cfg config.GameConfig, spawn core.Vec, logger *log.Logger) (*Player, error) {
	table, err := lifecycle.NewTable(cfg.Stages)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	p := &Player{
		physics:  cfg.Physics,
		body:     cfg.Player,
		anim:     cfg.Animation,
		zones:    cfg.Zones,
		sightCfg: cfg.Sight,
		tileSize: cfg.Grid.TileSize,
		logger:   logger,
		spawn:    spawn,
		aging:    lifecycle.NewAging(table, 0),
	}
	p.reset(0)
	return p, nil
}

// Respawn starts a new life at the spawn position.
func (p *Player) Respawn(now time.Duration) {
	p.reset(now)
	p.logger.Info("respawned", "x", p.spawn.X, "y", p.spawn.Y)
}

func (p *Player) reset(now time.Duration) {
	p.aging.Reset(now)
	p.pos = p.spawn
	p.vel = core.Vec{}
	p.height = p.aging.Attributes().BoxHeight
	p.facing = FacingRight
	p.state = Idle{}
	p.grounded = true
	p.endTriggered = false
	p.dying = false
	p.deathStart = 0
	p.lastJump = 0
	p.jumped = false
	p.sight = p.aging.Attributes().Sight
	p.sightTarget = p.sight
	p.now = now
}

// Update advances the player by one tick and reports whether a footstep frame
// was reached on this tick.
func (p *Player) Update(in core.InputFrame, tick core.Tick, m *worldmap.Map) bool {
	now := tick.Now
	p.now = now

	if p.dying {
		p.updateDeath(now)
		return false
	}

	if p.updateAging(now) {
		return false
	}
	p.fitHeight(m)

	p.applyInput(in, now)

	start := p.pos
	p.integrate(m)
	moved := p.pos != start

	p.checkZones(m)
	footstep := p.animate(moved, now)
	p.easeSight(tick.Seconds())
	return footstep
}

// updateDeath advances the death animation and respawns once it has played.
func (p *Player) updateDeath(now time.Duration) {
	if d, ok := p.state.(Dying); ok {
		if d.Frame < p.anim.DeathFinalFrame && now-d.LastUpdate >= p.anim.DeathFrameDuration {
			d.Frame++
			d.LastUpdate = now
			p.state = d
		}
	}
	if now-p.deathStart >= p.anim.DeathDuration {
		p.Respawn(now)
	}
}

// updateAging applies a stage transition. Returns true when the player has just
// started dying.
func (p *Player) updateAging(now time.Duration) bool {
	switch p.aging.Update(now) {
	case lifecycle.Advance:
		attrs := p.aging.Attributes()
		if !p.endTriggered {
			p.sightTarget = attrs.Sight
		}
		p.logger.Info("aged", "stage", p.aging.Stage())
	case lifecycle.Die:
		p.dying = true
		p.deathStart = now
		p.vel = core.Vec{}
		p.state = Dying{Frames{Frame: 0, LastUpdate: now}}
		p.logger.Info("died of old age", "stage", p.aging.Stage())
		return true
	}
	return false
}

// fitHeight moves the collision box toward the stage height, keeping the feet
// where they are. Growth waits while the taller box would overlap a solid tile.
func (p *Player) fitHeight(m *worldmap.Map) {
	target := p.aging.Attributes().BoxHeight
	if p.height == target {
		return
	}
	dy := target - p.height
	if dy > 0 {
		box := p.box()
		headroom := core.NewRect(box.X, box.Y-dy, box.W, dy)
		if _, blocked := Collides(m, headroom, p.tileSize, p.zones.EndHitboxTiles); blocked {
			return
		}
	}
	p.pos.Y -= dy
	p.height = target
}

func (p *Player) applyInput(in core.InputFrame, now time.Duration) {
	attrs := p.aging.Attributes()
	speed := p.physics.BaseSpeed * attrs.Speed

	switch {
	case in.Has(core.ActionRight):
		p.vel.X = speed
		p.facing = FacingRight
	case in.Has(core.ActionLeft):
		p.vel.X = -speed
		p.facing = FacingLeft
	default:
		p.vel.X = 0
	}

	if in.Has(core.ActionJump) && p.canJump(now) {
		p.vel.Y = -p.physics.JumpSpeed * attrs.JumpStrength
		p.grounded = false
		p.lastJump = now
		p.jumped = true
		p.state = Jumping{Frames{Frame: p.anim.WalkStart, LastUpdate: now}}
	}
}

func (p *Player) canJump(now time.Duration) bool {
	if !p.grounded {
		return false
	}
	return !p.jumped || now-p.lastJump > p.aging.Attributes().JumpCooldown
}

// integrate applies gravity and moves one axis at a time, resolving
// collisions after each.
func (p *Player) integrate(m *worldmap.Map) {
	p.vel.Y += p.physics.Gravity
	if p.physics.MaxFallSpeed > 0 && p.vel.Y > p.physics.MaxFallSpeed {
		p.vel.Y = p.physics.MaxFallSpeed
	}

	// Horizontal
	p.pos.X += p.vel.X
	if p.vel.X != 0 {
		if hit, ok := p.collides(m); ok {
			box := p.box()
			if p.vel.X > 0 {
				p.pos.X = hit.X - box.W - p.body.BoxOffsetX
			} else {
				p.pos.X = hit.Right() - p.body.BoxOffsetX
			}
			p.vel.X = 0
		}
	}

	// Vertical
	p.pos.Y += p.vel.Y
	hit, ok := p.collides(m)
	if !ok {
		p.grounded = false
		return
	}
	box := p.box()
	if p.vel.Y >= 0 {
		p.pos.Y = hit.Y - box.H - p.body.BoxOffsetY
		p.grounded = true
	} else {
		p.pos.Y = hit.Bottom() - p.body.BoxOffsetY
	}
	p.vel.Y = 0
}

func (p *Player) collides(m *worldmap.Map) (core.Rect, bool) {
	return Collides(m, p.box(), p.tileSize, p.zones.EndHitboxTiles)
}

// checkZones latches the stop-aging and end-sequence flags.
func (p *Player) checkZones(m *worldmap.Map) {
	box := p.box()
	cx, cy := box.Center()
	reach := p.zones.EndProximityTiles * float64(p.tileSize)

	for c, k := range m.All() {
		switch k {
		case tile.StopAging:
			if !p.aging.Enabled() {
				continue
			}
			if box.Intersects(worldmap.CellRect(c, p.tileSize)) {
				p.aging.Stop()
				p.logger.Info("aging stopped", "cell", c, "stage", p.aging.Stage())
			}
		case tile.End:
			if p.endTriggered {
				continue
			}
			ex, ey := worldmap.CellRect(c, p.tileSize).Center()
			if math.Abs(cx-ex) <= reach && math.Abs(cy-ey) <= reach {
				p.endTriggered = true
				p.sightTarget = p.sightCfg.EndScene
				p.logger.Info("end sequence triggered", "cell", c)
			}
		}
	}
}

// animate updates the animation state and reports a footstep: a walk frame
// change while grounded and moving.
func (p *Player) animate(moved bool, now time.Duration) bool {
	if !moved {
		if p.grounded {
			p.state = Idle{}
		}
		return false
	}

	switch s := p.state.(type) {
	case Idle:
		p.state = Walking{Frames{Frame: p.anim.WalkStart, LastUpdate: now}}
	case Walking:
		advanced := p.advance(&s.Frames, now)
		p.state = s
		return advanced && p.grounded
	case Jumping:
		advanced := p.advance(&s.Frames, now)
		if p.grounded {
			p.state = Walking(s)
		} else {
			p.state = s
		}
		return advanced && p.grounded
	}
	return false
}

// advance steps the walk cycle when a frame's time has elapsed.
func (p *Player) advance(f *Frames, now time.Duration) bool {
	if now-f.LastUpdate < p.anim.FrameDuration {
		return false
	}
	f.Frame++
	if f.Frame > p.anim.WalkEnd {
		f.Frame = p.anim.WalkStart
	}
	f.LastUpdate = now
	return true
}

// box returns the collision box for the current position and stage.
func (p *Player) box() core.Rect {
	return core.NewRect(
		p.pos.X+p.body.BoxOffsetX,
		p.pos.Y+p.body.BoxOffsetY,
		p.body.BoxWidth,
		p.height,
	)
}

// Position returns the top-left corner of the body.
func (p *Player) Position() core.Vec { return p.pos }

// Body returns the sprite-sized body rectangle.
func (p *Player) Body() core.Rect {
	return core.NewRect(p.pos.X, p.pos.Y, p.body.BodySize, p.body.BodySize)
}

// Box returns the collision box.
func (p *Player) Box() core.Rect { return p.box() }

// Spawn returns the body position used on respawn.
func (p *Player) Spawn() core.Vec { return p.spawn }

// Velocity returns the velocity in world units per tick.
func (p *Player) Velocity() core.Vec { return p.vel }

// Facing returns the facing direction.
func (p *Player) Facing() Facing { return p.facing }

// State returns the animation state.
func (p *Player) State() State { return p.state }

// Stage returns the current life stage.
func (p *Player) Stage() lifecycle.Stage { return p.aging.Stage() }

// Aging returns the life-cycle timer.
func (p *Player) Aging() *lifecycle.Aging { return p.aging }

// Grounded reports whether the last vertical move landed on a surface.
func (p *Player) Grounded() bool { return p.grounded }

// Dying reports whether the death sequence is playing.
func (p *Player) Dying() bool { return p.dying }

// AgingEnabled reports whether aging still runs in this life.
func (p *Player) AgingEnabled() bool { return p.aging.Enabled() }

// EndTriggered reports whether the end sequence has started.
func (p *Player) EndTriggered() bool { return p.endTriggered }

// DeathFraction returns elapsed death time over the death duration, 0.0 to 1.0.
// It is 0 while alive.
func (p *Player) DeathFraction() float64 {
	if !p.dying || p.anim.DeathDuration <= 0 {
		return 0
	}
	return core.ClampF(float64(p.now-p.deathStart)/float64(p.anim.DeathDuration), 0, 1)
}
