package world

import (
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/player"
)

// Cues are the one-shot events of a single tick.
type Cues struct {
	Jumped     bool // Left the ground with jump held
	Landed     bool // Touched down after being airborne
	Footstep   bool // Every second walk frame on the ground
	EndReached bool // The end sequence started
	Died       bool // The death sequence started
}

// Any reports whether any cue fired.
func (c Cues) Any() bool {
	return c.Jumped || c.Landed || c.Footstep || c.EndReached || c.Died
}

// cueTracker compares player flags across ticks.
type cueTracker struct {
	wasGrounded bool
	wasEnd      bool
	wasDying    bool
	footsteps   int
}

func newCueTracker(p *player.Player) cueTracker {
	return cueTracker{
		wasGrounded: p.Grounded(),
		wasEnd:      p.EndTriggered(),
		wasDying:    p.Dying(),
	}
}

func (t *cueTracker) observe(p *player.Player, in core.InputFrame, footstep bool) Cues {
	var c Cues

	grounded, dying := p.Grounded(), p.Dying()
	if !dying && !t.wasDying {
		c.Jumped = t.wasGrounded && !grounded && in.Has(core.ActionJump)
		c.Landed = !t.wasGrounded && grounded
	}
	if footstep {
		t.footsteps++
		c.Footstep = t.footsteps%2 == 1
	}
	c.EndReached = p.EndTriggered() && !t.wasEnd
	c.Died = dying && !t.wasDying

	t.wasGrounded = grounded
	t.wasEnd = p.EndTriggered()
	t.wasDying = dying
	return c
}
