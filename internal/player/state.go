package player

import "time"

// Facing is the horizontal direction the sprite looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// Frames is the frame counter shared by animated states.
type Frames struct {
	Frame      int           // Current sprite frame index
	LastUpdate time.Duration // Time of the last frame change
}

// State is the animation state: one of Idle, Walking, Jumping or Dying.
type State interface {
	Name() string
	animationState()
}

// Idle is the standing state.
type Idle struct{}

// Walking cycles through the walk frames while moving on the ground.
type Walking struct{ Frames }

// Jumping cycles through the walk frames while airborne.
type Jumping struct{ Frames }

// Dying plays the death frames once, holding the final frame.
type Dying struct{ Frames }

func (Idle) Name() string    { return "Idle" }
func (Walking) Name() string { return "Walking" }
func (Jumping) Name() string { return "Jumping" }
func (Dying) Name() string   { return "Dying" }

func (Idle) animationState()    {}
func (Walking) animationState() {}
func (Jumping) animationState() {}
func (Dying) animationState()   {}

// FrameOf returns the sprite frame of s. Idle always shows frame 0.
func FrameOf(s State) int {
	switch v := s.(type) {
	case Walking:
		return v.Frame
	case Jumping:
		return v.Frame
	case Dying:
		return v.Frame
	default:
		return 0
	}
}
