package world

import (
	"math"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
)

// Camera eases toward a focus point plus a vertical offset. The offset itself
// eases toward a target that is nonzero only during the end sequence.
type Camera struct {
	cfg     config.CameraConfig
	pos     core.Vec
	offsetY float64
}

// NewCamera creates a camera already centered on start.
func NewCamera(cfg config.CameraConfig, start core.Vec) Camera {
	return Camera{cfg: cfg, pos: start}
}

// Follow moves the camera one tick toward focus.
func (c *Camera) Follow(focus core.Vec, endTriggered bool) {
	target := 0.0
	if endTriggered {
		target = c.cfg.EndOffsetY
	}
	c.offsetY = core.Smooth(c.offsetY, target, c.cfg.OffsetSpeed)
	if math.Abs(target-c.offsetY) < c.cfg.OffsetSnap {
		c.offsetY = target
	}

	c.pos.X = core.Smooth(c.pos.X, focus.X, c.cfg.Speed)
	c.pos.Y = core.Smooth(c.pos.Y, focus.Y+c.offsetY, c.cfg.Speed)
}

// Position returns the world point at the center of the view.
func (c Camera) Position() core.Vec { return c.pos }

// OffsetY returns the current vertical offset.
func (c Camera) OffsetY() float64 { return c.offsetY }
