package core

import "time"

// RuntimeConfig contains configuration passed to the front-ends at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Tick carries the timing of one simulation step: the elapsed time since the
// simulation started and the measured delta since the previous tick.
type Tick struct {
	Now time.Duration
	Dt  time.Duration
}

// Seconds returns the delta in seconds, the unit used for easing rates.
func (t Tick) Seconds() float64 {
	return t.Dt.Seconds()
}

// Clock produces Ticks from either measured wall-clock deltas or a fixed step.
type Clock struct {
	now time.Duration
}

// Advance moves the clock forward by dt and returns the resulting tick.
// Negative deltas are treated as zero.
func (c *Clock) Advance(dt time.Duration) Tick {
	if dt < 0 {
		dt = 0
	}
	c.now += dt
	return Tick{Now: c.now, Dt: dt}
}

// Now returns the current simulation time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// FixedStep returns the frame duration for a tick rate.
func FixedStep(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
