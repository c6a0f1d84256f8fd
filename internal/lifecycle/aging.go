package lifecycle

import (
	"math"
	"time"
)

// Transition is the outcome of one aging check.
type Transition int

const (
	Stay    Transition = iota // Still within the current stage
	Advance                   // Moved to the next stage
	Die                       // Elder time ran out
)

// String returns a human-readable name for the transition.
func (t Transition) String() string {
	switch t {
	case Stay:
		return "Stay"
	case Advance:
		return "Advance"
	case Die:
		return "Die"
	default:
		return "Unknown"
	}
}

// Aging tracks the progress of a single life through the stage table.
// Elapsed time is measured from the start of the current life.
type Aging struct {
	table   *Table
	stage   Stage
	start   time.Duration
	enabled bool
}

// NewAging starts a life at time now.
func NewAging(table *Table, now time.Duration) *Aging {
	a := &Aging{table: table}
	a.Reset(now)
	return a
}

// Reset starts a new life at time now.
func (a *Aging) Reset(now time.Duration) {
	a.stage = Baby
	a.start = now
	a.enabled = true
}

// Stage returns the current stage.
func (a *Aging) Stage() Stage {
	return a.stage
}

// Attributes returns the attributes of the current stage.
func (a *Aging) Attributes() Attributes {
	return a.table.Attributes(a.stage)
}

// Table returns the stage table.
func (a *Aging) Table() *Table {
	return a.table
}

// Enabled reports whether aging is still running for this life.
func (a *Aging) Enabled() bool {
	return a.enabled
}

// Stop halts aging until the next Reset. Returns true if aging was running.
func (a *Aging) Stop() bool {
	was := a.enabled
	a.enabled = false
	return was
}

// Elapsed returns the time since the life started.
func (a *Aging) Elapsed(now time.Duration) time.Duration {
	if now < a.start {
		return 0
	}
	return now - a.start
}

// Progress returns how far through the whole lifetime the life is, 0.0 to 1.0.
func (a *Aging) Progress(now time.Duration) float64 {
	lifetime := a.table.Lifetime()
	if lifetime <= 0 {
		return 1
	}
	p := float64(a.Elapsed(now)) / float64(lifetime)
	return math.Max(0, math.Min(1, p))
}

// Update checks the current stage's threshold at time now. At most one stage
// is advanced per call. While aging is stopped it always returns Stay.
func (a *Aging) Update(now time.Duration) Transition {
	if !a.enabled {
		return Stay
	}
	if a.Elapsed(now) < a.table.Threshold(a.stage) {
		return Stay
	}
	next, ok := a.stage.Next()
	if !ok {
		return Die
	}
	a.stage = next
	return Advance
}
