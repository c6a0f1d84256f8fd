package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := Held(ActionLeft, ActionJump)

	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Error("Held() frame should report its actions")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) = true, expected false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should drop held actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should not share state with the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionJump)
	if !zero.Has(ActionJump) {
		t.Error("Set() on a zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.action), got, tt.expected)
		}
	}
}

func TestClockAdvance(t *testing.T) {
	var c Clock

	tick := c.Advance(16 * time.Millisecond)
	if tick.Now != 16*time.Millisecond || tick.Dt != 16*time.Millisecond {
		t.Errorf("Advance() = %+v, expected Now=Dt=16ms", tick)
	}

	tick = c.Advance(-5 * time.Millisecond)
	if tick.Dt != 0 || tick.Now != 16*time.Millisecond {
		t.Errorf("Advance(negative) = %+v, expected zero delta", tick)
	}

	c.Advance(time.Second)
	if c.Now() != time.Second+16*time.Millisecond {
		t.Errorf("Now() = %v, expected %v", c.Now(), time.Second+16*time.Millisecond)
	}

	if got := (Tick{Dt: 500 * time.Millisecond}).Seconds(); got != 0.5 {
		t.Errorf("Seconds() = %v, expected 0.5", got)
	}
}

func TestFixedStep(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-1, time.Second / 60},
	}

	for _, tt := range tests {
		if got := FixedStep(tt.rate); got != tt.expected {
			t.Errorf("FixedStep(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}
