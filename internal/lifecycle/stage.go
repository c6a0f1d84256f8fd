// Package lifecycle models the five life stages a player ages through, the
// movement attributes of each stage and the timer that advances them.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/vovakirdan/agewalk/internal/config"
)

// Stage is a life stage. Stages are ordered: a player only ever moves to the
// next one, and leaving Elder means death.
type Stage int

const (
	Baby Stage = iota
	Child
	Teenager
	Adult
	Elder

	stageCount
)

var stageNames = [stageCount]string{"Baby", "Child", "Teenager", "Adult", "Elder"}

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Next returns the following stage, or false from Elder.
func (s Stage) Next() (Stage, bool) {
	if s >= Elder {
		return Elder, false
	}
	return s + 1, true
}

// Final reports whether this is the last stage of a life.
func (s Stage) Final() bool {
	return s == Elder
}

// Attributes are the movement and presentation factors of one stage.
type Attributes struct {
	Name         string
	Duration     time.Duration
	Sight        float64
	JumpStrength float64
	Speed        float64
	JumpCooldown time.Duration
	BoxHeight    float64
}

// Table holds the attributes of every stage and the cumulative time at which
// each stage ends.
type Table struct {
	stages     [stageCount]Attributes
	thresholds [stageCount]time.Duration
}

// NewTable builds a stage table from configuration, listed in life order.
func NewTable(stages []config.StageConfig) (*Table, error) {
	if len(stages) != int(stageCount) {
		return nil, fmt.Errorf("lifecycle: expected %d stages, got %d", stageCount, len(stages))
	}

	t := &Table{}
	var total time.Duration
	for i, sc := range stages {
		if sc.Duration <= 0 {
			return nil, fmt.Errorf("lifecycle: stage %s has non-positive duration %s", Stage(i), sc.Duration)
		}
		total += sc.Duration
		t.stages[i] = Attributes{
			Name:         sc.Name,
			Duration:     sc.Duration,
			Sight:        sc.Sight,
			JumpStrength: sc.JumpStrength,
			Speed:        sc.Speed,
			JumpCooldown: sc.JumpCooldown,
			BoxHeight:    sc.BoxHeight,
		}
		t.thresholds[i] = total
	}
	return t, nil
}

// Attributes returns the attributes of stage s.
func (t *Table) Attributes(s Stage) Attributes {
	return t.stages[clampStage(s)]
}

// Threshold returns the life-relative time at which stage s ends.
func (t *Table) Threshold(s Stage) time.Duration {
	return t.thresholds[clampStage(s)]
}

// Lifetime returns the total length of a life.
func (t *Table) Lifetime() time.Duration {
	return t.thresholds[Elder]
}

func clampStage(s Stage) Stage {
	if s < Baby {
		return Baby
	}
	if s > Elder {
		return Elder
	}
	return s
}
