package lifecycle

import (
	"testing"
	"time"

	"github.com/vovakirdan/agewalk/internal/config"
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(config.DefaultGameConfig().Stages)
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}
	return table
}

func TestStageOrder(t *testing.T) {
	tests := []struct {
		stage Stage
		next  Stage
		ok    bool
	}{
		{Baby, Child, true},
		{Child, Teenager, true},
		{Teenager, Adult, true},
		{Adult, Elder, true},
		{Elder, Elder, false},
	}
	for _, tc := range tests {
		t.Run(tc.stage.String(), func(t *testing.T) {
			next, ok := tc.stage.Next()
			if next != tc.next || ok != tc.ok {
				t.Errorf("Next() = %s, %v, expected %s, %v", next, ok, tc.next, tc.ok)
			}
			if tc.stage.Final() != !tc.ok {
				t.Errorf("Final() = %v, expected %v", tc.stage.Final(), !tc.ok)
			}
		})
	}
}

func TestNewTableThresholds(t *testing.T) {
	table := defaultTable(t)

	want := []time.Duration{20 * time.Second, 50 * time.Second, 90 * time.Second, 150 * time.Second, 190 * time.Second}
	for i, w := range want {
		if got := table.Threshold(Stage(i)); got != w {
			t.Errorf("Threshold(%s) = %s, expected %s", Stage(i), got, w)
		}
	}
	if table.Lifetime() != 190*time.Second {
		t.Errorf("Lifetime() = %s, expected 190s", table.Lifetime())
	}
	if a := table.Attributes(Teenager); a.Speed != 1.1 || a.BoxHeight != 10 {
		t.Errorf("Attributes(Teenager) = %+v, expected speed 1.1 and box height 10", a)
	}
}

func TestNewTableRejectsBadInput(t *testing.T) {
	stages := config.DefaultGameConfig().Stages

	if _, err := NewTable(stages[:4]); err == nil {
		t.Error("NewTable() with four stages should fail")
	}

	bad := append([]config.StageConfig(nil), stages...)
	bad[2].Duration = 0
	if _, err := NewTable(bad); err == nil {
		t.Error("NewTable() with a zero duration should fail")
	}
}

func TestAgingWalksThroughLife(t *testing.T) {
	table := defaultTable(t)
	start := 5 * time.Second
	a := NewAging(table, start)

	if got := a.Update(start + 19*time.Second); got != Stay {
		t.Errorf("Update(19s) = %s, expected Stay", got)
	}

	checkpoints := []struct {
		at    time.Duration
		stage Stage
	}{
		{20 * time.Second, Child},
		{50 * time.Second, Teenager},
		{90 * time.Second, Adult},
		{150 * time.Second, Elder},
	}
	for _, cp := range checkpoints {
		if got := a.Update(start + cp.at); got != Advance {
			t.Fatalf("Update(%s) = %s, expected Advance", cp.at, got)
		}
		if a.Stage() != cp.stage {
			t.Errorf("Stage() = %s after %s, expected %s", a.Stage(), cp.at, cp.stage)
		}
	}

	if got := a.Update(start + 189*time.Second); got != Stay {
		t.Errorf("Update(189s) = %s, expected Stay", got)
	}
	if got := a.Update(start + 190*time.Second); got != Die {
		t.Errorf("Update(190s) = %s, expected Die", got)
	}
	if a.Stage() != Elder {
		t.Errorf("Stage() = %s after Die, expected Elder", a.Stage())
	}
}

func TestAgingAdvancesOneStagePerUpdate(t *testing.T) {
	a := NewAging(defaultTable(t), 0)

	// Far past the whole lifetime: each call still advances a single stage
	late := 10 * time.Minute
	for _, want := range []Stage{Child, Teenager, Adult, Elder} {
		if got := a.Update(late); got != Advance || a.Stage() != want {
			t.Fatalf("Update() = %s, stage %s, expected Advance to %s", got, a.Stage(), want)
		}
	}
	if got := a.Update(late); got != Die {
		t.Errorf("Update() = %s, expected Die", got)
	}
}

func TestAgingStop(t *testing.T) {
	a := NewAging(defaultTable(t), 0)

	if !a.Stop() {
		t.Error("first Stop() should report that aging was running")
	}
	if a.Stop() {
		t.Error("second Stop() should report that aging was already stopped")
	}
	if got := a.Update(time.Hour); got != Stay {
		t.Errorf("Update() while stopped = %s, expected Stay", got)
	}
	if a.Stage() != Baby {
		t.Errorf("Stage() = %s while stopped, expected Baby", a.Stage())
	}

	a.Reset(time.Hour)
	if !a.Enabled() {
		t.Error("Reset() should re-enable aging")
	}
	if got := a.Update(time.Hour + 20*time.Second); got != Advance {
		t.Errorf("Update() after Reset = %s, expected Advance", got)
	}
}

func TestAgingProgress(t *testing.T) {
	a := NewAging(defaultTable(t), 10*time.Second)

	tests := []struct {
		now  time.Duration
		want float64
	}{
		{0, 0},
		{10 * time.Second, 0},
		{105 * time.Second, 0.5},
		{400 * time.Second, 1},
	}
	for _, tc := range tests {
		if got := a.Progress(tc.now); got != tc.want {
			t.Errorf("Progress(%s) = %v, expected %v", tc.now, got, tc.want)
		}
	}
}
