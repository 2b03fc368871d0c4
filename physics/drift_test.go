package physics

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestDriftCeilingSoftStart(t *testing.T) {
	tu := DefaultTuning()
	g := NewDriftGenerator(tu, rand.New(rand.NewSource(1)))

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"round start", 0, tu.DriftMaxStart * 0.25},
		{"half ramp", tu.SoftStart / 2, (tu.DriftMaxStart + tu.DriftMaxGrowth*Millis(tu.SoftStart/2)) * 0.625},
		{"ramp end", tu.SoftStart, tu.DriftMaxStart + tu.DriftMaxGrowth*Millis(tu.SoftStart)},
		{"late round", 60 * time.Second, tu.DriftMaxStart + tu.DriftMaxGrowth*60000},
		{"clock skew", -time.Second, tu.DriftMaxStart * 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Ceiling(tt.elapsed)
			if math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("Ceiling(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestDriftTargetFollowsTilt(t *testing.T) {
	tu := DefaultTuning()
	for _, angle := range []float64{0.1, -0.1} {
		g := NewDriftGenerator(tu, rand.New(rand.NewSource(3)))
		now := epoch.Add(10 * time.Second)
		s := &State{Angle: angle, StartTime: epoch, LastDriftChange: epoch}

		g.Update(s, 16, now)

		if !s.LastDriftChange.Equal(now) {
			t.Errorf("Expected change time updated to %v, got %v", now, s.LastDriftChange)
		}
		if math.Signbit(s.DriftTarget) != math.Signbit(angle) {
			t.Errorf("Expected target sign to follow tilt %v, got %v", angle, s.DriftTarget)
		}
		ceiling := g.Ceiling(10 * time.Second)
		mag := math.Abs(s.DriftTarget)
		if mag < 0.65*ceiling || mag > ceiling {
			t.Errorf("Expected magnitude in [%v, %v], got %v", 0.65*ceiling, ceiling, mag)
		}
	}
}

func TestDriftKeepsTargetBetweenChanges(t *testing.T) {
	tu := DefaultTuning()
	g := NewDriftGenerator(tu, rand.New(rand.NewSource(3)))
	s := &State{DriftTarget: 0.0001, StartTime: epoch, LastDriftChange: epoch}

	// Exactly at the interval is not yet a change
	g.Update(s, 16, epoch.Add(tu.DriftChangeEvery))
	if s.DriftTarget != 0.0001 {
		t.Errorf("Expected target unchanged at the interval boundary, got %v", s.DriftTarget)
	}
	want := 0.0001 * tu.DriftEase * 16
	if math.Abs(s.Drift-want) > 1e-18 {
		t.Errorf("Expected eased drift %v, got %v", want, s.Drift)
	}
}

func TestDriftEaseConverges(t *testing.T) {
	tu := DefaultTuning()
	g := NewDriftGenerator(tu, rand.New(rand.NewSource(3)))
	s := &State{DriftTarget: 0.0002, StartTime: epoch, LastDriftChange: epoch}

	now := epoch
	for i := 0; i < 200; i++ {
		now = now.Add(frame)
		s.LastDriftChange = now
		g.Update(s, 16, now)
	}
	if math.Abs(s.Drift-0.0002) > 1e-9 {
		t.Errorf("Expected drift to converge to its target, got %v", s.Drift)
	}
}
