package game

import (
	"math"
	"testing"
)

var testAnim = AnimParams{
	RotateSpeed:   0.12,
	ExpandedScale: 0.8,
	ScaleRate:     6.0,
}

func TestAdvanceRotation(t *testing.T) {
	s := NewState()
	dt := float32(1.0 / 60)
	for i := 0; i < 60; i++ {
		s = Advance(s, float64(i)*float64(dt), dt, false, testAnim)
	}

	// One second of rotation at RotateSpeed.
	if math.Abs(float64(s.RotationY)-0.12) > 1e-4 {
		t.Errorf("RotationY after 1s = %v, want 0.12", s.RotationY)
	}
}

func TestAdvanceTimePassthrough(t *testing.T) {
	s := Advance(NewState(), 3.25, 0.016, false, testAnim)
	if s.Time != 3.25 {
		t.Errorf("Time = %v, want 3.25", s.Time)
	}
}

func TestAdvanceScaleConverges(t *testing.T) {
	s := NewState()
	dt := float32(1.0 / 60)

	// Toward the expanded target: monotonically decreasing, no overshoot.
	prev := s.Scale
	for i := 0; i < 300; i++ {
		s = Advance(s, 0, dt, true, testAnim)
		if s.Scale > prev+1e-6 {
			t.Fatalf("scale increased toward a lower target: %v -> %v", prev, s.Scale)
		}
		if s.Scale < testAnim.ExpandedScale-1e-6 {
			t.Fatalf("scale overshot target: %v < %v", s.Scale, testAnim.ExpandedScale)
		}
		prev = s.Scale
	}
	if math.Abs(float64(s.Scale-testAnim.ExpandedScale)) > 1e-3 {
		t.Errorf("scale after 5s expanded = %v, want ~%v", s.Scale, testAnim.ExpandedScale)
	}

	// And back toward resting scale.
	for i := 0; i < 300; i++ {
		s = Advance(s, 0, dt, false, testAnim)
	}
	if math.Abs(float64(s.Scale-1)) > 1e-3 {
		t.Errorf("scale after 5s collapsed = %v, want ~1", s.Scale)
	}
}

func TestAdvanceNeverSnaps(t *testing.T) {
	s := NewState()
	s = Advance(s, 0, 1.0/60, true, testAnim)

	// A single frame must move only a fraction of the way to the target.
	if s.Scale <= testAnim.ExpandedScale || s.Scale >= 1 {
		t.Errorf("first frame scale = %v, want strictly between %v and 1",
			s.Scale, testAnim.ExpandedScale)
	}
}

func TestAdvanceLargeDeltaClamped(t *testing.T) {
	// A stalled frame (huge dt) may land on the target but must not overshoot.
	s := Advance(NewState(), 0, 10, true, testAnim)
	if s.Scale < testAnim.ExpandedScale-1e-6 {
		t.Errorf("scale = %v overshot target %v", s.Scale, testAnim.ExpandedScale)
	}
}
