package game

// State is the per-frame animation state of the sphere group. Advance is a
// pure function of the previous state and the frame clock; nothing captures
// mutable references.
type State struct {
	Time      float64 // elapsed seconds, mirrored into the shader time uniform
	RotationY float32 // group rotation around the polar axis, radians
	Scale     float32 // group uniform scale
}

// AnimParams tunes the driver; values come from config.
type AnimParams struct {
	RotateSpeed   float32 // radians per second
	ExpandedScale float32 // scale target while the expanded view is active
	ScaleRate     float32 // exponential approach rate toward the target
}

// NewState returns the initial animation state.
func NewState() State {
	return State{Scale: 1}
}

// Advance produces the next frame's state: constant slow rotation and an
// exponential approach of the group scale toward the expanded or resting
// target, never snapping.
func Advance(s State, elapsed float64, dt float32, expanded bool, p AnimParams) State {
	s.Time = elapsed
	s.RotationY += p.RotateSpeed * dt

	target := float32(1)
	if expanded {
		target = p.ExpandedScale
	}
	k := p.ScaleRate * dt
	if k > 1 {
		k = 1
	}
	s.Scale += (target - s.Scale) * k
	return s
}
