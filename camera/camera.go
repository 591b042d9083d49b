// Package camera provides an orbit camera for framing the glyph sphere.
package camera

import "math"

// Orbit positions the eye on a sphere around the origin, parameterized by
// azimuth/elevation angles and distance. The particle sphere sits at the
// origin, so the target never moves.
type Orbit struct {
	// Azimuth is the horizontal angle in radians (free-spinning).
	Azimuth float32
	// Elevation is the vertical angle in radians, clamped short of the poles.
	Elevation float32
	// Distance from the origin, clamped to [MinDistance, MaxDistance].
	Distance float32

	MinDistance, MaxDistance float32
}

// maxElevation keeps the eye off the poles so the up vector stays valid.
const maxElevation = math.Pi/2 - 0.05

// Default framing angles.
const (
	defaultAzimuth   = 0.6
	defaultElevation = 0.25
)

// New creates an orbit camera at the given distance with a slight downward tilt.
func New(distance float32) *Orbit {
	o := &Orbit{
		Azimuth:     defaultAzimuth,
		Elevation:   defaultElevation,
		Distance:    distance,
		MinDistance: distance * 0.4,
		MaxDistance: distance * 3,
	}
	o.clamp()
	return o
}

// Position returns the eye position in world coordinates.
func (o *Orbit) Position() (x, y, z float32) {
	cosEl := float32(math.Cos(float64(o.Elevation)))
	x = o.Distance * cosEl * float32(math.Cos(float64(o.Azimuth)))
	y = o.Distance * float32(math.Sin(float64(o.Elevation)))
	z = o.Distance * cosEl * float32(math.Sin(float64(o.Azimuth)))
	return x, y, z
}

// Rotate offsets the azimuth and elevation, clamping elevation.
func (o *Orbit) Rotate(dAzimuth, dElevation float32) {
	o.Azimuth += dAzimuth
	o.Elevation += dElevation
	o.clamp()
}

// Zoom scales the distance by the given factor, clamped to the range.
func (o *Orbit) Zoom(factor float32) {
	o.Distance *= factor
	o.clamp()
}

// Reset returns the camera to its initial framing at the given distance.
func (o *Orbit) Reset(distance float32) {
	o.Azimuth = defaultAzimuth
	o.Elevation = defaultElevation
	o.Distance = distance
	o.clamp()
}

func (o *Orbit) clamp() {
	if o.Elevation > maxElevation {
		o.Elevation = maxElevation
	}
	if o.Elevation < -maxElevation {
		o.Elevation = -maxElevation
	}
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}
