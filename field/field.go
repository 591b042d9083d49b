// Package field generates the particle attribute buffers for the glyph sphere.
//
// Particles are drawn on a radius-jittered sphere by rejection sampling with a
// pole-biased density, then assigned a latitude-interpolated color, animation
// seeds, a size factor and a glyph index. The output is a set of parallel
// arrays sized exactly to the requested count; the whole field is regenerated,
// never patched, when parameters change.
package field

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrSampleBudget is returned when rejection sampling fails to accept the
// requested number of particles within the candidate budget.
var ErrSampleBudget = errors.New("field: sample budget exceeded")

// budgetFactor caps candidate draws at budgetFactor * Count. The analytic
// minimum acceptance probability is 0.25, so hitting the cap means the density
// function is mis-parameterized rather than unlucky.
const budgetFactor = 50

// RGB is a normalized color with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// Lerp interpolates per channel from c (t=0) toward other (t=1).
func (c RGB) Lerp(other RGB, t float32) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Params configures a field generation run.
type Params struct {
	Count      int     // number of particles, exact
	Radius     float32 // sphere radius
	Top        RGB     // color at the north pole (y = +R)
	Bottom     RGB     // color at the south pole (y = -R)
	GlyphCount int     // glyph index range [0, GlyphCount); 0 forces index 0
}

// Stats reports how a generation run went.
type Stats struct {
	Iterations int           // candidate draws consumed
	Duration   time.Duration // wall time of the run
}

// AcceptanceRate is the fraction of candidates that were accepted.
func (s Stats) AcceptanceRate(count int) float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(count) / float64(s.Iterations)
}

// Field holds the generated per-particle attribute buffers. All arrays are
// parallel; Positions/Colors/Seeds hold three values per particle, Scales and
// Glyphs one. Glyphs stores integral values as float32 to match the GPU
// attribute contract.
type Field struct {
	Count     int
	Radius    float32
	Positions []float32
	Colors    []float32
	Seeds     []float32
	Scales    []float32
	Glyphs    []float32
	Stats     Stats
}

// Generator produces particle fields from a seedable random source.
//
// Draw order per candidate is fixed for reproducibility: u, v, radial jitter,
// acceptance; then on acceptance three seeds and the glyph index. Two
// generators with equal params and equal rand seeds produce identical buffers.
type Generator struct {
	params Params
	rng    *rand.Rand

	// acceptProb maps pole density in [0,1] to an acceptance probability.
	// Replaceable in tests to exercise the budget guard.
	acceptProb func(density float64) float64
}

// NewGenerator creates a generator for the given params and random source.
func NewGenerator(params Params, rng *rand.Rand) *Generator {
	return &Generator{
		params:     params,
		rng:        rng,
		acceptProb: defaultAcceptProb,
	}
}

// defaultAcceptProb biases density toward the poles with a floor of 0.25:
// p = 0.25 + 0.75*density^2.5, density = |y|/R.
func defaultAcceptProb(density float64) float64 {
	return 0.25 + 0.75*math.Pow(density, 2.5)
}

// Generate runs rejection sampling until exactly params.Count particles are
// accepted. Returns ErrSampleBudget if the candidate budget is exhausted, in
// which case no partial field is returned.
func (g *Generator) Generate() (*Field, error) {
	p := g.params
	if p.Count <= 0 {
		return nil, fmt.Errorf("field: count must be positive, got %d", p.Count)
	}
	if p.Radius <= 0 {
		return nil, fmt.Errorf("field: radius must be positive, got %v", p.Radius)
	}

	f := &Field{
		Count:     p.Count,
		Radius:    p.Radius,
		Positions: make([]float32, p.Count*3),
		Colors:    make([]float32, p.Count*3),
		Seeds:     make([]float32, p.Count*3),
		Scales:    make([]float32, p.Count),
		Glyphs:    make([]float32, p.Count),
	}

	start := time.Now()
	budget := budgetFactor * p.Count
	accepted := 0
	iterations := 0

	radius := float64(p.Radius)

	for accepted < p.Count {
		if iterations >= budget {
			return nil, fmt.Errorf("field: %d accepted of %d after %d candidates: %w",
				accepted, p.Count, iterations, ErrSampleBudget)
		}
		iterations++

		// Uniform point on the unit sphere via inverse transform, y as the
		// polar axis, with +-5% radial jitter.
		u := g.rng.Float64()
		v := g.rng.Float64()
		theta := 2 * math.Pi * u
		phi := math.Acos(2*v - 1)
		r := radius * (0.95 + 0.1*g.rng.Float64())

		sinPhi := math.Sin(phi)
		x := r * sinPhi * math.Cos(theta)
		y := r * math.Cos(phi)
		z := r * sinPhi * math.Sin(theta)

		// Pole-biased thinning: 0 at the equator, 1 at the poles.
		density := math.Abs(y / radius)
		if density > 1 {
			density = 1
		}
		if g.rng.Float64() > g.acceptProb(density) {
			continue
		}

		i := accepted
		f.Positions[i*3] = float32(x)
		f.Positions[i*3+1] = float32(y)
		f.Positions[i*3+2] = float32(z)

		// Latitude color ramp: bottom at y=-R through top at y=+R. Radial
		// jitter can push |y| slightly past R; clamp to keep channels in [0,1].
		t := float32((y/radius + 1) / 2)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		c := p.Bottom.Lerp(p.Top, t)
		f.Colors[i*3] = c.R
		f.Colors[i*3+1] = c.G
		f.Colors[i*3+2] = c.B

		f.Seeds[i*3] = float32(g.rng.Float64())
		f.Seeds[i*3+1] = float32(g.rng.Float64())
		f.Seeds[i*3+2] = float32(g.rng.Float64())

		// Equatorial particles render larger than polar ones, with ~+-25%
		// multiplicative jitter.
		base := 2.5 - 1.5*density
		f.Scales[i] = float32(base * (0.8 + 0.5*g.rng.Float64()))

		if p.GlyphCount > 0 {
			f.Glyphs[i] = float32(g.rng.Intn(p.GlyphCount))
		}

		accepted++
	}

	f.Stats = Stats{Iterations: iterations, Duration: time.Since(start)}
	return f, nil
}
