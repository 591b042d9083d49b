package field

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func testParams() Params {
	return Params{
		Count:      1000,
		Radius:     2.5,
		Top:        RGB{R: 1, G: 0, B: 0},
		Bottom:     RGB{R: 0, G: 0, B: 1},
		GlyphCount: 2,
	}
}

func TestGenerateExactCount(t *testing.T) {
	g := NewGenerator(testParams(), rand.New(rand.NewSource(1)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if f.Count != 1000 {
		t.Errorf("Count = %d, want 1000", f.Count)
	}
	if len(f.Positions) != 3000 || len(f.Colors) != 3000 || len(f.Seeds) != 3000 {
		t.Errorf("triple buffers sized %d/%d/%d, want 3000 each",
			len(f.Positions), len(f.Colors), len(f.Seeds))
	}
	if len(f.Scales) != 1000 || len(f.Glyphs) != 1000 {
		t.Errorf("scalar buffers sized %d/%d, want 1000 each", len(f.Scales), len(f.Glyphs))
	}
	if f.Stats.Iterations < f.Count {
		t.Errorf("Iterations = %d, want >= %d", f.Stats.Iterations, f.Count)
	}
}

func TestGenerateRadialBounds(t *testing.T) {
	p := testParams()
	g := NewGenerator(p, rand.New(rand.NewSource(2)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := float64(p.Radius)
	for i := 0; i < f.Count; i++ {
		x := float64(f.Positions[i*3])
		y := float64(f.Positions[i*3+1])
		z := float64(f.Positions[i*3+2])
		d := math.Sqrt(x*x + y*y + z*z)
		if d < 0.95*r-1e-6 || d > 1.05*r+1e-6 {
			t.Fatalf("particle %d at radial distance %v, want [%v, %v]", i, d, 0.95*r, 1.05*r)
		}
	}
}

func TestGenerateColorRamp(t *testing.T) {
	p := testParams()
	g := NewGenerator(p, rand.New(rand.NewSource(3)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := float64(p.Radius)
	for i := 0; i < f.Count; i++ {
		y := float64(f.Positions[i*3+1])
		red := f.Colors[i*3]
		green := f.Colors[i*3+1]
		blue := f.Colors[i*3+2]

		if red < 0 || red > 1 || blue < 0 || blue > 1 {
			t.Fatalf("particle %d color out of range: (%v,%v,%v)", i, red, green, blue)
		}
		if green != 0 {
			t.Fatalf("particle %d green = %v, want 0 for red/blue endpoints", i, green)
		}

		// Hemisphere dominance: red above the equator, blue below.
		if y > 0.1*r && red <= blue {
			t.Fatalf("particle %d at y=%v: red %v not dominant over blue %v", i, y, red, blue)
		}
		if y < -0.1*r && blue <= red {
			t.Fatalf("particle %d at y=%v: blue %v not dominant over red %v", i, y, blue, red)
		}

		// Monotonic ramp: red + blue is conserved by the lerp.
		if math.Abs(float64(red+blue)-1) > 1e-5 {
			t.Fatalf("particle %d: red+blue = %v, want 1", i, red+blue)
		}
	}
}

func TestGenerateGlyphIndexBounds(t *testing.T) {
	p := testParams()
	g := NewGenerator(p, rand.New(rand.NewSource(4)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, idx := range f.Glyphs {
		if idx != float32(math.Trunc(float64(idx))) {
			t.Fatalf("glyph index %d = %v, want integral", i, idx)
		}
		if idx < 0 || idx > 1 {
			t.Fatalf("glyph index %d = %v, want in [0, 2)", i, idx)
		}
	}
}

func TestGenerateZeroGlyphs(t *testing.T) {
	p := testParams()
	p.GlyphCount = 0
	g := NewGenerator(p, rand.New(rand.NewSource(5)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, idx := range f.Glyphs {
		if idx != 0 {
			t.Fatalf("glyph index %d = %v, want 0 with empty glyph set", i, idx)
		}
	}
}

func TestGenerateSeedsAndScales(t *testing.T) {
	g := NewGenerator(testParams(), rand.New(rand.NewSource(6)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, s := range f.Seeds {
		if s < 0 || s >= 1 {
			t.Fatalf("seed %d = %v, want [0,1)", i, s)
		}
	}
	// Scale bounds: base in [1.0, 2.5], jitter in [0.8, 1.3).
	for i, s := range f.Scales {
		if s < 0.8 || s > 2.5*1.3 {
			t.Fatalf("scale %d = %v, want [0.8, 3.25]", i, s)
		}
	}
}

func TestGeneratePoleBias(t *testing.T) {
	// The acceptance floor is 0.25 at the equator and 1.0 at the poles, so
	// mean |y|/R of accepted samples must sit well above the uniform-sphere
	// expectation of 0.5.
	p := testParams()
	p.Count = 4000
	g := NewGenerator(p, rand.New(rand.NewSource(7)))
	f, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	density := make([]float64, f.Count)
	for i := 0; i < f.Count; i++ {
		density[i] = math.Abs(float64(f.Positions[i*3+1])) / float64(p.Radius)
	}
	mean := stat.Mean(density, nil)
	if mean < 0.55 {
		t.Errorf("mean pole density = %v, want > 0.55 (pole bias missing)", mean)
	}

	rate := f.Stats.AcceptanceRate(f.Count)
	if rate < 0.25 || rate > 1 {
		t.Errorf("acceptance rate = %v, want within [0.25, 1]", rate)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := testParams()
	f1, err := NewGenerator(p, rand.New(rand.NewSource(42))).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	f2, err := NewGenerator(p, rand.New(rand.NewSource(42))).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := range f1.Positions {
		if f1.Positions[i] != f2.Positions[i] {
			t.Fatalf("position %d differs across identically seeded runs", i)
		}
	}
	for i := range f1.Glyphs {
		if f1.Glyphs[i] != f2.Glyphs[i] || f1.Scales[i] != f2.Scales[i] {
			t.Fatalf("particle %d attributes differ across identically seeded runs", i)
		}
	}
}

func TestGenerateBudgetExceeded(t *testing.T) {
	g := NewGenerator(testParams(), rand.New(rand.NewSource(8)))
	g.acceptProb = func(float64) float64 { return 0 }

	f, err := g.Generate()
	if !errors.Is(err, ErrSampleBudget) {
		t.Fatalf("err = %v, want ErrSampleBudget", err)
	}
	if f != nil {
		t.Fatal("partial field returned alongside budget error")
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	if _, err := NewGenerator(Params{Count: 0, Radius: 1}, rand.New(rand.NewSource(1))).Generate(); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := NewGenerator(Params{Count: 10, Radius: 0}, rand.New(rand.NewSource(1))).Generate(); err == nil {
		t.Error("zero radius accepted")
	}
}
