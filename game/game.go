// Package game wires the glyph set, atlas, particle field and sphere renderer
// to the raylib frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/atlas"
	"github.com/icedtinat/lumina/camera"
	"github.com/icedtinat/lumina/config"
	"github.com/icedtinat/lumina/field"
	"github.com/icedtinat/lumina/glyph"
	"github.com/icedtinat/lumina/renderer"
	"github.com/icedtinat/lumina/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	// OnInteract fires on a double-click landing on the sphere. Nil installs
	// the default action (toggle the expanded view).
	OnInteract func()
}

// fieldKey identifies one generated field; comparing keys is the cache probe
// deciding whether the buffers must be rebuilt.
type fieldKey struct {
	count  int
	radius float32
	top    field.RGB
	bottom field.RGB
	glyphs string
}

// Game holds the complete visualizer state.
type Game struct {
	opts Options
	rng  *rand.Rand

	glyphs []rune
	font   rl.Font
	ownFont bool

	atlas  atlas.Atlas
	sphere *renderer.Sphere
	cam    *camera.Orbit

	anim       State
	animParams AnimParams
	expanded   bool
	paused     bool
	showHUD    bool

	// Mutable generation parameters; diverging from key triggers regeneration.
	count  int
	radius float32
	key    fieldKey

	genRecord telemetry.GenRecord

	perf       *telemetry.PerfCollector
	output     *telemetry.OutputManager
	lastLog    float64
	onInteract func()
	lastClick  float64

	screenW, screenH float32
	pixelRatio       float32
}

// New creates a game instance. The raylib window must already be initialized.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		glyphs:  glyph.Extract(cfg.Sphere.Text),
		count:   cfg.Derived.Count,
		radius:  cfg.Derived.Radius32,
		anim:    NewState(),
		showHUD: true,
		perf:    telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		screenW: cfg.Derived.ScreenW32,
		screenH: cfg.Derived.ScreenH32,
		animParams: AnimParams{
			RotateSpeed:   float32(cfg.Render.RotateSpeed),
			ExpandedScale: float32(cfg.Render.ExpandedScale),
			ScaleRate:     float32(cfg.Render.ScaleRate),
		},
	}

	dpi := rl.GetWindowScaleDPI()
	g.pixelRatio = dpi.X
	if g.pixelRatio < 1 {
		g.pixelRatio = 1
	}

	if cfg.Atlas.FontPath != "" {
		g.font = rl.LoadFontEx(cfg.Atlas.FontPath, 256, g.glyphs)
		g.ownFont = true
	} else {
		g.font = rl.GetFontDefault()
	}

	g.atlas = atlas.Build(g.glyphs, atlas.Options{
		Size: int32(cfg.Atlas.Size),
		Font: g.font,
	})

	f, err := g.generate()
	if err != nil {
		return nil, err
	}

	g.sphere, err = renderer.NewSphere(f, g.atlas,
		float32(cfg.Render.BasePointSize), g.pixelRatio, g.screenW, g.screenH)
	if err != nil {
		return nil, fmt.Errorf("creating sphere renderer: %w", err)
	}
	g.key = g.currentKey()

	g.cam = camera.New(float32(cfg.Camera.Distance))

	g.onInteract = opts.OnInteract
	if g.onInteract == nil {
		g.onInteract = func() { g.expanded = !g.expanded }
	}

	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("writing config snapshot failed", "error", err)
	}
	if err := g.output.WriteGeneration(g.genRecord); err != nil {
		slog.Warn("writing generation record failed", "error", err)
	}

	return g, nil
}

// currentKey builds the cache key for the present generation parameters.
func (g *Game) currentKey() fieldKey {
	cfg := config.Cfg()
	return fieldKey{
		count:  g.count,
		radius: g.radius,
		top:    rgbFromConfig(cfg.Sphere.ColorTop),
		bottom: rgbFromConfig(cfg.Sphere.ColorBottom),
		glyphs: glyph.Join(g.glyphs),
	}
}

// generate runs the field generator for the current parameters.
func (g *Game) generate() (*field.Field, error) {
	cfg := config.Cfg()
	gen := field.NewGenerator(field.Params{
		Count:      g.count,
		Radius:     g.radius,
		Top:        rgbFromConfig(cfg.Sphere.ColorTop),
		Bottom:     rgbFromConfig(cfg.Sphere.ColorBottom),
		GlyphCount: len(g.glyphs),
	}, g.rng)

	f, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating particle field: %w", err)
	}

	g.genRecord = telemetry.NewGenRecord(rl.GetTime(), f, len(g.glyphs))
	g.genRecord.Log()
	return f, nil
}

// regenerate rebuilds the field and swaps the mesh when the cache key has
// changed. A failed attempt keeps the previous field renderable and rolls the
// parameters back.
func (g *Game) regenerate() {
	key := g.currentKey()
	if key == g.key {
		return
	}

	f, err := g.generate()
	if err != nil {
		slog.Error("regeneration failed, keeping previous field", "error", err)
		g.count = g.key.count
		g.radius = g.key.radius
		return
	}
	if err := g.sphere.SetField(f, g.atlas); err != nil {
		slog.Error("mesh swap failed, keeping previous field", "error", err)
		g.count = g.key.count
		g.radius = g.key.radius
		return
	}
	g.key = key

	if err := g.output.WriteGeneration(g.genRecord); err != nil {
		slog.Warn("writing generation record failed", "error", err)
	}
}

// Update advances one frame of input, regeneration and animation.
func (g *Game) Update() {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseRegen)
	g.regenerate()

	g.perf.StartPhase(telemetry.PhaseAnimate)
	if !g.paused {
		g.anim = Advance(g.anim, rl.GetTime(), rl.GetFrameTime(), g.expanded, g.animParams)
	}
}

// rgbFromConfig converts an 8-bit config color to the normalized field form.
func rgbFromConfig(c config.RGBConfig) field.RGB {
	return field.RGB{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
	}
}

// Unload releases all resources.
func (g *Game) Unload() {
	if g.sphere != nil {
		g.sphere.Unload()
	}
	if !g.atlas.Empty {
		rl.UnloadTexture(g.atlas.Texture)
	}
	if g.ownFont {
		rl.UnloadFont(g.font)
	}
	if err := g.output.Close(); err != nil {
		slog.Warn("closing output files failed", "error", err)
	}
}
