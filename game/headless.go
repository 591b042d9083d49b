package game

import (
	"fmt"
	"math/rand"

	"github.com/icedtinat/lumina/config"
	"github.com/icedtinat/lumina/field"
	"github.com/icedtinat/lumina/glyph"
	"github.com/icedtinat/lumina/telemetry"
)

// RunHeadless runs a single field generation without opening a window and
// writes the telemetry output. Used for CI and for profiling the generator.
func RunHeadless(opts Options) error {
	cfg := config.Cfg()
	glyphs := glyph.Extract(cfg.Sphere.Text)

	gen := field.NewGenerator(field.Params{
		Count:      cfg.Derived.Count,
		Radius:     cfg.Derived.Radius32,
		Top:        rgbFromConfig(cfg.Sphere.ColorTop),
		Bottom:     rgbFromConfig(cfg.Sphere.ColorBottom),
		GlyphCount: len(glyphs),
	}, rand.New(rand.NewSource(opts.Seed)))

	f, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating particle field: %w", err)
	}

	rec := telemetry.NewGenRecord(0, f, len(glyphs))
	rec.Log()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}
	if err := output.WriteGeneration(rec); err != nil {
		return err
	}
	return output.Close()
}
