package telemetry

import (
	"log/slog"

	"github.com/icedtinat/lumina/field"
)

// GenRecord captures one field generation run for CSV export and logging.
type GenRecord struct {
	ElapsedSec     float64 `csv:"elapsed_sec"`
	Count          int     `csv:"count"`
	Radius         float64 `csv:"radius"`
	GlyphCount     int     `csv:"glyph_count"`
	Iterations     int     `csv:"iterations"`
	AcceptanceRate float64 `csv:"acceptance_rate"`
	DurationUS     int64   `csv:"duration_us"`
}

// NewGenRecord flattens a generated field into a record.
func NewGenRecord(elapsed float64, f *field.Field, glyphCount int) GenRecord {
	return GenRecord{
		ElapsedSec:     elapsed,
		Count:          f.Count,
		Radius:         float64(f.Radius),
		GlyphCount:     glyphCount,
		Iterations:     f.Stats.Iterations,
		AcceptanceRate: f.Stats.AcceptanceRate(f.Count),
		DurationUS:     f.Stats.Duration.Microseconds(),
	}
}

// Log writes the record via slog.
func (r GenRecord) Log() {
	slog.Info("generated field",
		"count", r.Count,
		"radius", r.Radius,
		"glyphs", r.GlyphCount,
		"iterations", r.Iterations,
		"accept_rate", r.AcceptanceRate,
		"duration_us", r.DurationUS,
	)
}
