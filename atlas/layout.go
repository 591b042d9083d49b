// Package atlas packs a glyph set into a single square texture addressable by
// ordinal index, and defines the grid/UV math shared with the fragment shader.
package atlas

import "math"

// Layout describes the grid geometry packing N glyphs into a square image.
// Row 0 is the top row. Immutable once created.
type Layout struct {
	Cols int
	Rows int
}

// NewLayout computes the grid for n glyphs: cols = ceil(sqrt(n)),
// rows = ceil(n/cols). A degenerate n <= 0 yields a 1x1 grid.
func NewLayout(n int) Layout {
	if n <= 0 {
		return Layout{Cols: 1, Rows: 1}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	return Layout{Cols: cols, Rows: rows}
}

// Cell returns the grid cell occupied by the glyph at ordinal index i.
func (l Layout) Cell(i int) (col, row int) {
	return i % l.Cols, i / l.Cols
}

// AtlasUV maps a point-local UV (origin top-left, range [0,1]) on the sprite
// of glyph i to a UV inside that glyph's atlas cell. The atlas image is
// uploaded bottom-origin, so the V axis is mirrored here exactly as in the
// fragment stage.
func (l Layout) AtlasUV(i int, u, v float32) (au, av float32) {
	col, row := l.Cell(i)
	flipped := 1 - v
	au = (float32(col) + u) / float32(l.Cols)
	av = 1 - (float32(row) + 1 - flipped) / float32(l.Rows)
	return au, av
}

// CellRect returns the UV-space rectangle [u0,u1]x[v0,v1] of glyph i under the
// same bottom-origin convention AtlasUV maps into.
func (l Layout) CellRect(i int) (u0, v0, u1, v1 float32) {
	col, row := l.Cell(i)
	u0 = float32(col) / float32(l.Cols)
	u1 = float32(col+1) / float32(l.Cols)
	v0 = 1 - float32(row+1)/float32(l.Rows)
	v1 = 1 - float32(row)/float32(l.Rows)
	return u0, v0, u1, v1
}
