package atlas

import (
	"math"
	"testing"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cols int
		rows int
	}{
		{"zero glyphs", 0, 1, 1},
		{"one glyph", 1, 1, 1},
		{"two glyphs", 2, 2, 1},
		{"perfect square", 16, 4, 4},
		{"prime count", 7, 3, 3},
		{"just over square", 17, 5, 4},
		{"large set", 1000, 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.n)
			if l.Cols != tt.cols || l.Rows != tt.rows {
				t.Errorf("NewLayout(%d) = %dx%d, want %dx%d", tt.n, l.Cols, l.Rows, tt.cols, tt.rows)
			}
			if tt.n > 0 && l.Cols*l.Rows < tt.n {
				t.Errorf("grid %dx%d too small for %d glyphs", l.Cols, l.Rows, tt.n)
			}
		})
	}
}

func TestLayoutInvariants(t *testing.T) {
	for n := 1; n <= 200; n++ {
		l := NewLayout(n)

		wantCols := int(math.Ceil(math.Sqrt(float64(n))))
		if l.Cols != wantCols {
			t.Fatalf("n=%d: cols = %d, want ceil(sqrt(n)) = %d", n, l.Cols, wantCols)
		}
		if l.Cols*l.Rows < n {
			t.Fatalf("n=%d: cols*rows = %d < n", n, l.Cols*l.Rows)
		}

		// Every glyph maps to a unique, in-bounds cell.
		occupied := make(map[[2]int]bool)
		for i := 0; i < n; i++ {
			col, row := l.Cell(i)
			if col < 0 || col >= l.Cols || row < 0 || row >= l.Rows {
				t.Fatalf("n=%d: glyph %d maps out of bounds (%d,%d)", n, i, col, row)
			}
			key := [2]int{col, row}
			if occupied[key] {
				t.Fatalf("n=%d: cell (%d,%d) occupied twice", n, col, row)
			}
			occupied[key] = true
		}
	}
}

func TestAtlasUVInsideCell(t *testing.T) {
	corners := [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {0.25, 0.75}}

	for _, n := range []int{1, 2, 5, 16, 37} {
		l := NewLayout(n)
		for i := 0; i < n; i++ {
			u0, v0, u1, v1 := l.CellRect(i)
			for _, c := range corners {
				au, av := l.AtlasUV(i, c[0], c[1])
				if au < u0-1e-6 || au > u1+1e-6 || av < v0-1e-6 || av > v1+1e-6 {
					t.Errorf("n=%d glyph=%d uv=(%v,%v): atlas uv (%v,%v) outside cell [%v,%v]x[%v,%v]",
						n, i, c[0], c[1], au, av, u0, u1, v0, v1)
				}
			}
		}
	}
}

func TestAtlasUVOrientation(t *testing.T) {
	// Two glyphs, 2x1 grid. Glyph 0 occupies the left half, glyph 1 the right.
	l := NewLayout(2)

	au, _ := l.AtlasUV(0, 0.5, 0.5)
	if au < 0 || au > 0.5 {
		t.Errorf("glyph 0 center u = %v, want within left half", au)
	}
	au, _ = l.AtlasUV(1, 0.5, 0.5)
	if au < 0.5 || au > 1 {
		t.Errorf("glyph 1 center u = %v, want within right half", au)
	}

	// Sprite top (v=0) must sample the top of the cell, which under the
	// bottom-origin upload is the cell's high-V edge.
	_, avTop := l.AtlasUV(0, 0.5, 0)
	_, avBottom := l.AtlasUV(0, 0.5, 1)
	if avTop <= avBottom {
		t.Errorf("v orientation inverted: top maps to %v, bottom to %v", avTop, avBottom)
	}
}
