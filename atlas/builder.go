package atlas

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Atlas is a built glyph texture plus its grid geometry. The texture holds
// white glyphs on a transparent background with straight alpha; the shader
// addresses cells through Layout ordinals.
type Atlas struct {
	Texture rl.Texture2D
	Layout  Layout
	// Empty marks a degenerate atlas (no glyphs to draw or no rendering
	// context); Texture is the zero value and must not be sampled.
	Empty bool
}

// Options configures atlas rasterization.
type Options struct {
	Size int32   // square texture resolution in pixels
	Font rl.Font // font used for glyph rasterization
}

// Build rasterizes the glyph set into a single texture and uploads it once.
// Callers cache the result and rebuild only when the glyph set changes.
//
// Degenerate inputs never fail: an empty glyph set skips all draw calls, and a
// missing rendering context (headless run) yields an Empty atlas with a 1x1
// grid rather than touching the GPU.
func Build(glyphs []rune, opts Options) Atlas {
	layout := NewLayout(len(glyphs))

	if len(glyphs) == 0 || !rl.IsWindowReady() {
		return Atlas{Layout: layout, Empty: true}
	}

	img := BuildImage(glyphs, opts)
	defer rl.UnloadImage(img)

	// The shader samples with a bottom-origin V axis; flipping here lets the
	// cell math treat row 0 as the top row.
	rl.ImageFlipVertical(img)

	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	return Atlas{Texture: tex, Layout: layout}
}

// BuildImage rasterizes the glyph grid into a CPU-side image, row 0 at the
// top. Split out from Build so tooling can export the atlas without a GPU
// upload.
func BuildImage(glyphs []rune, opts Options) *rl.Image {
	layout := NewLayout(len(glyphs))
	img := rl.GenImageColor(int(opts.Size), int(opts.Size), rl.Blank)

	cellW := float32(opts.Size) / float32(layout.Cols)
	cellH := float32(opts.Size) / float32(layout.Rows)

	for i, g := range glyphs {
		col, row := layout.Cell(i)
		centerX := (float32(col) + 0.5) * cellW
		centerY := (float32(row) + 0.5) * cellH

		text := string(g)
		fontSize := 0.75 * cellH
		size := rl.MeasureTextEx(opts.Font, text, fontSize, 0)

		// Wide glyphs shrink uniformly to fit 90% of the cell width.
		if size.X > 0.9*cellW {
			fontSize *= 0.9 * cellW / size.X
			size = rl.MeasureTextEx(opts.Font, text, fontSize, 0)
		}

		pos := rl.Vector2{X: centerX - size.X/2, Y: centerY - size.Y/2}
		rl.ImageDrawTextEx(img, pos, opts.Font, text, fontSize, 0, rl.White)
	}

	return img
}
