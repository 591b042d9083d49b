package renderer

import (
	"fmt"

	"github.com/icedtinat/lumina/field"
)

// maxQuadParticles keeps 4 vertices per particle addressable by 16-bit
// indices.
const maxQuadParticles = 16383

// quadBuffers holds the CPU-side mesh arrays for the particle field: one
// camera-facing quad per particle, with per-particle attributes replicated
// across the four corners. Field order matches particleLayout.
type quadBuffers struct {
	vertices   []float32 // 3 per vertex: particle center
	texcoords  []float32 // 2 per vertex: corner uv
	normals    []float32 // 3 per vertex: seed triple
	colors     []uint8   // 4 per vertex: RGBA8
	texcoords2 []float32 // 2 per vertex: scale, glyph index
	indices    []uint16  // 6 per particle, two CCW triangles
}

// quadCorners enumerates the sprite-local uv of the four quad vertices,
// origin top-left: TL, TR, BL, BR.
var quadCorners = [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// buildQuadBuffers expands the field's parallel arrays into quad vertex
// buffers. Fails rather than truncating when the particle count exceeds the
// index format.
func buildQuadBuffers(f *field.Field) (*quadBuffers, error) {
	if f.Count > maxQuadParticles {
		return nil, fmt.Errorf("renderer: %d particles exceed the %d quad limit of 16-bit indices",
			f.Count, maxQuadParticles)
	}

	n := f.Count
	b := &quadBuffers{
		vertices:   make([]float32, n*4*3),
		texcoords:  make([]float32, n*4*2),
		normals:    make([]float32, n*4*3),
		colors:     make([]uint8, n*4*4),
		texcoords2: make([]float32, n*4*2),
		indices:    make([]uint16, n*6),
	}

	for i := 0; i < n; i++ {
		px := f.Positions[i*3]
		py := f.Positions[i*3+1]
		pz := f.Positions[i*3+2]

		cr := colorByte(f.Colors[i*3])
		cg := colorByte(f.Colors[i*3+1])
		cb := colorByte(f.Colors[i*3+2])

		for c := 0; c < 4; c++ {
			vi := i*4 + c

			b.vertices[vi*3] = px
			b.vertices[vi*3+1] = py
			b.vertices[vi*3+2] = pz

			b.texcoords[vi*2] = quadCorners[c][0]
			b.texcoords[vi*2+1] = quadCorners[c][1]

			b.normals[vi*3] = f.Seeds[i*3]
			b.normals[vi*3+1] = f.Seeds[i*3+1]
			b.normals[vi*3+2] = f.Seeds[i*3+2]

			b.colors[vi*4] = cr
			b.colors[vi*4+1] = cg
			b.colors[vi*4+2] = cb
			b.colors[vi*4+3] = 255

			b.texcoords2[vi*2] = f.Scales[i]
			b.texcoords2[vi*2+1] = f.Glyphs[i]
		}

		// Counter-clockwise in view space after corner expansion:
		// (TL, BL, TR) and (TR, BL, BR).
		base := uint16(i * 4)
		b.indices[i*6] = base
		b.indices[i*6+1] = base + 2
		b.indices[i*6+2] = base + 1
		b.indices[i*6+3] = base + 1
		b.indices[i*6+4] = base + 2
		b.indices[i*6+5] = base + 3
	}

	return b, nil
}

// colorByte converts a normalized channel to 8-bit, clamping rounding spill.
func colorByte(v float32) uint8 {
	x := int(v*255 + 0.5)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
