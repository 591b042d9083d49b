// Package renderer draws the particle field as glyph billboards through a
// custom two-stage shader sampling the atlas texture.
package renderer

import (
	_ "embed"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/atlas"
	"github.com/icedtinat/lumina/field"
)

//go:embed shaders/sphere.vs
var sphereVS string

//go:embed shaders/sphere.fs
var sphereFS string

// Sphere owns the shader program, the uploaded particle mesh and the uniform
// state for one glyph sphere. Constructed once; SetField swaps the mesh whole
// on regeneration so no frame observes a partial buffer set.
type Sphere struct {
	shader   rl.Shader
	material rl.Material
	mesh     rl.Mesh
	hasMesh  bool

	timeLoc       int32
	baseSizeLoc   int32
	pixelRatioLoc int32
	resolutionLoc int32
	gridLoc       int32

	// The mesh points into these slices; keeping them referenced pins the
	// memory for the lifetime of the GPU buffers.
	buffers *quadBuffers

	radius float32
}

// NewSphere compiles the shader program, validates the vertex layout contract
// against it, and uploads the initial field and atlas.
func NewSphere(f *field.Field, a atlas.Atlas, baseSize, pixelRatio, screenW, screenH float32) (*Sphere, error) {
	s := &Sphere{}

	s.shader = rl.LoadShaderFromMemory(sphereVS, sphereFS)
	if s.shader.ID == 0 {
		return nil, fmt.Errorf("renderer: shader compilation failed")
	}
	if err := validateLayout(s.shader, particleLayout); err != nil {
		rl.UnloadShader(s.shader)
		return nil, err
	}

	s.timeLoc = rl.GetShaderLocation(s.shader, "time")
	s.baseSizeLoc = rl.GetShaderLocation(s.shader, "baseSize")
	s.pixelRatioLoc = rl.GetShaderLocation(s.shader, "pixelRatio")
	s.resolutionLoc = rl.GetShaderLocation(s.shader, "resolution")
	s.gridLoc = rl.GetShaderLocation(s.shader, "grid")

	rl.SetShaderValue(s.shader, s.baseSizeLoc, []float32{baseSize}, rl.ShaderUniformFloat)
	rl.SetShaderValue(s.shader, s.pixelRatioLoc, []float32{pixelRatio}, rl.ShaderUniformFloat)
	s.Resize(screenW, screenH)

	s.material = rl.LoadMaterialDefault()
	s.material.Shader = s.shader

	if err := s.SetField(f, a); err != nil {
		rl.UnloadShader(s.shader)
		return nil, err
	}
	return s, nil
}

// validateLayout checks that every attribute of the layout exists in the
// compiled program, surfacing contract drift at link time.
func validateLayout(shader rl.Shader, layout VertexLayout) error {
	for _, attr := range layout.Attributes {
		if rl.GetShaderLocationAttrib(shader, attr.Name) < 0 {
			return fmt.Errorf("renderer: layout v%d attribute %q missing from shader",
				layout.Version, attr.Name)
		}
	}
	return nil
}

// SetField replaces the particle mesh and atlas binding. Runs synchronously
// between frames; the old mesh is released only after the new one is built so
// a failure leaves the previous field renderable.
func (s *Sphere) SetField(f *field.Field, a atlas.Atlas) error {
	b, err := buildQuadBuffers(f)
	if err != nil {
		return err
	}

	mesh := rl.Mesh{
		VertexCount:   int32(f.Count * 4),
		TriangleCount: int32(f.Count * 2),
	}
	mesh.Vertices = &b.vertices[0]
	mesh.Texcoords = &b.texcoords[0]
	mesh.Normals = &b.normals[0]
	mesh.Colors = &b.colors[0]
	mesh.Texcoords2 = &b.texcoords2[0]
	mesh.Indices = &b.indices[0]

	rl.UploadMesh(&mesh, false)

	if s.hasMesh {
		rl.UnloadMesh(&s.mesh)
	}
	s.mesh = mesh
	s.hasMesh = true
	s.buffers = b
	s.radius = f.Radius

	if !a.Empty {
		rl.SetMaterialTexture(&s.material, rl.MapDiffuse, a.Texture)
	}
	grid := []float32{float32(a.Layout.Cols), float32(a.Layout.Rows)}
	rl.SetShaderValue(s.shader, s.gridLoc, grid, rl.ShaderUniformVec2)

	return nil
}

// Draw renders the field with additive blending and depth writes disabled;
// overlapping glyphs brighten instead of occluding.
func (s *Sphere) Draw(elapsed float64, transform rl.Matrix) {
	if !s.hasMesh {
		return
	}

	rl.SetShaderValue(s.shader, s.timeLoc, []float32{float32(elapsed)}, rl.ShaderUniformFloat)

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()

	rl.DrawMesh(s.mesh, s.material, transform)

	rl.EnableDepthMask()
	rl.EndBlendMode()
}

// Resize updates the resolution uniform after a window size change.
func (s *Sphere) Resize(w, h float32) {
	rl.SetShaderValue(s.shader, s.resolutionLoc, []float32{w, h}, rl.ShaderUniformVec2)
}

// Radius returns the radius of the currently uploaded field.
func (s *Sphere) Radius() float32 {
	return s.radius
}

// Unload releases GPU resources.
func (s *Sphere) Unload() {
	if s.hasMesh {
		rl.UnloadMesh(&s.mesh)
		s.hasMesh = false
	}
	rl.UnloadShader(s.shader)
}
