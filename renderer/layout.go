package renderer

// VertexLayout is the explicit producer/consumer contract for the particle
// mesh: the CPU packer writes these attributes and the shader must declare
// every one of them. Validated against the compiled program at link time
// instead of trusting name-based binding silently.
type VertexLayout struct {
	Version    int
	Attributes []VertexAttribute
}

// VertexAttribute names one shader input and its component count.
type VertexAttribute struct {
	Name string
	Size int32 // float components per vertex
}

// particleLayout is the layout both buffers.go and the GLSL sources implement.
// Bump Version whenever the attribute set or packing changes.
var particleLayout = VertexLayout{
	Version: 1,
	Attributes: []VertexAttribute{
		{Name: "vertexPosition", Size: 3},  // particle center, replicated per corner
		{Name: "vertexTexCoord", Size: 2},  // corner uv, origin top-left
		{Name: "vertexNormal", Size: 3},    // animation seed triple
		{Name: "vertexColor", Size: 4},     // base color, RGBA8
		{Name: "vertexTexCoord2", Size: 2}, // size scale, glyph index
	},
}
