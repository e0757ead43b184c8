package lume

// Shader is the two-stage programmable pipeline run by the Context. Vertex is
// invoked once per vertex and must fill in the clip-space Output plus any
// varyings; Fragment is invoked once per covered pixel with the
// perspective-correct interpolated vertex. Both stages must be pure functions
// of their inputs: the rasterizer calls them concurrently from multiple
// goroutines.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}
