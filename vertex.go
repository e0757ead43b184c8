package lume

// Vertex carries the per-vertex attributes and the values produced by the
// vertex stage. Position and Normal are the object-space inputs; World is the
// world-space position varying, Normal is overwritten with the world-space
// normal, and Output is the clip-space position consumed by the rasterizer.
type Vertex struct {
	Position Vector
	Normal   Vector
	Color    Color
	World    Vector
	Output   VectorW
}

// Outside reports whether the transformed vertex lies outside the clip
// volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes blends three vertex-stage outputs with
// perspective-correct barycentric weights. b carries the three w-divided
// weights in X, Y, Z and their reciprocal sum in W.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b)
	v.World = interpolateVectors(v1.World, v2.World, v3.World, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

// LerpVertexes linearly interpolates all attributes between two vertices.
// Used by clipping, where new vertices are introduced along edges.
func LerpVertexes(v1, v2 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t)
	v.World = v1.World.Lerp(v2.World, t)
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.Output = v1.Output.Lerp(v2.Output, t)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(c1, c2, c3 Color, b VectorW) Color {
	return Color{
		(c1.R*b.X + c2.R*b.Y + c3.R*b.Z) * b.W,
		(c1.G*b.X + c2.G*b.Y + c3.G*b.Z) * b.W,
		(c1.B*b.X + c2.B*b.Y + c3.B*b.Z) * b.W,
		(c1.A*b.X + c2.A*b.Y + c3.A*b.Z) * b.W}
}
