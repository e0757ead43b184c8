package lume

// Clipping runs on clip-space vertex-stage outputs, against the six
// half-spaces of the clip volume: w+x, w-x, w+y, w-y, w+z, w-z >= 0. New
// vertices introduced along edges get linearly interpolated attributes.

type clipPlane func(VectorW) float64

var clipPlanes = []clipPlane{
	func(p VectorW) float64 { return p.W + p.X },
	func(p VectorW) float64 { return p.W - p.X },
	func(p VectorW) float64 { return p.W + p.Y },
	func(p VectorW) float64 { return p.W - p.Y },
	func(p VectorW) float64 { return p.W + p.Z },
	func(p VectorW) float64 { return p.W - p.Z },
}

// ClipTriangle clips a transformed triangle against the clip volume and
// re-triangulates the resulting polygon as a fan. Returns nil when the
// triangle is entirely outside.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := []Vertex{t.V1, t.V2, t.V3}
	for _, plane := range clipPlanes {
		poly = clipPolygon(poly, plane)
		if len(poly) == 0 {
			return nil
		}
	}
	var result []*Triangle
	for i := 2; i < len(poly); i++ {
		result = append(result, NewTriangle(poly[0], poly[i-1], poly[i]))
	}
	return result
}

// ClipLine clips a transformed line segment against the clip volume. Returns
// nil when the segment is entirely outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := plane(v1.Output)
		d2 := plane(v2.Output)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = LerpVertexes(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = LerpVertexes(v1, v2, d1/(d1-d2))
		}
	}
	return NewLine(v1, v2)
}

// clipPolygon is one Sutherland-Hodgman pass against a single half-space.
func clipPolygon(poly []Vertex, plane clipPlane) []Vertex {
	var out []Vertex
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		da := plane(a.Output)
		db := plane(b.Output)
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, LerpVertexes(a, b, da/(da-db)))
		}
	}
	return out
}
