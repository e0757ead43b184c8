package lume

import (
	"math"
	"testing"
)

func clipVertex(x, y, z, w float64) Vertex {
	return Vertex{Output: VectorW{x, y, z, w}}
}

func TestClipTriangleFullyInside(t *testing.T) {
	tri := NewTriangle(
		clipVertex(-0.5, -0.5, 0, 1),
		clipVertex(0.5, -0.5, 0, 1),
		clipVertex(0, 0.5, 0, 1),
	)
	got := ClipTriangle(tri)
	if len(got) != 1 {
		t.Fatalf("fully inside triangle clipped to %d triangles, want 1", len(got))
	}
	if got[0].V1.Output != tri.V1.Output ||
		got[0].V2.Output != tri.V2.Output ||
		got[0].V3.Output != tri.V3.Output {
		t.Errorf("fully inside triangle was modified by clipping")
	}
}

func TestClipTriangleFullyOutside(t *testing.T) {
	// Entirely beyond the right plane: x > w for all vertices.
	tri := NewTriangle(
		clipVertex(2, 0, 0, 1),
		clipVertex(3, 0, 0, 1),
		clipVertex(2, 1, 0, 1),
	)
	if got := ClipTriangle(tri); got != nil {
		t.Errorf("fully outside triangle clipped to %d triangles, want nil", len(got))
	}
}

func TestClipTrianglePartial(t *testing.T) {
	// One vertex pokes out the right plane; clipping must trim it and every
	// resulting vertex must lie inside the clip volume.
	tri := NewTriangle(
		clipVertex(-0.5, -0.5, 0, 1),
		clipVertex(2, 0, 0, 1),
		clipVertex(-0.5, 0.5, 0, 1),
	)
	got := ClipTriangle(tri)
	if len(got) == 0 {
		t.Fatalf("partially visible triangle clipped away entirely")
	}
	for _, tri := range got {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if v.Outside() {
				t.Errorf("clipped vertex %v still outside the clip volume", v.Output)
			}
			if v.Output.X > v.Output.W+1e-9 {
				t.Errorf("clipped vertex x = %v exceeds w = %v", v.Output.X, v.Output.W)
			}
		}
	}
}

func TestClipTriangleInterpolatesAttributes(t *testing.T) {
	a := clipVertex(0, -0.5, 0, 1)
	a.Color = Color{1, 0, 0, 1}
	b := clipVertex(2, -0.5, 0, 1)
	b.Color = Color{0, 1, 0, 1}
	c := clipVertex(0, 0.5, 0, 1)
	c.Color = Color{0, 0, 1, 1}

	got := ClipTriangle(NewTriangle(a, b, c))
	if len(got) == 0 {
		t.Fatal("triangle clipped away entirely")
	}
	// New vertices on the right plane sit halfway along the a-b and c-b
	// edges, so their colors must be strict blends.
	for _, tri := range got {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if math.Abs(v.Output.X-v.Output.W) < 1e-9 {
				if v.Color.G <= 0 || v.Color.G >= 1 {
					t.Errorf("edge vertex color %v is not an interpolated blend", v.Color)
				}
			}
		}
	}
}

func TestClipLine(t *testing.T) {
	inside := NewLine(clipVertex(-0.5, 0, 0, 1), clipVertex(0.5, 0, 0, 1))
	if got := ClipLine(inside); got == nil {
		t.Fatal("fully inside line clipped away")
	}

	outside := NewLine(clipVertex(2, 0, 0, 1), clipVertex(3, 0, 0, 1))
	if got := ClipLine(outside); got != nil {
		t.Errorf("fully outside line survived clipping")
	}

	crossing := NewLine(clipVertex(0, 0, 0, 1), clipVertex(2, 0, 0, 1))
	got := ClipLine(crossing)
	if got == nil {
		t.Fatal("crossing line clipped away entirely")
	}
	if math.Abs(got.V2.Output.X-1) > 1e-9 {
		t.Errorf("clipped endpoint x = %v, want 1", got.V2.Output.X)
	}
}

func TestInterpolateVertexesBarycentric(t *testing.T) {
	v1 := Vertex{World: V(0, 0, 0), Output: VectorW{0, 0, 0, 1}}
	v2 := Vertex{World: V(1, 0, 0), Output: VectorW{0, 0, 0, 1}}
	v3 := Vertex{World: V(0, 1, 0), Output: VectorW{0, 0, 0, 1}}

	// Equal w means perspective-correct weights reduce to plain
	// barycentric weights.
	third := 1.0 / 3
	b := VectorW{third, third, third, 1 / (third * 3)}
	got := InterpolateVertexes(v1, v2, v3, b)
	if !vectorsAlmostEqual(got.World, V(third, third, 0), 1e-9) {
		t.Errorf("centroid World = %v, want (1/3, 1/3, 0)", got.World)
	}
}
