package lume

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func unitQuad() *Mesh {
	// Two coplanar triangles in the z = 0 plane, normal +Z.
	return NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(1, 1, 0)),
		NewTriangleForPoints(V(0, 0, 0), V(1, 1, 0), V(0, 1, 0)),
	})
}

func TestMeshBoundingBox(t *testing.T) {
	m := unitQuad()
	box := m.BoundingBox()
	if !vectorsAlmostEqual(box.Min, V(0, 0, 0), testEps) ||
		!vectorsAlmostEqual(box.Max, V(1, 1, 0), testEps) {
		t.Errorf("BoundingBox = %v..%v, want (0,0,0)..(1,1,0)", box.Min, box.Max)
	}
	if !vectorsAlmostEqual(m.Center(), V(0.5, 0.5, 0), testEps) {
		t.Errorf("Center = %v, want (0.5,0.5,0)", m.Center())
	}
}

func TestMeshTransformTranslate(t *testing.T) {
	m := unitQuad()
	m.Transform(Translate(V(10, 0, 0)))
	box := m.BoundingBox()
	if !vectorsAlmostEqual(box.Min, V(10, 0, 0), testEps) {
		t.Errorf("translated Min = %v, want (10,0,0)", box.Min)
	}
	// Translation leaves normals alone.
	if !vectorsAlmostEqual(m.Triangles[0].V1.Normal, V(0, 0, 1), testEps) {
		t.Errorf("normal after translate = %v, want (0,0,1)", m.Triangles[0].V1.Normal)
	}
}

func TestMeshTransformNonUniformScale(t *testing.T) {
	m := unitQuad()
	m.Transform(Scale(V(2, 3, 1)))
	box := m.BoundingBox()
	if !vectorsAlmostEqual(box.Max, V(2, 3, 0), testEps) {
		t.Errorf("scaled Max = %v, want (2,3,0)", box.Max)
	}
	// Quad normals point along a scale axis, so they survive unchanged and
	// unit length.
	n := m.Triangles[0].V1.Normal
	if !vectorsAlmostEqual(n, V(0, 0, 1), testEps) {
		t.Errorf("normal after scale = %v, want (0,0,1)", n)
	}
}

func TestMeshMoveTo(t *testing.T) {
	m := unitQuad()
	m.MoveTo(V(0, 0, 0), V(0.5, 0.5, 0.5))
	if !vectorsAlmostEqual(m.Center(), V(0, 0, 0), testEps) {
		t.Errorf("Center after MoveTo = %v, want origin", m.Center())
	}
}

func TestSmoothNormalsAveragesSharedVertices(t *testing.T) {
	// Two triangles folded along the Y axis, one facing +Z and one facing
	// +X. Shared vertices get the average; others keep their face normal.
	a := NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(1, 1, 0))
	b := NewTriangleForPoints(V(0, 0, 0), V(0, 0, -1), V(0, 1, 0))
	m := NewTriangleMesh([]*Triangle{a, b})

	m.SmoothNormals()

	shared := m.Triangles[0].V1.Normal
	want := V(0, 0, 1).Add(V(1, 0, 0)).Normalize()
	if !vectorsAlmostEqual(shared, want, 1e-6) {
		t.Errorf("shared vertex normal = %v, want %v", shared, want)
	}
	if !floats.AlmostEqual(shared.Length(), 1, testEps) {
		t.Errorf("smooth normal not unit length: %v", shared.Length())
	}
	lone := m.Triangles[0].V3.Normal
	if !vectorsAlmostEqual(lone, V(0, 0, 1), testEps) {
		t.Errorf("unshared vertex normal = %v, want (0,0,1)", lone)
	}
}

func TestSmoothNormalsWeldsNearbyVertices(t *testing.T) {
	// Positions within the weld tolerance accumulate together.
	a := NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(1, 1, 0))
	b := NewTriangleForPoints(V(1e-9, 0, 0), V(0, 1, 0), V(0, 0, -1))
	m := NewTriangleMesh([]*Triangle{a, b})

	m.SmoothNormals()
	if !vectorsAlmostEqual(m.Triangles[0].V1.Normal, m.Triangles[1].V1.Normal, testEps) {
		t.Errorf("welded vertices got different normals: %v vs %v",
			m.Triangles[0].V1.Normal, m.Triangles[1].V1.Normal)
	}
}

func TestMeshAdd(t *testing.T) {
	m := unitQuad()
	other := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(V(5, 0, 0), V(6, 0, 0), V(6, 1, 0)),
	})
	m.Add(other)
	if len(m.Triangles) != 3 {
		t.Fatalf("Add: %d triangles, want 3", len(m.Triangles))
	}
	if got := m.BoundingBox().Max.X; math.Abs(got-6) > testEps {
		t.Errorf("bounding box not refreshed after Add: Max.X = %v, want 6", got)
	}
}

func TestTriangleNormalWinding(t *testing.T) {
	ccw := NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	if !vectorsAlmostEqual(ccw.Normal(), V(0, 0, 1), testEps) {
		t.Errorf("CCW normal = %v, want (0,0,1)", ccw.Normal())
	}
	cw := NewTriangleForPoints(V(0, 0, 0), V(0, 1, 0), V(1, 0, 0))
	if !vectorsAlmostEqual(cw.Normal(), V(0, 0, -1), testEps) {
		t.Errorf("CW normal = %v, want (0,0,-1)", cw.Normal())
	}
}

func TestTriangleIsDegenerate(t *testing.T) {
	if NewTriangleForPoints(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)).IsDegenerate() {
		t.Errorf("proper triangle reported degenerate")
	}
	collapsed := &Triangle{}
	collapsed.V1.Position = V(1, 1, 1)
	collapsed.V2.Position = V(1, 1, 1)
	collapsed.V3.Position = V(2, 2, 2)
	if !collapsed.IsDegenerate() {
		t.Errorf("collapsed triangle not reported degenerate")
	}
	colinear := &Triangle{}
	colinear.V1.Position = V(0, 0, 0)
	colinear.V2.Position = V(1, 0, 0)
	colinear.V3.Position = V(2, 0, 0)
	if !colinear.IsDegenerate() {
		t.Errorf("colinear triangle not reported degenerate")
	}
}
