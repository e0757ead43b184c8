package lume

import (
	"math"

	"github.com/fogleman/simplify"
)

// Mesh holds triangle and line primitives. The rasterizer consumes both.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) dirty() {
	m.box = nil
}

// Add appends the primitives of b.
func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.Lines = append(m.Lines, b.Lines...)
	m.dirty()
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := EmptyBox
		for _, t := range m.Triangles {
			box = box.Extend(t.BoundingBox())
		}
		for _, l := range m.Lines {
			box = box.Extend(l.BoundingBox())
		}
		m.box = &box
	}
	return *m.box
}

func (m *Mesh) Center() Vector {
	return m.BoundingBox().Center()
}

// Transform bakes a matrix into the mesh, transforming positions as points
// and normals with the matrix's normal matrix.
func (m *Mesh) Transform(matrix Matrix) {
	n := matrix.NormalMatrix()
	zero := Vector{}
	for _, t := range m.Triangles {
		for _, v := range []*Vertex{&t.V1, &t.V2, &t.V3} {
			v.Position = matrix.MulPosition(v.Position)
			if v.Normal != zero {
				v.Normal = n.MulDirection(v.Normal).Normalize()
			}
		}
	}
	for _, l := range m.Lines {
		l.V1.Position = matrix.MulPosition(l.V1.Position)
		l.V2.Position = matrix.MulPosition(l.V2.Position)
	}
	m.dirty()
}

// MoveTo translates the mesh so that its bounding-box anchor lands on
// position. anchor is in unit-box coordinates, e.g. (0.5, 0.5, 0.5) centers
// the mesh on position.
func (m *Mesh) MoveTo(position, anchor Vector) {
	box := m.BoundingBox()
	offset := position.Sub(box.Min).Sub(box.Size().Mul(anchor))
	m.Transform(Translate(offset))
}

// SetColor sets the vertex color of every primitive.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
	for _, l := range m.Lines {
		l.SetColor(c)
	}
}

// weldKey quantizes a position so that vertices within a small tolerance of
// each other share smooth-normal accumulation.
type weldKey struct {
	x, y, z int64
}

const weldScale = 1e4

func makeWeldKey(v Vector) weldKey {
	return weldKey{
		int64(math.Round(v.X * weldScale)),
		int64(math.Round(v.Y * weldScale)),
		int64(math.Round(v.Z * weldScale)),
	}
}

// SmoothNormals replaces vertex normals with the area-weighted average of the
// face normals of all triangles sharing the position.
func (m *Mesh) SmoothNormals() {
	acc := make(map[weldKey]Vector)
	for _, t := range m.Triangles {
		// Unnormalized cross product weights the average by face area.
		e1 := t.V2.Position.Sub(t.V1.Position)
		e2 := t.V3.Position.Sub(t.V1.Position)
		n := e1.Cross(e2)
		for _, v := range []*Vertex{&t.V1, &t.V2, &t.V3} {
			k := makeWeldKey(v.Position)
			acc[k] = acc[k].Add(n)
		}
	}
	for _, t := range m.Triangles {
		for _, v := range []*Vertex{&t.V1, &t.V2, &t.V3} {
			n := acc[makeWeldKey(v.Position)]
			if n.Length() > 0 {
				v.Normal = n.Normalize()
			}
		}
	}
}

// Simplify decimates the triangle mesh, keeping roughly factor of the
// original triangle count. Lines are left untouched. Vertex normals are
// recomputed afterwards since decimation discards them.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st).Simplify(factor)
	m.Triangles = make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		p1 := Vector(t.V1)
		p2 := Vector(t.V2)
		p3 := Vector(t.V3)
		m.Triangles[i] = NewTriangleForPoints(p1, p2, p3)
	}
	m.SmoothNormals()
	m.dirty()
}
