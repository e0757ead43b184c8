package lume

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

// buildBinarySTL assembles a well-formed binary STL from faces. A zero normal
// exercises the loader's fallback to computed face normals.
func buildBinarySTL(faces []stlFace) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(len(faces)))
	for _, f := range faces {
		for _, v := range append([]Vector{f.normal}, f.vertices[0], f.vertices[1], f.vertices[2]) {
			binary.Write(&buf, binary.LittleEndian, float32(v.X))
			binary.Write(&buf, binary.LittleEndian, float32(v.Y))
			binary.Write(&buf, binary.LittleEndian, float32(v.Z))
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestLoadBinarySTL(t *testing.T) {
	data := buildBinarySTL([]stlFace{{
		normal:   V(0, 0, 1),
		vertices: [3]Vector{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)},
	}})

	mesh, err := LoadSTLFromBytes(data)
	if err != nil {
		t.Fatalf("LoadSTLFromBytes: %v", err)
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("got %d triangles, want 1", len(mesh.Triangles))
	}
	tri := mesh.Triangles[0]
	if !vectorsAlmostEqual(tri.V1.Position, V(0, 0, 0), 1e-6) ||
		!vectorsAlmostEqual(tri.V2.Position, V(1, 0, 0), 1e-6) ||
		!vectorsAlmostEqual(tri.V3.Position, V(0, 1, 0), 1e-6) {
		t.Errorf("vertex positions round-tripped wrong: %v %v %v",
			tri.V1.Position, tri.V2.Position, tri.V3.Position)
	}
	if !vectorsAlmostEqual(tri.V1.Normal, V(0, 0, 1), 1e-6) {
		t.Errorf("normal = %v, want (0,0,1)", tri.V1.Normal)
	}
}

func TestLoadBinarySTLZeroNormal(t *testing.T) {
	data := buildBinarySTL([]stlFace{{
		vertices: [3]Vector{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)},
	}})

	mesh, err := LoadSTLFromBytes(data)
	if err != nil {
		t.Fatalf("LoadSTLFromBytes: %v", err)
	}
	if !vectorsAlmostEqual(mesh.Triangles[0].V1.Normal, V(0, 0, 1), 1e-6) {
		t.Errorf("computed normal = %v, want (0,0,1)", mesh.Triangles[0].V1.Normal)
	}
}

func TestLoadBinarySTLTruncated(t *testing.T) {
	data := buildBinarySTL([]stlFace{{
		vertices: [3]Vector{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)},
	}})
	if _, err := LoadSTLFromBytes(data[:len(data)-10]); err == nil {
		t.Errorf("truncated binary STL loaded without error")
	}
}

const asciiSTL = `solid wedge
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 0
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex -1 0 0
    endloop
  endfacet
endsolid wedge
`

func TestLoadASCIISTL(t *testing.T) {
	mesh, err := LoadSTLFromReader(strings.NewReader(asciiSTL))
	if err != nil {
		t.Fatalf("LoadSTLFromReader: %v", err)
	}
	if len(mesh.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(mesh.Triangles))
	}
	if !vectorsAlmostEqual(mesh.Triangles[0].V2.Position, V(1, 0, 0), 1e-9) {
		t.Errorf("vertex = %v, want (1,0,0)", mesh.Triangles[0].V2.Position)
	}
}

func TestLoadASCIISTLBadVertex(t *testing.T) {
	broken := strings.Replace(asciiSTL, "vertex 1 0 0", "vertex 1 0", 1)
	if _, err := LoadSTLFromReader(strings.NewReader(broken)); err == nil {
		t.Errorf("short vertex line parsed without error")
	}
}

func TestSharedSTLVerticesGetSmoothNormals(t *testing.T) {
	// Two faces folded 90 degrees share the edge x = 0..0, y = 0..1. The
	// shared vertices must average the two face normals.
	data := buildBinarySTL([]stlFace{
		{vertices: [3]Vector{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)}},
		{vertices: [3]Vector{V(0, 0, 0), V(0, 1, 0), V(0, 0, -1)}},
	})
	mesh, err := LoadSTLFromBytes(data)
	if err != nil {
		t.Fatalf("LoadSTLFromBytes: %v", err)
	}
	// Face normals are (0,0,1) and (-1,0,0).
	want := V(-1, 0, 1).Normalize()
	shared := mesh.Triangles[0].V1.Normal
	if !vectorsAlmostEqual(shared, want, 1e-6) {
		t.Errorf("shared normal = %v, want %v", shared, want)
	}
	lone := mesh.Triangles[0].V2.Normal
	if !vectorsAlmostEqual(lone, V(0, 0, 1), 1e-6) {
		t.Errorf("unshared normal = %v, want (0,0,1)", lone)
	}
}

func TestIsBinarySTLDetection(t *testing.T) {
	binData := buildBinarySTL([]stlFace{{
		vertices: [3]Vector{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)},
	}})
	if !isBinarySTL(binData) {
		t.Errorf("binary STL detected as ASCII")
	}
	if isBinarySTL([]byte(asciiSTL)) {
		t.Errorf("ASCII STL detected as binary")
	}
}
