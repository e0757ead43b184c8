package lume

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadSTL loads an STL file, detecting binary versus ASCII format. Vertices
// within a small tolerance of each other are welded so that face normals
// average into smooth per-vertex normals.
func LoadSTL(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSTLFromBytes(data)
}

func LoadSTLFromReader(r io.Reader) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadSTLFromBytes(data)
}

func LoadSTLFromBytes(data []byte) (*Mesh, error) {
	var faces []stlFace
	var err error
	if isBinarySTL(data) {
		faces, err = parseBinarySTL(data)
	} else {
		faces, err = parseASCIISTL(data)
	}
	if err != nil {
		return nil, err
	}
	return meshFromSTLFaces(faces), nil
}

type stlFace struct {
	normal   Vector
	vertices [3]Vector
}

// isBinarySTL distinguishes the two formats. Binary files carry an 80-byte
// header and a 4-byte triangle count; ASCII files start with "solid", but so
// can a binary header, so the declared size is checked too.
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		count := binary.LittleEndian.Uint32(data[80:84])
		return uint32(len(data)) == 84+count*50
	}
	return true
}

func parseBinarySTL(data []byte) ([]stlFace, error) {
	count := binary.LittleEndian.Uint32(data[80:84])
	if uint32(len(data)) < 84+count*50 {
		return nil, fmt.Errorf("lume: binary stl truncated: %d triangles declared, %d bytes", count, len(data))
	}
	faces := make([]stlFace, count)
	offset := 84
	for i := range faces {
		faces[i].normal = readSTLVector(data[offset:])
		faces[i].vertices[0] = readSTLVector(data[offset+12:])
		faces[i].vertices[1] = readSTLVector(data[offset+24:])
		faces[i].vertices[2] = readSTLVector(data[offset+36:])
		// 2-byte attribute count is skipped.
		offset += 50
	}
	return faces, nil
}

func readSTLVector(data []byte) Vector {
	x := math.Float32frombits(binary.LittleEndian.Uint32(data[0:]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(data[4:]))
	z := math.Float32frombits(binary.LittleEndian.Uint32(data[8:]))
	return Vector{float64(x), float64(y), float64(z)}
}

func parseASCIISTL(data []byte) ([]stlFace, error) {
	var faces []stlFace
	var face stlFace
	nvertex := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "facet":
			face = stlFace{}
			nvertex = 0
			if len(fields) >= 5 && fields[1] == "normal" {
				face.normal = Vector{pf(fields[2]), pf(fields[3]), pf(fields[4])}
			}
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("lume: stl line %d: vertex needs x y z", lineNum)
			}
			if nvertex >= 3 {
				return nil, fmt.Errorf("lume: stl line %d: more than three vertices in facet", lineNum)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("lume: stl line %d: %w", lineNum, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("lume: stl line %d: %w", lineNum, err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("lume: stl line %d: %w", lineNum, err)
			}
			face.vertices[nvertex] = Vector{x, y, z}
			nvertex++
		case "endfacet":
			if nvertex == 3 {
				faces = append(faces, face)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return faces, nil
}

// meshFromSTLFaces welds vertices by quantized position, accumulating each
// face normal into every vertex it touches, then normalizes the sums into
// smooth per-vertex normals. Faces with a zero normal record get a computed
// one.
func meshFromSTLFaces(faces []stlFace) *Mesh {
	acc := make(map[weldKey]Vector)
	zero := Vector{}
	for i := range faces {
		f := &faces[i]
		if f.normal == zero {
			e1 := f.vertices[1].Sub(f.vertices[0])
			e2 := f.vertices[2].Sub(f.vertices[0])
			f.normal = e1.Cross(e2).Normalize()
		}
		for _, p := range f.vertices {
			k := makeWeldKey(p)
			acc[k] = acc[k].Add(f.normal)
		}
	}

	triangles := make([]*Triangle, 0, len(faces))
	for i := range faces {
		f := &faces[i]
		t := &Triangle{}
		for j, v := range []*Vertex{&t.V1, &t.V2, &t.V3} {
			v.Position = f.vertices[j]
			n := acc[makeWeldKey(v.Position)]
			if n.Length() > 0 {
				v.Normal = n.Normalize()
			} else {
				// Isolated degenerate vertex; leave the face normal.
				v.Normal = f.normal
			}
		}
		triangles = append(triangles, t)
	}
	return NewTriangleMesh(triangles)
}
