package lume

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file and converts its triangle primitives to
// a Mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	return meshFromGLTFDocument(doc)
}

// LoadGLTFFromReader decodes glTF or GLB content from a stream. External
// buffer references cannot be resolved this way, so the content must be
// self-contained.
func LoadGLTFFromReader(r io.Reader) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return meshFromGLTFDocument(doc)
}

func meshFromGLTFDocument(doc *gltf.Document) (*Mesh, error) {
	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				// ReadIndices widens uint8/uint16 indices to uint32.
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				// Non-indexed primitive: vertices come in draw order.
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{}
				for j, idx := range [3]uint32{indices[i], indices[i+1], indices[i+2]} {
					v := [3]*Vertex{&t.V1, &t.V2, &t.V3}[j]
					v.Position = Vector{
						float64(positions[idx][0]),
						float64(positions[idx][1]),
						float64(positions[idx][2]),
					}
					if int(idx) < len(normals) {
						v.Normal = Vector{
							float64(normals[idx][0]),
							float64(normals[idx][1]),
							float64(normals[idx][2]),
						}
					}
				}
				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("no triangles found in gltf")
	}

	return NewTriangleMesh(allTriangles), nil
}
