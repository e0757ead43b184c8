package lume

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Object pairs a mesh with its placement matrix and base color. The color and
// matrix are supplied to the shader as per-draw uniforms.
type Object struct {
	Mesh   *Mesh
	Color  Color
	Matrix Matrix
}

// NewEmptyObject returns an object with an identity placement.
func NewEmptyObject() *Object {
	return &Object{Matrix: Identity()}
}

func NewObject(triangles []*Triangle, lines []*Line) *Object {
	return &Object{Mesh: NewMesh(triangles, lines), Matrix: Identity()}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Matrix: Identity()}
}

// NewObjectFromFile loads a mesh by file extension and wraps it in an object
// with a neutral gray base color.
func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.Color = HexColor("777")
	return o, nil
}

func NewTriangleObject(triangles []*Triangle) *Object {
	return &Object{Mesh: NewTriangleMesh(triangles), Matrix: Identity()}
}

func NewLineObject(lines []*Line) *Object {
	return &Object{Mesh: NewLineMesh(lines), Matrix: Identity()}
}

// SetColor sets the object base color and the vertex colors of its mesh.
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// LoadMesh loads a mesh from an OBJ, STL or glTF/GLB file, chosen by
// extension.
func LoadMesh(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".stl":
		return LoadSTL(path)
	case ".glb", ".gltf":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("lume: unsupported mesh format %q", filepath.Ext(path))
}

// LoadMeshFromURL fetches an OBJ, STL or glTF/GLB mesh over HTTP, chosen by
// the extension of the URL path.
func LoadMeshFromURL(rawURL string) (*Mesh, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(u.Path))
	switch ext {
	case ".obj", ".stl", ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("lume: unsupported mesh format %q in %s", ext, rawURL)
	}

	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lume: fetching %s: %s", rawURL, resp.Status)
	}

	switch ext {
	case ".stl":
		return LoadSTLFromReader(resp.Body)
	case ".glb", ".gltf":
		return LoadGLTFFromReader(resp.Body)
	}
	return LoadOBJFromReader(resp.Body)
}
