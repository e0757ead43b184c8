package lume

import (
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Scene owns a render target and the camera parameters used to derive the
// view and projection uniforms for each draw.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	Near, Far       float64
	eye, center, up Vector
	fovy, aspect    float64
	size, scale     int
}

// NewScene returns a scene rendering a square image of the given size,
// supersampled by scale and downsampled on output.
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader Shader) *Scene {
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{
		Context: context,
		Shader:  shader,
		Near:    1,
		Far:     999,
		eye:     eye,
		center:  center,
		up:      up,
		fovy:    fovy,
		aspect:  1,
		size:    size,
		scale:   scale,
	}
}

// AddObject adds an object to the scene.
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects.
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// fitProjection widens the field of view until every object's bounding box
// fits the frame, with a 5% margin against edge clipping.
func (s *Scene) fitProjection(view Matrix) Matrix {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox())
		}
	}
	if len(boxes) == 0 {
		return Perspective(s.fovy, s.aspect, s.Near, s.Far)
	}
	sceneBox := BoxForBoxes(boxes)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := view.MulPosition(corner)

		// The camera looks down -Z in view space; absZ is the depth of
		// the point from the camera plane.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}

		angleX := math.Atan(math.Abs(p.X) / absZ)
		if angleX > maxAngleX {
			maxAngleX = angleX
		}

		angleY := math.Atan(math.Abs(p.Y) / absZ)
		if angleY > maxAngleY {
			maxAngleY = angleY
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/s.aspect)
	fovy := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05

	return Perspective(fovy, s.aspect, s.Near, s.Far)
}

// applyCamera installs the view and projection uniforms on the shader.
func (s *Scene) applyCamera(view, projection Matrix) {
	switch sh := s.Shader.(type) {
	case *LambertShader:
		sh.View = view
		sh.Projection = projection
	case *SolidColorShader:
		sh.View = view
		sh.Projection = projection
	}
}

// Image returns the rendered frame, downsampled to the requested size when
// the scene was supersampled.
func (s *Scene) Image() image.Image {
	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.size), uint(s.size), im, resize.Bilinear)
	}
	return im
}

// Render draws every object in the scene into the context.
func (s *Scene) Render(fit bool) {
	view := LookAt(s.eye, s.center, s.up)
	projection := Perspective(s.fovy, s.aspect, s.Near, s.Far)
	if fit {
		projection = s.fitProjection(view)
	}
	s.applyCamera(view, projection)

	s.Context.ClearColorBuffer()
	s.Context.ClearDepthBuffer()
	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("lume: object attempted to render with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
}

// Draw renders the scene and writes it to a PNG file.
func (s *Scene) Draw(fit bool, path string, objects []*Object) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("lume: could not create file in Draw: %v", err)
		return
	}
	defer file.Close()

	if err := s.DrawToWriter(fit, file, objects); err != nil {
		log.Printf("lume: could not encode png in Draw: %v", err)
	}
}

// DrawToWriter renders the scene and encodes the PNG to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	s.Render(fit)
	return png.Encode(writer, s.Image())
}

// GenerateScene renders objects to a PNG file under a single directional
// light. light points from the surfaces toward the light source; lightColor
// and objectColor are hex color strings.
func GenerateScene(fit bool, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, lightColor, objectColor string, near, far float64) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("lume: could not create file for GenerateScene: %v", err)
		return
	}
	defer file.Close()

	err = GenerateSceneToWriter(file, objects, eye, center, up, fovy, size, scale, light, lightColor, objectColor, near, far, fit)
	if err != nil {
		log.Printf("lume: could not generate scene to file: %v", err)
	}
}

// GenerateSceneWithShader renders objects to a PNG file with a caller-built
// shader.
func GenerateSceneWithShader(fit bool, shader Shader, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int) {
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Draw(fit, path, objects)
}

// GenerateSceneToWriter renders objects and encodes the PNG to the writer.
func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, lightColor, objectColor string, near, far float64, fit bool) error {
	view := LookAt(eye, center, up)
	projection := Perspective(fovy, 1, near, far)

	shader := NewLambertShader(view, projection, light, HexColor(lightColor), HexColor(objectColor))
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Near = near
	scene.Far = far

	return scene.DrawToWriter(fit, writer, objects)
}
