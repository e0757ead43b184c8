package lume

import (
	"bytes"
	"image/png"
	"testing"
)

func sceneTriangleObject() *Object {
	o := NewTriangleObject([]*Triangle{
		NewTriangleForPoints(V(-1, -1, 0), V(1, -1, 0), V(0, 1, 0)),
	})
	o.Color = Color{1, 0, 0, 1}
	return o
}

func TestSceneRender(t *testing.T) {
	view := LookAt(V(0, 0, 3), V(0, 0, 0), V(0, 1, 0))
	projection := Perspective(45, 1, 1, 10)
	shader := NewLambertShader(view, projection, V(0, 0, 1), White, White)

	scene := NewScene(V(0, 0, 3), V(0, 0, 0), V(0, 1, 0), 45, 64, 1, shader)
	scene.AddObject(sceneTriangleObject())
	scene.Render(false)

	if lit := countLitPixels(scene.Context); lit == 0 {
		t.Fatalf("scene rendered no pixels")
	}
	c := scene.Context.ColorBuffer.NRGBAAt(32, 32)
	if c.R == 0 || c.G != 0 || c.B != 0 {
		t.Errorf("center = %v, want pure red shading", c)
	}
}

func TestSceneRenderFit(t *testing.T) {
	view := LookAt(V(0, 0, 50), V(0, 0, 0), V(0, 1, 0))
	projection := Perspective(45, 1, 1, 100)
	shader := NewLambertShader(view, projection, V(0, 0, 1), White, White)

	// From far away the triangle is a few pixels; fitting must widen the
	// view so it fills a good part of the frame.
	scene := NewScene(V(0, 0, 50), V(0, 0, 0), V(0, 1, 0), 45, 64, 1, shader)
	scene.Far = 100
	scene.AddObject(sceneTriangleObject())

	scene.Render(false)
	without := countLitPixels(scene.Context)

	scene.Render(true)
	with := countLitPixels(scene.Context)

	if with <= without {
		t.Errorf("fit projection lit %d pixels, unfit lit %d, want more", with, without)
	}
	if with < 300 {
		t.Errorf("fit projection lit only %d pixels", with)
	}
}

func TestGenerateSceneToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateSceneToWriter(&buf, []*Object{sceneTriangleObject()},
		V(0, 0, 3), V(0, 0, 0), V(0, 1, 0), 45, 64, 2,
		V(0, 0, 1), "ffffff", "ff0000", 1, 10, false)
	if err != nil {
		t.Fatalf("GenerateSceneToWriter: %v", err)
	}

	im, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := im.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Fatalf("output is %dx%d, want 64x64 after downsampling", bounds.Dx(), bounds.Dy())
	}

	r, g, _, a := im.At(32, 32).RGBA()
	if a == 0 || r == 0 {
		t.Errorf("center pixel not shaded: r=%d a=%d", r, a)
	}
	if g > r {
		t.Errorf("center pixel greener than red: r=%d g=%d", r, g)
	}
}

func TestSceneSkipsNilMesh(t *testing.T) {
	view := LookAt(V(0, 0, 3), V(0, 0, 0), V(0, 1, 0))
	projection := Perspective(45, 1, 1, 10)
	shader := NewLambertShader(view, projection, V(0, 0, 1), White, White)

	scene := NewScene(V(0, 0, 3), V(0, 0, 0), V(0, 1, 0), 45, 16, 1, shader)
	scene.AddObject(&Object{Matrix: Identity()})
	scene.Render(false)
}
