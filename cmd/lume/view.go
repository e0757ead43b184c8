package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lumecraft/lume"
)

var (
	viewWidth  int
	viewHeight int
	spinSpeed  float64
)

// viewer drives the interactive window. Each frame re-renders the scene
// through the software rasterizer and blits the color buffer to the screen.
type viewer struct {
	object  *lume.Object
	shader  *lume.LambertShader
	context *lume.Context
	camera  *lume.Camera

	width, height int
	angle         float64
	scaleFactor   float64
	base          lume.Matrix

	last     time.Time
	frame    *ebiten.Image
	dragging bool
	prevX    int
	prevY    int
}

func runView(path string) error {
	mesh, err := lume.LoadMesh(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	light, err := parseVector(lightFlag)
	if err != nil {
		return err
	}

	object := lume.NewObjectFromMesh(mesh)
	object.Color = lume.HexColor(objectColor)

	// Center the model on the origin so it spins in place.
	box := mesh.BoundingBox()
	base := lume.Translate(box.Center().Negate())

	camera := lume.NewCamera(lume.V(0, 0, box.Size().Length()*1.5))
	camera.Sensitivity = 0.004

	projection := lume.Perspective(45, float64(viewWidth)/float64(viewHeight), 0.01, 1000)
	shader := lume.NewLambertShader(camera.ViewMatrix(), projection, light, lume.HexColor(lightColor), object.Color)

	context := lume.NewContext(viewWidth, viewHeight, shader)
	context.ClearColor = lume.HexColor("1a1a22")

	v := &viewer{
		object:      object,
		shader:      shader,
		context:     context,
		camera:      camera,
		width:       viewWidth,
		height:      viewHeight,
		scaleFactor: 1,
		base:        base,
		last:        time.Now(),
	}

	ebiten.SetWindowSize(viewWidth, viewHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("lume - %s", path))
	if err := ebiten.RunGame(v); err != nil {
		return err
	}
	return nil
}

func (v *viewer) Update() error {
	now := time.Now()
	dt := now.Sub(v.last).Seconds()
	v.last = now
	if dt > 0.1 {
		dt = 0.1
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var forward, strafe, vertical float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		vertical++
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		vertical--
	}
	v.camera.Move(forward, strafe, vertical, dt)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if v.dragging {
			v.camera.Look(float64(x-v.prevX), float64(y-v.prevY))
		}
		v.prevX, v.prevY = x, y
		v.dragging = true
	} else {
		v.dragging = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.scaleFactor *= 1.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.scaleFactor *= 0.9
	}

	v.angle += spinSpeed * dt
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	s := v.scaleFactor
	v.object.Matrix = lume.Scale(lume.V(s, s, s)).
		Mul(lume.Rotate(lume.V(0, 1, 0), v.angle)).
		Mul(v.base)
	v.shader.View = v.camera.ViewMatrix()

	v.context.ClearColorBuffer()
	v.context.ClearDepthBuffer()
	v.context.DrawObject(v.object)

	if v.frame == nil {
		v.frame = ebiten.NewImage(v.width, v.height)
	}
	// The color buffer is fully opaque, so NRGBA bytes are valid
	// premultiplied RGBA as-is.
	v.frame.WritePixels(v.context.ColorBuffer.Pix)
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
