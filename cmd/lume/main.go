// lume renders 3D models with single-directional-light Lambert shading.
//
// Subcommands:
//
//	render  - render a model to a PNG file
//	info    - print mesh statistics
//	view    - interactive viewer window
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumecraft/lume"
)

var (
	outPath     string
	size        int
	scale       int
	eyeFlag     string
	centerFlag  string
	upFlag      string
	fovy        float64
	near        float64
	far         float64
	lightFlag   string
	lightColor  string
	objectColor string
	fit         bool
	wireframe   bool
	smooth      bool
	simplify    float64
)

func main() {
	root := &cobra.Command{
		Use:   "lume",
		Short: "Software Lambert-shaded 3D renderer",
		Long: `lume - software 3D renderer

Renders OBJ, STL and glTF/GLB models with single-directional-light
Lambertian shading. The light direction points from the surface toward
the light source.`,
	}

	renderCmd := &cobra.Command{
		Use:   "render <model.obj|model.stl|model.glb>",
		Short: "Render a model to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0])
		},
	}
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "out.png", "Output PNG path")
	renderCmd.Flags().IntVar(&size, "size", 1024, "Output image size in pixels (square)")
	renderCmd.Flags().IntVar(&scale, "scale", 2, "Supersampling factor")
	renderCmd.Flags().StringVar(&eyeFlag, "eye", "3,3,3", "Camera position (x,y,z)")
	renderCmd.Flags().StringVar(&centerFlag, "center", "0,0,0", "Camera target (x,y,z)")
	renderCmd.Flags().StringVar(&upFlag, "up", "0,1,0", "Camera up vector (x,y,z)")
	renderCmd.Flags().Float64Var(&fovy, "fovy", 45, "Vertical field of view in degrees")
	renderCmd.Flags().Float64Var(&near, "near", 1, "Near clip plane")
	renderCmd.Flags().Float64Var(&far, "far", 999, "Far clip plane")
	renderCmd.Flags().StringVar(&lightFlag, "light", "1,1,1", "Light direction, surface toward light (x,y,z)")
	renderCmd.Flags().StringVar(&lightColor, "light-color", "ffffff", "Light color (hex)")
	renderCmd.Flags().StringVar(&objectColor, "color", "cccccc", "Object base color (hex)")
	renderCmd.Flags().BoolVar(&fit, "fit", true, "Widen the field of view to fit the model")
	renderCmd.Flags().BoolVar(&wireframe, "wireframe", false, "Render as wireframe")
	renderCmd.Flags().BoolVar(&smooth, "smooth", false, "Recompute smooth vertex normals")
	renderCmd.Flags().Float64Var(&simplify, "simplify", 0, "Decimate to this fraction of triangles (0 = off)")
	root.AddCommand(renderCmd)

	infoCmd := &cobra.Command{
		Use:   "info <model.obj|model.stl|model.glb>",
		Short: "Print mesh statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	root.AddCommand(infoCmd)

	viewCmd := &cobra.Command{
		Use:   "view <model.obj|model.stl|model.glb>",
		Short: "Open an interactive viewer window",
		Long: `Open an interactive viewer window.

Controls:
  W/S/A/D      - Move the camera
  Space/Shift  - Move up/down
  Right drag   - Look around
  Q/E          - Grow/shrink the model
  Escape       - Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0])
		},
	}
	viewCmd.Flags().IntVar(&viewWidth, "width", 1200, "Window width")
	viewCmd.Flags().IntVar(&viewHeight, "height", 900, "Window height")
	viewCmd.Flags().StringVar(&lightFlag, "light", "1,1,1", "Light direction, surface toward light (x,y,z)")
	viewCmd.Flags().StringVar(&lightColor, "light-color", "ffffff", "Light color (hex)")
	viewCmd.Flags().StringVar(&objectColor, "color", "cccccc", "Object base color (hex)")
	viewCmd.Flags().Float64Var(&spinSpeed, "spin", 1, "Model spin speed, radians per second")
	root.AddCommand(viewCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(path string) error {
	mesh, err := lume.LoadMesh(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if simplify > 0 && simplify < 1 {
		mesh.Simplify(simplify)
	}
	if smooth {
		mesh.SmoothNormals()
	}

	eye, err := parseVector(eyeFlag)
	if err != nil {
		return err
	}
	center, err := parseVector(centerFlag)
	if err != nil {
		return err
	}
	up, err := parseVector(upFlag)
	if err != nil {
		return err
	}
	light, err := parseVector(lightFlag)
	if err != nil {
		return err
	}

	object := lume.NewObjectFromMesh(mesh)
	object.Color = lume.HexColor(objectColor)

	view := lume.LookAt(eye, center, up)
	projection := lume.Perspective(fovy, 1, near, far)
	shader := lume.NewLambertShader(view, projection, light, lume.HexColor(lightColor), object.Color)

	scene := lume.NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Near = near
	scene.Far = far
	scene.Context.Wireframe = wireframe

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := scene.DrawToWriter(fit, file, []*lume.Object{object}); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("Rendered %s (%d triangles) to %s\n", filepath.Base(path), len(mesh.Triangles), outPath)
	return nil
}

func runInfo(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	mesh, err := lume.LoadMesh(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	box := mesh.BoundingBox()
	dims := box.Size()
	center := box.Center()
	ext := strings.ToUpper(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))

	fmt.Printf("File:       %s\n", filepath.Base(path))
	fmt.Printf("Format:     %s\n", ext)
	fmt.Printf("Size:       %.2f KB\n", float64(stat.Size())/1024)
	fmt.Println()
	fmt.Printf("Triangles:  %d\n", len(mesh.Triangles))
	fmt.Printf("Lines:      %d\n", len(mesh.Lines))
	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", box.Min.X, box.Min.Y, box.Min.Z)
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", box.Max.X, box.Max.Y, box.Max.Z)
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", dims.X, dims.Y, dims.Z)
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)
	return nil
}

func parseVector(s string) (lume.Vector, error) {
	var x, y, z float64
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &x, &y, &z); err != nil {
		return lume.Vector{}, fmt.Errorf("invalid vector %q (want x,y,z): %w", s, err)
	}
	return lume.V(x, y, z), nil
}
