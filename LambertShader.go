package lume

import "math"

// ambientIntensity is the fixed ambient coefficient applied to the object
// color so that surfaces facing away from the light stay dimly visible
// instead of pure black.
const ambientIntensity = 0.1

// LambertShader implements single-directional-light Lambertian diffuse
// shading with a flat ambient term. The fields are the per-draw uniforms;
// DrawObject swaps Model and ObjectColor around each mesh draw.
type LambertShader struct {
	Model      Matrix
	View       Matrix
	Projection Matrix
	// LightDirection points from the surface toward the light. It need not
	// be unit length; it is renormalized on every fragment.
	LightDirection Vector
	LightColor     Color
	ObjectColor    Color
}

func NewLambertShader(view, projection Matrix, lightDirection Vector, lightColor, objectColor Color) *LambertShader {
	return &LambertShader{
		Model:          Identity(),
		View:           view,
		Projection:     projection,
		LightDirection: lightDirection,
		LightColor:     lightColor,
		ObjectColor:    objectColor,
	}
}

// Vertex maps the vertex from object space to clip space and produces the
// world-space position and normal varyings for the fragment stage.
func (s *LambertShader) Vertex(v Vertex) Vertex {
	v.World = s.Model.MulPosition(v.Position)
	// The inverse-transpose of the model's linear part keeps normals
	// perpendicular to the surface under non-uniform scale; the result is
	// not unit length, so normalize here.
	v.Normal = s.Model.NormalMatrix().MulDirection(v.Normal).Normalize()
	v.Output = s.Projection.Mul(s.View).MulPositionW(v.World)
	return v
}

// Fragment computes the pixel color from the interpolated varyings.
// Interpolation denormalizes the world normal, so it is renormalized before
// use. The output alpha is always 1; RGB is left unclamped.
func (s *LambertShader) Fragment(v Vertex, fromObject *Object) Color {
	normal := v.Normal.Normalize()
	light := s.LightDirection.Normalize()
	// Back-facing surfaces receive no diffuse contribution.
	diff := math.Max(normal.Dot(light), 0)
	diffuse := s.LightColor.Mul(s.ObjectColor).MulScalar(diff)
	ambient := s.ObjectColor.MulScalar(ambientIntensity)
	return ambient.Add(diffuse).Alpha(1)
}
