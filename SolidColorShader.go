package lume

// SolidColorShader renders everything in one color. It is used for wireframe
// and line rendering, where lighting carries no information.
type SolidColorShader struct {
	Model      Matrix
	View       Matrix
	Projection Matrix
	Color      Color
}

func NewSolidColorShader(view, projection Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{Identity(), view, projection, color}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	v.World = s.Model.MulPosition(v.Position)
	v.Output = s.Projection.Mul(s.View).MulPositionW(v.World)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
