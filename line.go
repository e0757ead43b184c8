package lume

// Line is a two-vertex primitive, drawn as a screen-space quad by the
// rasterizer.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 Vector) *Line {
	l := &Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return l
}

func (l *Line) SetColor(c Color) {
	l.V1.Color = c
	l.V2.Color = c
}

func (l *Line) BoundingBox() Box {
	min := l.V1.Position.Min(l.V2.Position)
	max := l.V1.Position.Max(l.V2.Position)
	return Box{min, max}
}
