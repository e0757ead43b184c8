package lume

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// EmptyBox is the identity for Extend.
var EmptyBox = Box{}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func (a Box) Extend(b Box) Box {
	if a == EmptyBox {
		return b
	}
	if b == EmptyBox {
		return a
	}
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

// Corners returns the eight corner points of the box.
func (a Box) Corners() []Vector {
	x0, y0, z0 := a.Min.X, a.Min.Y, a.Min.Z
	x1, y1, z1 := a.Max.X, a.Max.Y, a.Max.Z
	return []Vector{
		{x0, y0, z0},
		{x1, y0, z0},
		{x0, y1, z0},
		{x1, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x0, y1, z1},
		{x1, y1, z1},
	}
}

func (a Box) Contains(v Vector) bool {
	return v.X >= a.Min.X && v.X <= a.Max.X &&
		v.Y >= a.Min.Y && v.Y <= a.Max.Y &&
		v.Z >= a.Min.Z && v.Z <= a.Max.Z
}
