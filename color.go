package lume

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color holds linear RGBA components. Values are not clamped; shading output
// may exceed [0, 1] and is only clamped on conversion to 8-bit.
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

func Gray(x float64) Color {
	return Color{x, x, x, 1}
}

func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		float64(r) / 65535,
		float64(g) / 65535,
		float64(b) / 65535,
		float64(a) / 65535}
}

// HexColor parses "#abc", "#aabbcc" or "#aabbccdd", with or without the "#".
func HexColor(x string) Color {
	x = strings.Trim(x, "#")
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	const d = 255
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// NRGBA converts to 8-bit non-premultiplied color, clamping each component.
func (c Color) NRGBA() color.NRGBA {
	r := uint8(math.Max(0, math.Min(255, c.R*255)))
	g := uint8(math.Max(0, math.Min(255, c.G*255)))
	b := uint8(math.Max(0, math.Min(255, c.B*255)))
	a := uint8(math.Max(0, math.Min(255, c.A*255)))
	return color.NRGBA{r, g, b, a}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A}
}

// Mul multiplies component-wise, leaving alpha untouched.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}
