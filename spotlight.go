package spotlight

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for sizes, positions, and canvas dimensions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Lerp returns the point at fraction t between v and to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
	}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// DefaultBackdropColor is used when a Mask is configured with a zero Color.
var DefaultBackdropColor = Color{0, 0, 0, 0.7}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// FillRule selects how overlapping sub-paths of a PathString are filled.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota // non-zero winding
	FillRuleEvenOdd                 // alternate fill and hole per crossing
)

// String returns the SVG attribute value for the rule.
func (f FillRule) String() string {
	if f == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// NoStep is the Step value meaning "no walkthrough step was supplied".
const NoStep = -1

// RegionKind identifies which pressable region of a Mask was hit.
type RegionKind uint8

const (
	RegionNone  RegionKind = iota // outside every region; the press passes through
	RegionMask                    // the backdrop
	RegionInner                   // the spotlighted target
)

// String returns a short name for the region.
func (k RegionKind) String() string {
	switch k {
	case RegionMask:
		return "mask"
	case RegionInner:
		return "inner"
	default:
		return "none"
	}
}
