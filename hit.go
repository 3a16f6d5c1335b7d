package spotlight

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/render"
)

// HitShape is a pressable area in canvas coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// hitCoverage is the minimum pixel coverage that counts as a hit.
const hitCoverage = 0.5

// HitPath is the filled area of a parsed path under a fill rule. Points are
// tested by rasterising the one-pixel cell that contains them, so curves and
// holes behave exactly as drawn.
type HitPath struct {
	Data *path.Data
	Rule FillRule
}

// Contains reports whether the pixel cell around (x, y) is at least half
// covered by the path.
func (h HitPath) Contains(x, y float64) bool {
	if h.Data == nil || len(h.Data.Cmds) == 0 {
		return false
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	px, py := math.Floor(x), math.Floor(y)
	r := render.NewRasterizer(rect.Rect{LLx: px, LLy: py, URx: px + 1, URy: py + 1})

	var cov float32
	emit := func(_, _ int, coverage []float32) {
		for _, c := range coverage {
			if c > cov {
				cov = c
			}
		}
	}
	if h.Rule == FillRuleEvenOdd {
		r.FillEvenOdd(h.Data, emit)
	} else {
		r.FillNonZero(h.Data, emit)
	}
	return cov >= hitCoverage
}

// --- pointer tracking ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState follows one pointer from press to release so a press only
// counts when it is released over the region it started in.
type pointerState struct {
	down   bool
	region RegionKind
	lastX  float64
	lastY  float64
}
