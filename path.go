package spotlight

import (
	"math"
	"strconv"
)

// PathString is an SVG path-data string ("M0,0H375V812H0V0Z..."). The engine
// never interprets it except to draw it and to hit test against it.
type PathString string

// MaskPathRequest is the input handed to a PathGenerator on every
// recomputation. All vectors are plain values read from the current frame.
type MaskPathRequest struct {
	Size     Vec2
	Position Vec2
	Canvas   Vec2
	Step     int // NoStep when the caller supplied none
}

// PathGenerator produces the mask outline for a request. Implementations must
// be pure: the same request always yields the same PathString.
type PathGenerator interface {
	Generate(req MaskPathRequest) PathString
}

// PathGeneratorFunc adapts an ordinary function to a PathGenerator.
type PathGeneratorFunc func(req MaskPathRequest) PathString

// Generate calls f(req).
func (f PathGeneratorFunc) Generate(req MaskPathRequest) PathString {
	return f(req)
}

// Defaults used by DefaultPathGenerator.
const (
	DefaultCornerRadius = 12
	DefaultPadding      = 12
)

const (
	// pathBufSize fits the default path for four-digit coordinates with
	// fractional parts, so the common case never grows the buffer.
	pathBufSize = 384
)

// RoundedRectPath cuts a rounded rectangle out of the full canvas. The hole is
// the target grown by Padding on every side, with quadratic corners of Radius.
type RoundedRectPath struct {
	Radius  float64
	Padding float64
}

// DefaultPathGenerator is the generator used when a Mask has none configured.
var DefaultPathGenerator PathGenerator = RoundedRectPath{
	Radius:  DefaultCornerRadius,
	Padding: DefaultPadding,
}

// Generate implements PathGenerator.
func (g RoundedRectPath) Generate(req MaskPathRequest) PathString {
	x := finite(req.Position.X) - g.Padding
	y := finite(req.Position.Y) - g.Padding
	w := finite(req.Size.X) + 2*g.Padding
	h := finite(req.Size.Y) + 2*g.Padding

	// Corners can never be larger than half the hole.
	r := g.Radius
	r = math.Min(r, math.Max(w, 0)/2)
	r = math.Min(r, math.Max(h, 0)/2)
	if r < 0 {
		r = 0
	}

	b := make(pathBuilder, 0, pathBufSize)
	b = b.canvas(req.Canvas)
	b = b.cmd('M').pair(x+r, y)
	b = b.cmd('H').num(x + w - r)
	b = b.cmd('Q').pair(x+w, y).sep().pair(x+w, y+r)
	b = b.cmd('V').num(y + h - r)
	b = b.cmd('Q').pair(x+w, y+h).sep().pair(x+w-r, y+h)
	b = b.cmd('H').num(x + r)
	b = b.cmd('Q').pair(x, y+h).sep().pair(x, y+h-r)
	b = b.cmd('V').num(y + r)
	b = b.cmd('Q').pair(x, y).sep().pair(x+r, y)
	b = b.cmd('Z')
	return PathString(b)
}

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// CirclePath cuts a circle out of the full canvas. The circle is centred on
// the target and large enough to enclose it, plus Padding.
type CirclePath struct {
	Padding float64
}

// Generate implements PathGenerator.
func (g CirclePath) Generate(req MaskPathRequest) PathString {
	w := math.Max(finite(req.Size.X), 0)
	h := math.Max(finite(req.Size.Y), 0)
	cx := finite(req.Position.X) + w/2
	cy := finite(req.Position.Y) + h/2
	r := math.Max(math.Hypot(w, h)/2+g.Padding, 0)
	k := r * kappa

	b := make(pathBuilder, 0, pathBufSize)
	b = b.canvas(req.Canvas)
	b = b.cmd('M').pair(cx+r, cy)
	b = b.cmd('C').pair(cx+r, cy+k).sep().pair(cx+k, cy+r).sep().pair(cx, cy+r)
	b = b.cmd('C').pair(cx-k, cy+r).sep().pair(cx-r, cy+k).sep().pair(cx-r, cy)
	b = b.cmd('C').pair(cx-r, cy-k).sep().pair(cx-k, cy-r).sep().pair(cx, cy-r)
	b = b.cmd('C').pair(cx+k, cy-r).sep().pair(cx+r, cy-k).sep().pair(cx+r, cy)
	b = b.cmd('Z')
	return PathString(b)
}

// StepPathGenerator picks a generator by walkthrough step. Requests whose step
// has no entry, or that carry NoStep, go to Fallback (DefaultPathGenerator
// when nil).
type StepPathGenerator struct {
	Steps    map[int]PathGenerator
	Fallback PathGenerator
}

// Generate implements PathGenerator.
func (g StepPathGenerator) Generate(req MaskPathRequest) PathString {
	if gen, ok := g.Steps[req.Step]; ok && gen != nil && req.Step != NoStep {
		return gen.Generate(req)
	}
	if g.Fallback != nil {
		return g.Fallback.Generate(req)
	}
	return DefaultPathGenerator.Generate(req)
}

// --- path text builder ---

// pathBuilder appends SVG path commands with shortest round-trip number
// formatting, so identical inputs always produce identical text.
type pathBuilder []byte

// canvas emits the closed outer rectangle covering the whole canvas.
func (b pathBuilder) canvas(size Vec2) pathBuilder {
	w := math.Max(finite(size.X), 0)
	h := math.Max(finite(size.Y), 0)
	b = b.cmd('M').pair(0, 0)
	b = b.cmd('H').num(w)
	b = b.cmd('V').num(h)
	b = b.cmd('H').num(0)
	b = b.cmd('V').num(0)
	return b.cmd('Z')
}

func (b pathBuilder) cmd(c byte) pathBuilder {
	return append(b, c)
}

func (b pathBuilder) sep() pathBuilder {
	return append(b, ' ')
}

func (b pathBuilder) num(v float64) pathBuilder {
	v = finite(v)
	if v == 0 {
		// Avoid "-0".
		return append(b, '0')
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

func (b pathBuilder) pair(x, y float64) pathBuilder {
	b = b.num(x)
	b = append(b, ',')
	return b.num(y)
}

// finite maps NaN and ±Inf to 0 so a broken input never leaks into the path.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
