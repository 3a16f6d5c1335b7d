package spotlight

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage avoids sampling the image edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// vectorSink replays a parsed outline into an Ebitengine vector path.
type vectorSink struct {
	p *vector.Path
}

func (s vectorSink) MoveTo(x, y float64) { s.p.MoveTo(float32(x), float32(y)) }
func (s vectorSink) LineTo(x, y float64) { s.p.LineTo(float32(x), float32(y)) }
func (s vectorSink) QuadTo(cx, cy, x, y float64) {
	s.p.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}
func (s vectorSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.p.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}
func (s vectorSink) Close() { s.p.Close() }

// vectorPath converts the surface outline to a vector.Path.
func (m *Mask) vectorPath() *vector.Path {
	var p vector.Path
	if d := m.pathData(); d != nil {
		replayPath(d, vectorSink{&p})
	}
	return &p
}

// Draw paints the backdrop with its hole onto dst using the even-odd rule.
// Nothing is drawn once the mask is disposed.
func (m *Mask) Draw(dst *ebiten.Image) {
	if m.disposed || m.surface.path == "" {
		return
	}
	p := m.vectorPath()
	m.vertices, m.indices = p.AppendVerticesAndIndicesForFilling(m.vertices[:0], m.indices[:0])
	if len(m.indices) == 0 {
		return
	}

	c := m.backdrop.toRGBA()
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range m.vertices {
		v := &m.vertices[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}

	dst.DrawTriangles(m.vertices, m.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleEvenOdd,
	})
}

// PollInput reads the mouse and touch screens and feeds HandlePointer.
// Pointer 0 is the left mouse button, or the next injected event when one is
// queued; touches use pointers 1-9.
func (m *Mask) PollInput() {
	if m.disposed {
		return
	}
	if !m.processInjectedInput() {
		mx, my := ebiten.CursorPosition()
		m.HandlePointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}

	m.touchBuf = ebiten.AppendTouchIDs(m.touchBuf[:0])
	var active [maxPointers]bool
	for _, tid := range m.touchBuf {
		slot := m.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		m.HandlePointer(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if m.touchUsed[i] && !active[i] {
			ps := &m.pointers[i]
			m.HandlePointer(i, ps.lastX, ps.lastY, false)
			m.touchUsed[i] = false
			m.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (m *Mask) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if m.touchUsed[i] && m.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !m.touchUsed[i] {
			m.touchUsed[i] = true
			m.touchMap[i] = tid
			return i
		}
	}
	return -1
}
