package spotlight

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// ggSink replays a parsed outline into a gg drawing context.
type ggSink struct {
	dc *gg.Context
}

func (s ggSink) MoveTo(x, y float64)          { s.dc.MoveTo(x, y) }
func (s ggSink) LineTo(x, y float64)          { s.dc.LineTo(x, y) }
func (s ggSink) QuadTo(cx, cy, x, y float64)  { s.dc.QuadraticTo(cx, cy, x, y) }
func (s ggSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (s ggSink) Close() { s.dc.ClosePath() }

// Snapshot renders the current drawable on the CPU. The image is the size of
// the canvas rounded up to whole pixels; everything outside the backdrop is
// transparent.
func (m *Mask) Snapshot() (image.Image, error) {
	dc, err := m.snapshotContext()
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG renders the current drawable and writes it to a PNG file,
// creating parent directories as needed.
func (m *Mask) SavePNG(name string) error {
	dc, err := m.snapshotContext()
	if err != nil {
		return err
	}
	defer dc.Close()
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
		}
	}
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", name, err)
	}
	return nil
}

func (m *Mask) snapshotContext() (*gg.Context, error) {
	d := m.Drawable()
	w := int(math.Ceil(d.Width))
	h := int(math.Ceil(d.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("snapshot: empty canvas %vx%v", d.Width, d.Height)
	}

	dc := gg.NewContext(w, h)
	data := m.pathData()
	if m.disposed || data == nil || len(data.Cmds) == 0 {
		return dc, nil
	}
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetRGBA(d.Fill.R, d.Fill.G, d.Fill.B, d.Fill.A)
	replayPath(data, ggSink{dc})
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: fill: %w", err)
	}
	return dc, nil
}
