package spotlight

import "github.com/hajimehoshi/ebiten/v2"

// fallbackScreenSize is used when no monitor can be queried.
var fallbackScreenSize = Vec2{X: 375, Y: 812}

// screenSize reports the device screen in device-independent pixels.
// Replaced in tests.
var screenSize = func() Vec2 {
	m := ebiten.Monitor()
	if m == nil {
		return fallbackScreenSize
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return fallbackScreenSize
	}
	return Vec2{X: float64(w), Y: float64(h)}
}

// DeviceScreenSize returns the size a Mask assumes before its first layout.
func DeviceScreenSize() Vec2 {
	return screenSize()
}

// CanvasTracker holds the measured size of the area the mask covers. Until
// the host reports a layout it holds the default it was created with.
type CanvasTracker struct {
	size     Vec2
	measured bool
}

// NewCanvasTracker returns a tracker reporting initial until the first Layout.
func NewCanvasTracker(initial Vec2) *CanvasTracker {
	return &CanvasTracker{size: initial}
}

// Size returns the current canvas size.
func (c *CanvasTracker) Size() Vec2 {
	return c.size
}

// Measured reports whether Layout has been called at least once.
func (c *CanvasTracker) Measured() bool {
	return c.measured
}

// Layout records a measured width and height and reports whether the size
// changed. Zero dimensions are accepted and produce a zero-area canvas;
// negative or non-finite values are treated as zero.
func (c *CanvasTracker) Layout(width, height float64) bool {
	next := Vec2{X: nonNegative(width), Y: nonNegative(height)}
	c.measured = true
	if next == c.size {
		return false
	}
	c.size = next
	return true
}

func nonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}
