package spotlight

import (
	"math"
	"testing"
)

func stubScreenSize(t *testing.T, v Vec2) {
	t.Helper()
	prev := screenSize
	screenSize = func() Vec2 { return v }
	t.Cleanup(func() { screenSize = prev })
}

func TestDeviceScreenSize(t *testing.T) {
	stubScreenSize(t, Vec2{X: 390, Y: 844})
	if got := DeviceScreenSize(); got != (Vec2{X: 390, Y: 844}) {
		t.Errorf("DeviceScreenSize = %v", got)
	}
}

func TestCanvasTrackerLayout(t *testing.T) {
	c := NewCanvasTracker(Vec2{X: 375, Y: 812})
	if c.Measured() {
		t.Error("Measured before Layout")
	}
	if c.Size() != (Vec2{X: 375, Y: 812}) {
		t.Errorf("initial size = %v", c.Size())
	}

	if c.Layout(375, 812) {
		t.Error("Layout with the initial size reported a change")
	}
	if !c.Measured() {
		t.Error("not Measured after Layout")
	}
	if !c.Layout(800, 600) {
		t.Error("Layout(800, 600) reported no change")
	}
	if c.Size() != (Vec2{X: 800, Y: 600}) {
		t.Errorf("size = %v", c.Size())
	}
}

func TestCanvasTrackerZeroAndInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero", 0, 0},
		{"negative", -10, -1},
		{"nan", math.NaN(), math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvasTracker(Vec2{X: 1, Y: 1})
			c.Layout(tt.w, tt.h)
			if c.Size() != (Vec2{}) {
				t.Errorf("Layout(%v, %v) size = %v, want zero", tt.w, tt.h, c.Size())
			}
		})
	}
}
