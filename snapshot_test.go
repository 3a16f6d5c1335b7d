package spotlight

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func newSnapshotMask(t *testing.T) *Mask {
	t.Helper()
	size, pos := Vec2{X: 20, Y: 20}, Vec2{X: 40, Y: 40}
	m := NewMask(MaskConfig{
		Size:       &size,
		Position:   &pos,
		CanvasSize: &Vec2{X: 100, Y: 100},
	})
	t.Cleanup(m.Dispose)
	return m
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestSnapshot(t *testing.T) {
	m := newSnapshotMask(t)
	img, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 100x100", b)
	}

	if a := alphaAt(img, 50, 50); a != 0 {
		t.Errorf("hole alpha = %d, want 0", a)
	}
	for _, p := range []image.Point{{5, 5}, {95, 95}, {50, 10}, {10, 50}} {
		if a := alphaAt(img, p.X, p.Y); a < 170 || a > 190 {
			t.Errorf("backdrop alpha at %v = %d, want about 179", p, a)
		}
	}
}

func TestSnapshotFollowsTarget(t *testing.T) {
	m := newSnapshotMask(t)
	size, pos := Vec2{X: 10, Y: 10}, Vec2{X: 5, Y: 5}
	m.SetTargetWith(&size, &pos, TweenOptions{})

	img, err := m.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if a := alphaAt(img, 10, 10); a != 0 {
		t.Errorf("new hole alpha = %d, want 0", a)
	}
	if a := alphaAt(img, 50, 50); a == 0 {
		t.Error("old hole still cut out")
	}
}

func TestSnapshotEmptyCanvas(t *testing.T) {
	m := NewMask(MaskConfig{CanvasSize: &Vec2{}})
	defer m.Dispose()
	if _, err := m.Snapshot(); err == nil {
		t.Error("Snapshot of an empty canvas succeeded")
	}
}

func TestSnapshotDisposed(t *testing.T) {
	m := newSnapshotMask(t)
	m.Dispose()
	img, err := m.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if a := alphaAt(img, 5, 5); a != 0 {
		t.Errorf("disposed mask drew alpha %d", a)
	}
}

func TestSavePNG(t *testing.T) {
	m := newSnapshotMask(t)
	name := filepath.Join(t.TempDir(), "nested", "mask.png")
	if err := m.SavePNG(name); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}
	if a := alphaAt(img, 50, 50); a != 0 {
		t.Errorf("hole alpha = %d, want 0", a)
	}
}
