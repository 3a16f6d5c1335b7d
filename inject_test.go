package spotlight

import "testing"

func TestInjectTap(t *testing.T) {
	m, presses := newRegionMask(t)
	m.InjectTap(50, 120)
	if m.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", m.Pending())
	}

	if !m.processInjectedInput() {
		t.Fatal("press not consumed")
	}
	if len(*presses) != 0 {
		t.Error("callback fired on press")
	}
	m.processInjectedInput()
	if len(*presses) != 1 || (*presses)[0].Region != RegionInner {
		t.Fatalf("presses = %+v", *presses)
	}
	if m.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
}

func TestInjectDragFrames(t *testing.T) {
	m, _ := newRegionMask(t)
	m.InjectDrag(0, 0, 30, 0, 5)
	if m.Pending() != 5 {
		t.Fatalf("pending = %d, want 5", m.Pending())
	}
	wantX := []float64{0, 7.5, 15, 22.5, 30}
	for i, x := range wantX {
		if evt := m.injectQueue[i]; evt.x != x {
			t.Errorf("event %d x = %v, want %v", i, evt.x, x)
		}
	}
	if last := m.injectQueue[4]; last.pressed || last.x != 30 {
		t.Errorf("last event = %+v, want release at 30", last)
	}

	m.InjectDrag(0, 0, 1, 1, 0)
	if m.Pending() != 7 {
		t.Errorf("pending = %d, want 7 (minimum two frames)", m.Pending())
	}
}

func TestInjectClearedOnDispose(t *testing.T) {
	m, _ := newRegionMask(t)
	m.InjectTap(1, 1)
	m.Dispose()
	if m.Pending() != 0 {
		t.Errorf("pending = %d after Dispose", m.Pending())
	}
}
