package spotlight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "tap", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "snapshot", "label": "after-tap"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "tap" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptYAML(t *testing.T) {
	runner, err := LoadScript([]byte("steps:\n  - {action: drag, fromX: 1, fromY: 2, toX: 3, toY: 4, frames: 5}\n"))
	if err != nil {
		t.Fatal(err)
	}
	st := runner.steps[0]
	if st.FromX != 1 || st.FromY != 2 || st.ToX != 3 || st.ToY != 4 || st.Frames != 5 {
		t.Errorf("step = %+v", st)
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	for _, data := range []string{`{not valid`, `{"steps": []}`, `{"steps": [{"action": "jump"}]}`} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("LoadScript(%s) succeeded", data)
		}
	}
}

// frameLoop runs the per-frame work Host.Update does, minus the real pointer.
func frameLoop(t *testing.T, m *Mask, r *ScriptRunner, maxFrames int) {
	t.Helper()
	for i := 0; i < maxFrames && !r.Done(); i++ {
		if err := r.Step(m); err != nil {
			t.Fatalf("Step: %v", err)
		}
		m.processInjectedInput()
		m.Update(frame)
	}
	if !r.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
}

func TestScriptRunnerTap(t *testing.T) {
	m, presses := newRegionMask(t)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "tap", "x": 50, "y": 120},
		{"action": "wait", "frames": 2},
		{"action": "tap", "x": 200, "y": 500}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	frameLoop(t, m, r, 20)

	if len(*presses) != 2 {
		t.Fatalf("presses = %d, want 2", len(*presses))
	}
	if (*presses)[0].Region != RegionInner || (*presses)[1].Region != RegionMask {
		t.Errorf("regions = %v, %v", (*presses)[0].Region, (*presses)[1].Region)
	}
}

func TestScriptRunnerDragOffTarget(t *testing.T) {
	m, presses := newRegionMask(t)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 50, "fromY": 120, "toX": 200, "toY": 500, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	frameLoop(t, m, r, 20)
	if len(*presses) != 0 {
		t.Errorf("drag off the target fired %d callbacks", len(*presses))
	}
}

func TestScriptRunnerSnapshot(t *testing.T) {
	m := newSnapshotMask(t)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "first step"},
		{"action": "snapshot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SnapshotDir = t.TempDir()
	frameLoop(t, m, r, 10)

	for _, name := range []string{"000_first_step.png", "001_unlabeled.png"} {
		if _, err := os.Stat(filepath.Join(r.SnapshotDir, name)); err != nil {
			t.Errorf("missing snapshot %s: %v", name, err)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"  ", "unlabeled"},
		{"step-1.final", "step-1.final"},
		{"a/b c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
