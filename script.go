package spotlight

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a replay script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays taps, drags, waits and snapshots against a Mask, one
// action per frame. Attach it with RunConfig.Script or call Step yourself
// before Mask.PollInput.
type ScriptRunner struct {
	// SnapshotDir receives the PNGs written by "snapshot" steps.
	SnapshotDir string

	steps     []scriptStep
	cursor    int
	waitCount int
	shots     int
	done      bool
}

// LoadScript parses a replay script. Both YAML and JSON are accepted:
//
//	steps:
//	  - {action: snapshot, label: start}
//	  - {action: tap, x: 60, y: 120}
//	  - {action: wait, frames: 30}
//	  - {action: drag, fromX: 10, fromY: 10, toX: 50, toY: 50, frames: 6}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "tap", "drag", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{SnapshotDir: "snapshots", steps: s.Steps}, nil
}

// Done reports whether every step has run and all injected input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(m *Mask) error {
	if r.done {
		return nil
	}
	// Wait for pending injections to drain before advancing.
	if m.Pending() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		name := filepath.Join(r.SnapshotDir, fmt.Sprintf("%03d_%s.png", r.shots, sanitizeLabel(st.Label)))
		r.shots++
		if err := m.SavePNG(name); err != nil {
			return err
		}
	case "tap":
		m.InjectTap(st.X, st.Y)
	case "drag":
		m.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && m.Pending() == 0 {
		r.done = true
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
