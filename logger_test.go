package spotlight

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestSetLoggerNilIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestLoggerMountAndDispose(t *testing.T) {
	buf := captureLogs(t)
	m := NewMask(MaskConfig{Name: "intro", CanvasSize: &phoneCanvas})
	m.Dispose()

	out := buf.String()
	for _, want := range []string{"mask mounted", "mask unmounted", "mask=intro"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerBadPathWarnsOnce(t *testing.T) {
	buf := captureLogs(t)
	bad := PathString("M0,0 L5")
	gen := PathGeneratorFunc(func(MaskPathRequest) PathString { return bad })
	m := NewMask(MaskConfig{Generator: gen, CanvasSize: &phoneCanvas})
	defer m.Dispose()

	m.RegionAt(1, 1)
	m.RegionAt(2, 2)
	m.Layout(10, 10) // same bad path written again
	m.RegionAt(1, 1)

	if n := strings.Count(buf.String(), "does not parse"); n != 1 {
		t.Errorf("warnings = %d, want 1:\n%s", n, buf.String())
	}

	bad = "M0,0 L6"
	m.Layout(20, 20)
	m.RegionAt(1, 1)
	if n := strings.Count(buf.String(), "does not parse"); n != 2 {
		t.Errorf("warnings = %d after a new bad path, want 2", n)
	}
}
