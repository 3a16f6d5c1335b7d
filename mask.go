package spotlight

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"seehuhn.de/go/geom/path"
)

// MaskConfig configures a Mask. Zero values select the defaults noted on
// each field.
type MaskConfig struct {
	// Name identifies the mask in log output.
	Name string

	// Size and Position of the initial spotlight target. When either is nil
	// the spotlight starts as a zero-size hole at the origin.
	Size     *Vec2
	Position *Vec2

	// Animated, Duration and Easing are used by SetTarget. Duration defaults
	// to DefaultDuration and Easing to ease.Linear.
	Animated bool
	Duration time.Duration
	Easing   ease.TweenFunc

	// BackdropColor fills everything outside the hole. Zero selects
	// DefaultBackdropColor.
	BackdropColor Color

	// Generator produces the mask outline. Nil selects DefaultPathGenerator.
	Generator PathGenerator

	// Step is passed through to the generator. Nil means NoStep.
	Step *int

	// CanvasSize is assumed until the first Layout. Nil selects
	// DeviceScreenSize().
	CanvasSize *Vec2

	// OnPressMask fires when the backdrop is pressed; OnPressInner when the
	// spotlighted target is pressed. A nil callback lets presses on that
	// region pass through.
	OnPressMask  func(PressContext)
	OnPressInner func(PressContext)
}

// PressContext describes a press on one of a Mask's regions.
type PressContext struct {
	Region    RegionKind
	X, Y      float64
	Step      int
	PointerID int
}

// Drawable is everything a renderer needs to paint the mask.
type Drawable struct {
	Width, Height float64
	Fill          Color
	FillRule      FillRule
	Path          PathString
}

// Stats counts the work a Mask has done since it was created.
type Stats struct {
	GeneratorCalls int // paths computed
	PathWrites     int // paths stored on the surface
	Frames         int // ticks that advanced a tween
}

// surface is the retained drawable node. Only the frame listener and the
// refresh path write to it; Draw and hit tests read it.
type surface struct {
	path     PathString
	data     *path.Data
	parsed   bool
	parseErr error
	reported PathString // last bad path that was logged
}

// Mask is a full-canvas backdrop with a spotlight hole. The hole follows a
// TweenPair; every frame of the pair's position recomputes the outline and
// stores it directly on the surface.
//
// A Mask is not safe for concurrent use. Call its methods from the update
// goroutine (Ebitengine's Update and Draw both run there).
type Mask struct {
	name      string
	pair      *TweenPair
	canvas    *CanvasTracker
	generator PathGenerator
	step      int
	backdrop  Color
	tween     TweenOptions

	onPressMask  func(PressContext)
	onPressInner func(PressContext)

	surface  surface
	listener ListenerHandle
	disposed bool
	stats    Stats

	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchBuf  []ebiten.TouchID

	injectQueue []syntheticPointerEvent

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewMask creates and mounts a mask. The outline is computed once with the
// initial values and the frame listener is attached.
func NewMask(cfg MaskConfig) *Mask {
	var size, pos Vec2
	if cfg.Size != nil && cfg.Position != nil {
		size, pos = *cfg.Size, *cfg.Position
	}
	canvas := DeviceScreenSize()
	if cfg.CanvasSize != nil {
		canvas = *cfg.CanvasSize
	}
	step := NoStep
	if cfg.Step != nil {
		step = *cfg.Step
	}
	backdrop := cfg.BackdropColor
	if backdrop == (Color{}) {
		backdrop = DefaultBackdropColor
	}
	gen := cfg.Generator
	if gen == nil {
		gen = DefaultPathGenerator
	}

	m := &Mask{
		name:      cfg.Name,
		pair:      NewTweenPair(size, pos),
		canvas:    NewCanvasTracker(canvas),
		generator: gen,
		step:      step,
		backdrop:  backdrop,
		tween: TweenOptions{
			Animated: cfg.Animated,
			Duration: cfg.Duration,
			Easing:   cfg.Easing,
		}.withDefaults(),
		onPressMask:  cfg.OnPressMask,
		onPressInner: cfg.OnPressInner,
	}
	m.attach()
	m.refresh()
	Logger().Debug("spotlight: mask mounted",
		slog.String("mask", m.name),
		slog.Any("canvas", canvas),
		slog.Int("step", step))
	return m
}

// --- frame listener ---

// attach replaces the position listener with one bound to the current
// generator, step, and canvas size.
func (m *Mask) attach() {
	m.listener.Remove()
	gen, step, canvas := m.generator, m.step, m.canvas.Size()
	size := m.pair.Size
	m.listener = m.pair.Position.AddListener(func(pos Vec2) {
		m.write(m.generate(gen, MaskPathRequest{
			Size:     size.Value(),
			Position: pos,
			Canvas:   canvas,
			Step:     step,
		}))
	})
}

// refresh recomputes the outline from the current values, outside of any
// tween frame.
func (m *Mask) refresh() {
	m.write(m.generate(m.generator, m.request()))
}

func (m *Mask) request() MaskPathRequest {
	return MaskPathRequest{
		Size:     m.pair.Size.Value(),
		Position: m.pair.Position.Value(),
		Canvas:   m.canvas.Size(),
		Step:     m.step,
	}
}

func (m *Mask) generate(gen PathGenerator, req MaskPathRequest) PathString {
	m.stats.GeneratorCalls++
	return gen.Generate(req)
}

func (m *Mask) write(p PathString) {
	m.stats.PathWrites++
	if p == m.surface.path {
		return
	}
	m.surface.path = p
	m.surface.data = nil
	m.surface.parsed = false
	m.surface.parseErr = nil
}

// pathData parses the current outline on first use after each write.
func (m *Mask) pathData() *path.Data {
	s := &m.surface
	if !s.parsed {
		s.data, s.parseErr = ParsePath(s.path)
		s.parsed = true
		if s.parseErr != nil && s.reported != s.path {
			s.reported = s.path
			Logger().Warn("spotlight: mask path does not parse",
				slog.String("mask", m.name),
				slog.String("error", s.parseErr.Error()))
		}
	}
	return s.data
}

// --- targets and dependencies ---

// SetTarget moves the spotlight to the given size and position using the
// mask's animation settings. A nil size or position is ignored and the mask
// keeps its current state. Returns whether a move was started.
func (m *Mask) SetTarget(size, position *Vec2) bool {
	return m.SetTargetWith(size, position, m.tween)
}

// SetTargetWith is SetTarget with explicit animation settings for this move.
func (m *Mask) SetTargetWith(size, position *Vec2, opts TweenOptions) bool {
	if m.disposed {
		return false
	}
	if !m.pair.SetTarget(size, position, opts) {
		return false
	}
	Logger().Debug("spotlight: retarget",
		slog.String("mask", m.name),
		slog.Any("size", *size),
		slog.Any("position", *position),
		slog.Bool("animated", opts.Animated))
	return true
}

// SetAnimation changes the settings used by later SetTarget calls. A tween
// already in flight keeps its original settings.
func (m *Mask) SetAnimation(opts TweenOptions) {
	if opts.Animated {
		opts = opts.withDefaults()
	}
	m.tween = opts
}

// SetStep changes the step passed to the generator.
func (m *Mask) SetStep(step int) {
	if m.disposed || step == m.step {
		return
	}
	m.step = step
	m.attach()
	m.refresh()
}

// SetGenerator swaps the outline generator. Nil restores the default.
func (m *Mask) SetGenerator(g PathGenerator) {
	if m.disposed {
		return
	}
	if g == nil {
		g = DefaultPathGenerator
	}
	m.generator = g
	m.attach()
	m.refresh()
}

// SetBackdropColor changes the fill color.
func (m *Mask) SetBackdropColor(c Color) {
	m.backdrop = c
}

// SetPressHandlers replaces the region callbacks. Nil lets presses pass through.
func (m *Mask) SetPressHandlers(onMask, onInner func(PressContext)) {
	m.onPressMask = onMask
	m.onPressInner = onInner
}

// Layout records the measured size of the host area.
func (m *Mask) Layout(width, height float64) {
	if m.disposed || !m.canvas.Layout(width, height) {
		return
	}
	Logger().Debug("spotlight: layout",
		slog.String("mask", m.name),
		slog.Float64("width", width),
		slog.Float64("height", height))
	m.attach()
	m.refresh()
}

// Update advances the spotlight tweens by dt seconds.
func (m *Mask) Update(dt float32) {
	if m.disposed || !m.pair.Animating() {
		return
	}
	m.stats.Frames++
	m.pair.Update(dt)
}

// Dispose unmounts the mask: the frame listener is detached and any tween in
// flight is dropped. Later calls on the mask are no-ops.
func (m *Mask) Dispose() {
	if m.disposed {
		return
	}
	m.listener.Remove()
	m.pair.Stop()
	m.disposed = true
	m.onPressMask = nil
	m.onPressInner = nil
	m.vertices = nil
	m.indices = nil
	m.injectQueue = nil
	Logger().Debug("spotlight: mask unmounted", slog.String("mask", m.name))
}

// --- accessors ---

// Name returns the name given in MaskConfig.
func (m *Mask) Name() string { return m.name }

// IsDisposed reports whether Dispose has been called.
func (m *Mask) IsDisposed() bool { return m.disposed }

// Size returns the current spotlight size.
func (m *Mask) Size() Vec2 { return m.pair.Size.Value() }

// Position returns the current spotlight position.
func (m *Mask) Position() Vec2 { return m.pair.Position.Value() }

// CanvasSize returns the current canvas size.
func (m *Mask) CanvasSize() Vec2 { return m.canvas.Size() }

// Step returns the step passed to the generator, or NoStep.
func (m *Mask) Step() int { return m.step }

// Animating reports whether the spotlight is mid-tween.
func (m *Mask) Animating() bool { return m.pair.Animating() }

// Path returns the outline currently on the surface.
func (m *Mask) Path() PathString { return m.surface.path }

// Stats returns the work counters.
func (m *Mask) Stats() Stats { return m.stats }

// Drawable describes the surface as it should be painted now.
func (m *Mask) Drawable() Drawable {
	c := m.canvas.Size()
	return Drawable{
		Width:    c.X,
		Height:   c.Y,
		Fill:     m.backdrop,
		FillRule: FillRuleEvenOdd,
		Path:     m.surface.path,
	}
}

// --- regions ---

// InnerBounds is the pressable area of the spotlighted target.
func (m *Mask) InnerBounds() Rect {
	s, p := m.pair.Size.Value(), m.pair.Position.Value()
	return Rect{X: p.X, Y: p.Y, Width: s.X, Height: s.Y}
}

// MaskShape is the pressable backdrop: the filled part of the outline.
func (m *Mask) MaskShape() HitShape {
	return HitPath{Data: m.pathData(), Rule: FillRuleEvenOdd}
}

// RegionAt reports which region contains (x, y). Points in the padding
// between the target and the edge of the hole, and points off the canvas,
// belong to no region.
func (m *Mask) RegionAt(x, y float64) RegionKind {
	if m.disposed {
		return RegionNone
	}
	c := m.canvas.Size()
	if x < 0 || y < 0 || x > c.X || y > c.Y {
		return RegionNone
	}
	if m.InnerBounds().Contains(x, y) {
		return RegionInner
	}
	if m.MaskShape().Contains(x, y) {
		return RegionMask
	}
	return RegionNone
}

// Press fires the callback for the region at (x, y). It returns false when
// the press passes through: no region was hit or the region has no callback.
func (m *Mask) Press(x, y float64) bool {
	return m.dispatch(m.RegionAt(x, y), x, y, 0)
}

func (m *Mask) dispatch(region RegionKind, x, y float64, pointerID int) bool {
	var fn func(PressContext)
	switch region {
	case RegionMask:
		fn = m.onPressMask
	case RegionInner:
		fn = m.onPressInner
	}
	if fn == nil {
		return false
	}
	fn(PressContext{Region: region, X: x, Y: y, Step: m.step, PointerID: pointerID})
	return true
}

// HandlePointer feeds one pointer sample. A press fires when the pointer is
// released over the same region it went down in. Returns whether a callback
// fired.
func (m *Mask) HandlePointer(pointerID int, x, y float64, pressed bool) bool {
	if pointerID < 0 || pointerID >= maxPointers || m.disposed {
		return false
	}
	ps := &m.pointers[pointerID]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.region = m.RegionAt(x, y)
	case !pressed && ps.down:
		ps.down = false
		region := ps.region
		ps.region = RegionNone
		ps.lastX, ps.lastY = x, y
		if region != RegionNone && m.RegionAt(x, y) == region {
			return m.dispatch(region, x, y, pointerID)
		}
		return false
	}
	ps.lastX, ps.lastY = x, y
	return false
}
