package spotlight

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is the tween length used when TweenOptions.Duration is zero.
const DefaultDuration = 300 * time.Millisecond

// TweenOptions controls how a TweenPair moves toward a new target.
type TweenOptions struct {
	// Animated selects a tween. When false the pair snaps to the target with
	// no intermediate frames.
	Animated bool
	// Duration of the tween. Zero means DefaultDuration.
	Duration time.Duration
	// Easing maps elapsed time to progress. Nil means ease.Linear.
	Easing ease.TweenFunc
}

func (o TweenOptions) withDefaults() TweenOptions {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.Easing == nil {
		o.Easing = ease.Linear
	}
	return o
}

// EasingFunc adapts a normalized easing curve (progress in [0, 1] mapped to
// eased progress) to the gween easing signature.
func EasingFunc(fn func(t float64) float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}

// --- AnimatedVec2 ---

// AnimatedVec2 is a 2D value that can be tweened. Both components are driven
// by a single progress tween, so X and Y always belong to the same frame.
//
// All methods must be called from the update goroutine.
type AnimatedVec2 struct {
	value    Vec2
	from, to Vec2
	tween    *gween.Tween

	listener   func(Vec2)
	listenerID uint32
	nextID     uint32
}

// NewAnimatedVec2 returns an idle AnimatedVec2 holding v.
func NewAnimatedVec2(v Vec2) *AnimatedVec2 {
	return &AnimatedVec2{value: v, from: v, to: v}
}

// Value returns the most recently computed frame.
func (a *AnimatedVec2) Value() Vec2 {
	return a.value
}

// Target returns the value the vector is heading toward (or resting at).
func (a *AnimatedVec2) Target() Vec2 {
	return a.to
}

// Animating reports whether a tween is in flight.
func (a *AnimatedVec2) Animating() bool {
	return a.tween != nil
}

// SetValue cancels any tween, jumps to v, and notifies the listener once.
func (a *AnimatedVec2) SetValue(v Vec2) {
	a.tween = nil
	a.from, a.to = v, v
	a.set(v)
}

// AnimateTo starts a tween from the current value to the target. A tween
// already in flight is replaced; the new one starts wherever the old one had
// reached. Durations are in seconds, matching Update's dt.
func (a *AnimatedVec2) AnimateTo(to Vec2, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		a.SetValue(to)
		return
	}
	a.from = a.value
	a.to = to
	a.tween = gween.New(0, 1, duration, fn)
}

// Stop cancels any tween and leaves the value where it is.
func (a *AnimatedVec2) Stop() {
	a.tween = nil
	a.from, a.to = a.value, a.value
}

// Update advances the tween by dt seconds and notifies the listener with the
// new frame. The final frame is exactly the target. Returns true when no
// tween remains in flight.
func (a *AnimatedVec2) Update(dt float32) bool {
	if a.tween == nil {
		return true
	}
	progress, finished := a.tween.Update(dt)
	if finished {
		a.tween = nil
		a.from = a.to
		a.set(a.to)
		return true
	}
	a.set(a.from.Lerp(a.to, float64(progress)))
	return false
}

func (a *AnimatedVec2) set(v Vec2) {
	a.value = v
	if a.listener != nil {
		a.listener(v)
	}
}

// ListenerHandle detaches a frame listener registered with AddListener.
type ListenerHandle struct {
	id     uint32
	target *AnimatedVec2
}

// AddListener registers fn to be called with every new frame. Only one
// listener is kept: registering a new one replaces the previous, whose handle
// becomes inert.
func (a *AnimatedVec2) AddListener(fn func(Vec2)) ListenerHandle {
	a.nextID++
	a.listener = fn
	a.listenerID = a.nextID
	return ListenerHandle{id: a.nextID, target: a}
}

// HasListener reports whether a frame listener is attached.
func (a *AnimatedVec2) HasListener() bool {
	return a.listener != nil
}

// Remove detaches the listener if it is still the one this handle registered.
// Calling Remove more than once is a no-op.
func (h ListenerHandle) Remove() {
	if h.target == nil || h.target.listenerID != h.id {
		return
	}
	h.target.listener = nil
	h.target.listenerID = 0
}

// --- TweenPair ---

// TweenPair animates a spotlight's size and position together. Both vectors
// are started in the same call with the same duration and easing, so they
// arrive on the same tick.
type TweenPair struct {
	Size     *AnimatedVec2
	Position *AnimatedVec2
}

// NewTweenPair returns a resting pair at the given size and position.
func NewTweenPair(size, position Vec2) *TweenPair {
	return &TweenPair{
		Size:     NewAnimatedVec2(size),
		Position: NewAnimatedVec2(position),
	}
}

// SetTarget moves the pair toward size and position. A nil target leaves the
// pair untouched and returns false. Size is always applied before position so
// a listener on Position sees the matching size.
func (p *TweenPair) SetTarget(size, position *Vec2, opts TweenOptions) bool {
	if size == nil || position == nil {
		return false
	}
	if !opts.Animated {
		p.Size.SetValue(*size)
		p.Position.SetValue(*position)
		return true
	}
	opts = opts.withDefaults()
	secs := float32(opts.Duration.Seconds())
	p.Size.AnimateTo(*size, secs, opts.Easing)
	p.Position.AnimateTo(*position, secs, opts.Easing)
	return true
}

// Update advances both tweens by dt seconds. Returns true when both are idle.
func (p *TweenPair) Update(dt float32) bool {
	sizeDone := p.Size.Update(dt)
	posDone := p.Position.Update(dt)
	return sizeDone && posDone
}

// Animating reports whether either vector is mid-tween.
func (p *TweenPair) Animating() bool {
	return p.Size.Animating() || p.Position.Animating()
}

// Stop cancels both tweens in place.
func (p *TweenPair) Stop() {
	p.Size.Stop()
	p.Position.Stop()
}
