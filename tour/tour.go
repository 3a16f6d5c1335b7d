package tour

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/spotlight"
)

// Shape names accepted in Step.Shape.
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid tour")

// Size is a width and height.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Target is the rectangle to spotlight, in canvas coordinates.
type Target struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size returns the target's size as a spotlight vector.
func (t Target) Size() spotlight.Vec2 {
	return spotlight.Vec2{X: t.Width, Y: t.Height}
}

// Position returns the target's top-left corner as a spotlight vector.
func (t Target) Position() spotlight.Vec2 {
	return spotlight.Vec2{X: t.X, Y: t.Y}
}

// Step is one stop of the walkthrough. Animated, Duration and Easing override
// the tour-wide values when set.
type Step struct {
	Name     string        `yaml:"name"`
	Target   Target        `yaml:"target"`
	Shape    string        `yaml:"shape,omitempty"`
	Padding  *float64      `yaml:"padding,omitempty"`
	Animated *bool         `yaml:"animated,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Easing   string        `yaml:"easing,omitempty"`
}

// Tour is a decoded tour file.
type Tour struct {
	Canvas   *Size         `yaml:"canvas,omitempty"`
	Backdrop string        `yaml:"backdrop,omitempty"`
	Animated *bool         `yaml:"animated,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Easing   string        `yaml:"easing,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// Load reads and validates a tour file.
func Load(name string) (*Tour, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load tour: %w", err)
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load tour %s: %w", name, err)
	}
	return t, nil
}

// Decode reads a tour from YAML and validates it.
func Decode(r io.Reader) (*Tour, error) {
	var t Tour
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode tour: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every step can be shown.
func (t *Tour) Validate() error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalid)
	}
	if t.Canvas != nil && (t.Canvas.Width < 0 || t.Canvas.Height < 0) {
		return fmt.Errorf("%w: negative canvas size", ErrInvalid)
	}
	if t.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalid)
	}
	if t.Backdrop != "" {
		if _, err := ParseColor(t.Backdrop); err != nil {
			return fmt.Errorf("%w: backdrop: %v", ErrInvalid, err)
		}
	}
	if _, err := EasingByName(t.Easing); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for i, s := range t.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalid, i, s.Name, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	if s.Target.Width < 0 || s.Target.Height < 0 {
		return errors.New("negative target size")
	}
	if s.Duration < 0 {
		return errors.New("negative duration")
	}
	if s.Padding != nil && *s.Padding < 0 {
		return errors.New("negative padding")
	}
	switch s.Shape {
	case "", ShapeRect, ShapeCircle:
	default:
		return fmt.Errorf("unknown shape %q", s.Shape)
	}
	if _, err := EasingByName(s.Easing); err != nil {
		return err
	}
	return nil
}

// BackdropColor returns the tour's backdrop, or the zero Color (which
// spotlight.NewMask replaces with its default) when none is set.
func (t *Tour) BackdropColor() spotlight.Color {
	c, err := ParseColor(t.Backdrop)
	if err != nil {
		return spotlight.Color{}
	}
	return c
}

// CanvasSize returns the declared canvas, or nil to use the device screen.
func (t *Tour) CanvasSize() *spotlight.Vec2 {
	if t.Canvas == nil {
		return nil
	}
	return &spotlight.Vec2{X: t.Canvas.Width, Y: t.Canvas.Height}
}

// TweenOptions resolves how the spotlight should travel to step i.
func (t *Tour) TweenOptions(i int) spotlight.TweenOptions {
	s := t.Steps[i]
	opts := spotlight.TweenOptions{Animated: true, Duration: t.Duration}
	if t.Animated != nil {
		opts.Animated = *t.Animated
	}
	if s.Animated != nil {
		opts.Animated = *s.Animated
	}
	if s.Duration > 0 {
		opts.Duration = s.Duration
	}
	name := t.Easing
	if s.Easing != "" {
		name = s.Easing
	}
	opts.Easing, _ = EasingByName(name)
	return opts
}

// Generator builds a path generator that draws each step with its declared
// shape. The step index passed to the mask selects the entry.
func (t *Tour) Generator() spotlight.PathGenerator {
	steps := make(map[int]spotlight.PathGenerator, len(t.Steps))
	for i, s := range t.Steps {
		pad := float64(spotlight.DefaultPadding)
		if s.Padding != nil {
			pad = *s.Padding
		}
		switch s.Shape {
		case ShapeCircle:
			steps[i] = spotlight.CirclePath{Padding: pad}
		default:
			steps[i] = spotlight.RoundedRectPath{Radius: spotlight.DefaultCornerRadius, Padding: pad}
		}
	}
	return spotlight.StepPathGenerator{Steps: steps}
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// EasingByName resolves a gween easing by its camel-case name ("inOutQuad").
// The empty name is linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}
