package spotlight

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Resizable lets the user resize the window; each new size reaches the
	// mask through Layout.
	Resizable bool

	// ClearColor fills the screen before DrawUnder. Zero leaves it black.
	ClearColor Color

	// Update, when set, runs each tick before input and tweens advance. It
	// is where a walkthrough sequencer calls SetTarget. Returning an error
	// (for example ebiten.Termination) stops the loop.
	Update func() error

	// DrawUnder paints the application content beneath the mask.
	DrawUnder func(screen *ebiten.Image)

	// Script, when set, replays scripted input ahead of the real pointer.
	// With ExitAfterScript the loop ends once the script is done.
	Script          *ScriptRunner
	ExitAfterScript bool
}

// Host adapts a Mask to ebiten.Game. Use it directly to embed a mask in an
// existing game loop, or call Run for a standalone window.
type Host struct {
	Mask   *Mask
	Config RunConfig
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.Config.Update != nil {
		if err := h.Config.Update(); err != nil {
			return err
		}
	}
	if sc := h.Config.Script; sc != nil {
		if err := sc.Step(h.Mask); err != nil {
			return err
		}
		if sc.Done() && h.Config.ExitAfterScript {
			return ebiten.Termination
		}
	}
	h.Mask.PollInput()
	h.Mask.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.Config.ClearColor != (Color{}) {
		screen.Fill(h.Config.ClearColor.toRGBA())
	}
	if h.Config.DrawUnder != nil {
		h.Config.DrawUnder(screen)
	}
	h.Mask.Draw(screen)
}

// Layout implements ebiten.Game. The outside size becomes the canvas size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.Mask.Layout(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the mask until the window closes or the
// update function returns an error. Returning ebiten.Termination from
// RunConfig.Update ends the loop with a nil error.
func Run(m *Mask, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&Host{Mask: m, Config: cfg})
}
