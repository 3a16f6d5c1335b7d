// Package spotlight draws the backdrop of a guided walkthrough: a full-screen
// overlay with a rounded hole cut around the element being highlighted, the
// hole gliding from target to target as the walkthrough advances. It runs on
// [Ebitengine].
//
// # Quick start
//
//	m := spotlight.NewMask(spotlight.MaskConfig{
//		Animated:     true,
//		OnPressMask:  func(spotlight.PressContext) { /* dismiss */ },
//		OnPressInner: func(spotlight.PressContext) { /* next step */ },
//	})
//	m.SetTarget(&spotlight.Vec2{X: 100, Y: 40}, &spotlight.Vec2{X: 20, Y: 100})
//	spotlight.Run(m, spotlight.RunConfig{Title: "Tour", Width: 375, Height: 812})
//
// To embed the mask in an existing game, call [Mask.Layout] from your Layout,
// [Mask.PollInput] and [Mask.Update] from Update, and [Mask.Draw] last in
// Draw; [Host] does exactly that.
//
// # Outline
//
// The outline is SVG path data produced by a [PathGenerator] from the
// current size, position, canvas size and step. [RoundedRectPath] is the
// default; [CirclePath] and [StepPathGenerator] are provided, and any
// function can be used through [PathGeneratorFunc]. The outline is filled
// with the even-odd rule, so the inner shape becomes a hole.
//
// # Animation
//
// Size and position are each an [AnimatedVec2], tweened together by a
// [TweenPair] using [gween]. Every frame of the position tween calls the
// mask's frame listener, which computes a fresh outline and stores it on the
// drawing surface directly; nothing else is rebuilt per frame. A new target
// set mid-tween starts from wherever the hole currently is.
//
// # Regions
//
// The backdrop and the highlighted target are separate pressable regions.
// Presses that hit neither, or hit a region without a callback, pass
// through: [Mask.Press] and [Mask.HandlePointer] return false.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package spotlight
