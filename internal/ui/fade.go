package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases a single value between two points. Step is driven by a Fyne
// animation with a linear curve so the easing comes from the tween alone.
type Fade struct {
	tween    *gween.Tween
	seconds  float32
	elapsed  float32
	apply    func(float32)
	anim     *fyne.Animation
	finished bool
}

// NewFade creates a fade from -> to over duration calling apply with each value
func NewFade(from, to float32, duration time.Duration, apply func(float32)) *Fade {
	seconds := float32(duration.Seconds())
	f := &Fade{
		tween:   gween.New(from, to, seconds, ease.OutQuad),
		seconds: seconds,
		apply:   apply,
	}
	f.anim = fyne.NewAnimation(duration, f.Step)
	f.anim.Curve = fyne.AnimationLinear
	return f
}

// Step advances the tween to progress (0..1) of the duration
func (f *Fade) Step(progress float32) {
	now := progress * f.seconds
	value, finished := f.tween.Update(now - f.elapsed)
	f.elapsed = now
	f.finished = finished
	f.apply(value)
}

// Finished reports whether the tween reached its target
func (f *Fade) Finished() bool {
	return f.finished
}

// Start runs the fade on the Fyne animation loop
func (f *Fade) Start() {
	f.anim.Start()
}

// Stop halts the animation where it is
func (f *Fade) Stop() {
	f.anim.Stop()
}
