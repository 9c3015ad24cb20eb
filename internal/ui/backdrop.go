package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Backdrop is the dark desktop surface the clock is drawn on: a diagonal
// gradient darkened towards the edges by a radial vignette
type Backdrop struct {
	gradient *canvas.LinearGradient
	vignette *canvas.RadialGradient
	content  *fyne.Container
}

// NewBackdrop creates a backdrop that fills its container
func NewBackdrop() *Backdrop {
	b := &Backdrop{
		gradient: canvas.NewLinearGradient(GradientLightColor, GradientDarkColor, GradientAngle),
		vignette: canvas.NewRadialGradient(VignetteInnerColor, VignetteEdgeColor),
	}
	b.content = container.NewStack(b.gradient, b.vignette)
	return b
}

// CanvasObject returns the object to put at the bottom of the window
func (b *Backdrop) CanvasObject() fyne.CanvasObject {
	return b.content
}
