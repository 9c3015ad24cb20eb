package ui

import (
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func TestBackdrop(t *testing.T) {
	test.NewApp()
	b := NewBackdrop()

	objects := b.content.Objects
	if len(objects) != 2 {
		t.Fatalf("Expected gradient and vignette, got %d objects", len(objects))
	}

	gradient, ok := objects[0].(*canvas.LinearGradient)
	if !ok {
		t.Fatalf("Expected the linear gradient at the bottom, got %T", objects[0])
	}
	if gradient.StartColor != GradientLightColor || gradient.EndColor != GradientDarkColor {
		t.Error("Gradient should run from the light to the dark tone")
	}
	if gradient.Angle != GradientAngle {
		t.Errorf("Expected angle %v, got %v", GradientAngle, gradient.Angle)
	}

	vignette, ok := objects[1].(*canvas.RadialGradient)
	if !ok {
		t.Fatalf("Expected the vignette on top, got %T", objects[1])
	}
	if vignette.StartColor != VignetteInnerColor || vignette.EndColor != VignetteEdgeColor {
		t.Error("Vignette should be clear in the middle and dark at the edges")
	}
}
