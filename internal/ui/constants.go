package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Base text sizes at scale 1.0
const (
	DayTextSize  float32 = 62
	DateTextSize float32 = 14
	TimeTextSize float32 = 15
	MinTextSize  float32 = 6
)

// Separator lines
const (
	SeparatorWidth     float32 = 180
	SeparatorThickness float32 = 1
)

// Text colors
var (
	DayColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	DateColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 179}
	TimeColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	SeparatorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 31}
)

// Drag affordance
const (
	BackdropIdleAlpha float32 = 0
	BackdropDragAlpha float32 = 64
	DragTextOpacity   float32 = 0.8
	FadeDuration              = 150 * time.Millisecond
)

// Backdrop color (alpha is animated)
var (
	BackdropColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// Window
const (
	DefaultWindowWidth  float32 = 1280
	DefaultWindowHeight float32 = 720
)

// Settings dialog
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)

// Desktop backdrop behind both layers
var (
	GradientLightColor = color.NRGBA{R: 56, G: 56, B: 61, A: 255} // Top-left
	GradientDarkColor  = color.NRGBA{R: 26, G: 26, B: 31, A: 255} // Bottom-right
	VignetteInnerColor = color.NRGBA{A: 0}
	VignetteEdgeColor  = color.NRGBA{A: 89}
)

// GradientAngle runs the backdrop gradient from top-left to bottom-right
const GradientAngle = 45
