package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ClockTheme is a dark theme matching the clock face background
type ClockTheme struct{}

// NewClockTheme creates a new clock theme
func NewClockTheme() fyne.Theme {
	return &ClockTheme{}
}

// Color returns theme colors
func (t *ClockTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 41, G: 41, B: 46, A: 255} // Mid tone of the desktop gradient
	case theme.ColorNameForeground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	case theme.ColorNameSeparator:
		return SeparatorColor
	}

	// Use dark defaults for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ClockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ClockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ClockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return SeparatorThickness
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	}

	return theme.DefaultTheme().Size(name)
}
