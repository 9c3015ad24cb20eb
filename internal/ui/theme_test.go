package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestClockTheme(t *testing.T) {
	th := NewClockTheme()

	if th.Color(theme.ColorNameSeparator, theme.VariantLight) != SeparatorColor {
		t.Error("Separator color should match the clock face lines")
	}
	if th.Size(theme.SizeNameSeparatorThickness) != SeparatorThickness {
		t.Error("Separator thickness should match the clock face lines")
	}
	if th.Size(theme.SizeNamePadding) != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Error("Other sizes should come from the default theme")
	}
	if th.Font(fyne.TextStyle{Bold: true}) == nil {
		t.Error("Expected a font resource")
	}
}
