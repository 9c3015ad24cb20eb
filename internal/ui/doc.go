package ui

// Package ui hosts the clock face in a Fyne application: the clock face widget
// and its actor adapter, the stacking layers, the theme, the system tray menu,
// the settings dialog and UI localization.
