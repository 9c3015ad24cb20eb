package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/clock-face/internal/config"
	"github.com/ytget/clock-face/internal/platform"
	"github.com/ytget/clock-face/internal/timer"
	clockwidget "github.com/ytget/clock-face/internal/widget"
)

// RootUI owns the host window, its two layers, the refresh scheduler and the
// clock widget, and drives them from the system tray menu
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	scheduler    *timer.Scheduler

	backdrop   *Backdrop
	background *ContainerLayer
	group      *ContainerLayer
	clock      *clockwidget.Widget
	store      *config.PlacementStore
}

// NewRootUI creates the main UI and enables the clock
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: NewLocalization(),
		scheduler:    timer.NewScheduler(fyne.Do),
		backdrop:     NewBackdrop(),
		background:   NewContainerLayer(container.NewWithoutLayout()),
		group:        NewContainerLayer(container.NewWithoutLayout()),
	}

	ui.localization.SetLanguage(settings.ResolvedLanguage())
	window.SetContent(container.NewStack(
		ui.backdrop.CanvasObject(),
		ui.background.Container(),
		ui.group.Container(),
	))
	window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.buildClock()
	ui.clock.Enable()
	ui.createMenu()

	log.Printf("RootUI initialized, placement file: %s", ui.store.Path())
	return ui
}

// Clock returns the clock widget
func (ui *RootUI) Clock() *clockwidget.Widget {
	return ui.clock
}

// buildClock creates the widget from the current settings
func (ui *RootUI) buildClock() {
	limits := ui.settings.GetScaleLimits()
	ui.store = config.NewPlacementStore(ui.settings.GetPlacementPath(), limits)
	ui.clock = clockwidget.New(clockwidget.Options{
		NewActor:    NewActor,
		WindowGroup: ui.group,
		Background:  ui.background,
		Profile:     ui.settings.GetLayerProfile(),
		Monitor:     NewCanvasMonitor(ui.window),
		Scheduler:   ui.scheduler,
		Store:       ui.store,
		Limits:      limits,
		Language:    ui.settings.ResolvedLanguage(),
	})
}

// createMenu installs the system tray menu when the driver supports one
func (ui *RootUI) createMenu() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		log.Printf("System tray not supported by this driver")
		return
	}
	desk.SetSystemTrayMenu(ui.buildMenu())
}

// buildMenu creates the tray menu for the current state and language
func (ui *RootUI) buildMenu() *fyne.Menu {
	text := ui.localization.GetText

	toggleLabel := text(KeyShowClock)
	if ui.clock.Enabled() {
		toggleLabel = text(KeyHideClock)
	}
	toggleItem := fyne.NewMenuItem(toggleLabel, ui.onToggleClock)
	resetItem := fyne.NewMenuItem(text(KeyResetPosition), ui.onResetPosition)
	resetItem.Disabled = !ui.clock.Enabled()
	folderItem := fyne.NewMenuItem(text(KeyOpenConfigFolder), ui.onOpenConfigFolder)
	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)

	languageItem := fyne.NewMenuItem(text(KeyLanguage), nil)
	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}
	languageItem.ChildMenu = languageMenu

	quitItem := fyne.NewMenuItem(text(KeyQuit), ui.onQuit)
	quitItem.IsQuit = true

	return fyne.NewMenu(text(KeyAppTitle),
		toggleItem,
		resetItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
		languageItem,
		folderItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}

// onTypedKey handles the window shortcuts: Q quits, F11 toggles full screen
// and Escape leaves it
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyQ:
		ui.onQuit()
	case fyne.KeyF11:
		ui.window.SetFullScreen(!ui.window.FullScreen())
	case fyne.KeyEscape:
		if ui.window.FullScreen() {
			ui.window.SetFullScreen(false)
		}
	}
}

// onToggleClock enables or disables the clock
func (ui *RootUI) onToggleClock() {
	if ui.clock.Enabled() {
		ui.clock.Disable()
	} else {
		ui.clock.Enable()
	}
	ui.createMenu()
}

// onResetPosition restores the default placement
func (ui *RootUI) onResetPosition() {
	ui.clock.ResetPlacement()
}

// onOpenConfigFolder reveals the directory holding the placement file
func (ui *RootUI) onOpenConfigFolder() {
	dir := filepath.Dir(ui.store.Path())
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Error creating config folder %s: %v", dir, err)
		return
	}
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Error opening config folder %s: %v", dir, err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved rebuilds the clock so new limits and the layer profile apply
func (ui *RootUI) onSettingsSaved() {
	wasEnabled := ui.clock.Enabled()
	ui.clock.Disable()
	ui.localization.SetLanguage(ui.settings.ResolvedLanguage())
	ui.buildClock()
	if wasEnabled {
		ui.clock.Enable()
	}
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.clock.SetLanguage(langCode)

	// Recreate menu to update texts and checkmarks
	ui.createMenu()
}

// onQuit tears the clock down before quitting
func (ui *RootUI) onQuit() {
	ui.Shutdown()
	ui.app.Quit()
}

// Shutdown disables the clock and cancels every timer
func (ui *RootUI) Shutdown() {
	ui.clock.Disable()
	ui.scheduler.Stop()
}
