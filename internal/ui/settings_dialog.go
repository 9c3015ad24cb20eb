package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clock-face/internal/config"
	"github.com/ytget/clock-face/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	minScaleEntry  *widget.Entry
	maxScaleEntry  *widget.Entry
	stepEntry      *widget.Entry
	profileSelect  *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.minScaleEntry = widget.NewEntry()
	sd.minScaleEntry.SetPlaceHolder("0.1-1.0")

	sd.maxScaleEntry = widget.NewEntry()
	sd.maxScaleEntry.SetPlaceHolder("1.0-10.0")

	sd.stepEntry = widget.NewEntry()
	sd.stepEntry.SetPlaceHolder("0.01-1.0")

	profileOptions := []string{}
	for _, profile := range sd.settings.GetLayerProfileOptions() {
		profileOptions = append(profileOptions, string(profile))
	}
	sd.profileSelect = widget.NewSelect(profileOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(text(KeyClockSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyMinScale)+":"),
		sd.minScaleEntry,

		widget.NewLabel(text(KeyMaxScale)+":"),
		sd.maxScaleEntry,

		widget.NewLabel(text(KeyScaleStep)+":"),
		sd.stepEntry,

		widget.NewLabel(text(KeyLayerProfile)+":"),
		sd.profileSelect,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	limits := sd.settings.GetScaleLimits()
	sd.minScaleEntry.SetText(formatScale(limits.Min))
	sd.maxScaleEntry.SetText(formatScale(limits.Max))
	sd.stepEntry.SetText(formatScale(limits.Step))
	sd.profileSelect.SetSelected(string(sd.settings.GetLayerProfile()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply validates the form and writes it to settings; unparsable numbers are skipped
func (sd *SettingsDialog) apply() {
	if v, err := strconv.ParseFloat(sd.minScaleEntry.Text, 64); err == nil {
		sd.settings.SetMinScale(v)
	}
	if v, err := strconv.ParseFloat(sd.maxScaleEntry.Text, 64); err == nil {
		sd.settings.SetMaxScale(v)
	}
	if v, err := strconv.ParseFloat(sd.stepEntry.Text, 64); err == nil {
		sd.settings.SetScaleStep(v)
	}

	if sd.profileSelect.Selected != "" {
		sd.settings.SetLayerProfile(model.LayerProfile(sd.profileSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
