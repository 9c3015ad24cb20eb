package config

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/clock-face/internal/model"
	"github.com/ytget/clock-face/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMinScale      = "min_scale"
	KeyMaxScale      = "max_scale"
	KeyScaleStep     = "scale_step"
	KeyLayerProfile  = "layer_profile"
	KeyLanguage      = "app_language"
	KeyPlacementPath = "placement_path"
)

// Default values
const (
	DefaultLayerProfile = model.LayerDesktopBackground
	DefaultLanguage     = "system"
	FallbackLanguage    = "en"
)

// Bounds accepted by the setters
const (
	MinScaleFloor   = 0.1
	MinScaleCeiling = 1.0
	MaxScaleFloor   = 1.0
	MaxScaleCeiling = 10.0
	StepFloor       = 0.01
	StepCeiling     = 1.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetScaleLimits returns the configured scale bounds and scroll step
func (s *Settings) GetScaleLimits() model.ScaleLimits {
	prefs := s.app.Preferences()
	limits := model.ScaleLimits{
		Min:  prefs.FloatWithFallback(KeyMinScale, model.DefaultMinScale),
		Max:  prefs.FloatWithFallback(KeyMaxScale, model.DefaultMaxScale),
		Step: prefs.FloatWithFallback(KeyScaleStep, model.DefaultStep),
	}
	if !limits.Valid() {
		log.Printf("Invalid scale limits %+v, using defaults", limits)
		return model.DefaultScaleLimits()
	}
	return limits
}

// SetMinScale sets the smallest allowed scale
func (s *Settings) SetMinScale(v float64) {
	s.app.Preferences().SetFloat(KeyMinScale, clamp(v, MinScaleFloor, MinScaleCeiling))
}

// SetMaxScale sets the largest allowed scale
func (s *Settings) SetMaxScale(v float64) {
	s.app.Preferences().SetFloat(KeyMaxScale, clamp(v, MaxScaleFloor, MaxScaleCeiling))
}

// SetScaleStep sets the scale increment applied per scroll notch
func (s *Settings) SetScaleStep(v float64) {
	s.app.Preferences().SetFloat(KeyScaleStep, clamp(v, StepFloor, StepCeiling))
}

// GetLayerProfile returns where the clock face is stacked
func (s *Settings) GetLayerProfile() model.LayerProfile {
	profile := model.LayerProfile(s.app.Preferences().String(KeyLayerProfile))
	if !profile.IsValid() {
		s.SetLayerProfile(DefaultLayerProfile)
		return DefaultLayerProfile
	}
	return profile
}

// SetLayerProfile sets the layer profile; unknown profiles are ignored
func (s *Settings) SetLayerProfile(profile model.LayerProfile) {
	if !profile.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyLayerProfile, string(profile))
}

// GetLayerProfileOptions returns the available layer profiles
func (s *Settings) GetLayerProfileOptions() []model.LayerProfile {
	return []model.LayerProfile{model.LayerDesktopBackground, model.LayerOverlay}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	language := s.app.Preferences().String(KeyLanguage)
	if language == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return language
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(language string) {
	s.app.Preferences().SetString(KeyLanguage, language)
}

// ResolvedLanguage returns the configured language with "system" replaced by
// the base language of the system locale ("ru" for ru_RU.UTF-8)
func (s *Settings) ResolvedLanguage() string {
	language := s.GetLanguage()
	if language != DefaultLanguage {
		return language
	}
	if system := baseLanguage(string(lang.SystemLocale())); system != "" {
		return system
	}
	return FallbackLanguage
}

// baseLanguage strips region and script from a locale tag; empty when the tag
// names no language
func baseLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	base, confidence := language.Make(tag).Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetPlacementPath returns the placement file location
func (s *Settings) GetPlacementPath() string {
	path := s.app.Preferences().String(KeyPlacementPath)
	if path != "" {
		return path
	}

	path, err := platform.DefaultPlacementPath()
	if err != nil {
		log.Printf("Failed to resolve config dir: %v", err)
		path = filepath.Join(os.TempDir(), platform.AppConfigDirName, platform.PlacementFileName)
	}
	return path
}

// SetPlacementPath overrides the placement file location; empty restores the default
func (s *Settings) SetPlacementPath(path string) {
	s.app.Preferences().SetString(KeyPlacementPath, path)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
