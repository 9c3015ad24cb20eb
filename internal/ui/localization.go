package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyShowClock        = "show_clock"
	KeyHideClock        = "hide_clock"
	KeyResetPosition    = "reset_position"
	KeyOpenConfigFolder = "open_config_folder"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyQuit             = "quit"
	KeyLayerProfile     = "layer_profile"
	KeyMinScale         = "min_scale"
	KeyMaxScale         = "max_scale"
	KeyScaleStep        = "scale_step"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyClockSettings    = "clock_settings"
	KeyInterfaceSection = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Clock Face",
		KeyShowClock:        "Show Clock",
		KeyHideClock:        "Hide Clock",
		KeyResetPosition:    "Reset Position",
		KeyOpenConfigFolder: "Open Config Folder",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyQuit:             "Quit",
		KeyLayerProfile:     "Layer",
		KeyMinScale:         "Minimum Scale",
		KeyMaxScale:         "Maximum Scale",
		KeyScaleStep:        "Scroll Step",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyClockSettings:    "Clock Settings",
		KeyInterfaceSection: "Interface Settings",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Часы",
		KeyShowClock:        "Показать часы",
		KeyHideClock:        "Скрыть часы",
		KeyResetPosition:    "Сбросить положение",
		KeyOpenConfigFolder: "Открыть папку настроек",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyQuit:             "Выход",
		KeyLayerProfile:     "Слой",
		KeyMinScale:         "Мин. масштаб",
		KeyMaxScale:         "Макс. масштаб",
		KeyScaleStep:        "Шаг прокрутки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyClockSettings:    "Настройки часов",
		KeyInterfaceSection: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Relógio",
		KeyShowClock:        "Mostrar Relógio",
		KeyHideClock:        "Ocultar Relógio",
		KeyResetPosition:    "Redefinir Posição",
		KeyOpenConfigFolder: "Abrir Pasta de Configuração",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyQuit:             "Sair",
		KeyLayerProfile:     "Camada",
		KeyMinScale:         "Escala Mínima",
		KeyMaxScale:         "Escala Máxima",
		KeyScaleStep:        "Passo de Rolagem",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyClockSettings:    "Configurações do Relógio",
		KeyInterfaceSection: "Interface",
	}
}
