package model

// ClockStrings are the three lines shown on the clock face
type ClockStrings struct {
	Day  string
	Date string
	Time string
}

// LayerProfile selects where the clock face is stacked
type LayerProfile string

const (
	// LayerOverlay inserts the clock behind every other actor of the window group
	LayerOverlay LayerProfile = "overlay"

	// LayerDesktopBackground places the clock on the desktop background layer
	LayerDesktopBackground LayerProfile = "desktop-background"
)

// String returns the string representation of LayerProfile
func (lp LayerProfile) String() string {
	return string(lp)
}

// IsValid reports whether lp is a known profile
func (lp LayerProfile) IsValid() bool {
	return lp == LayerOverlay || lp == LayerDesktopBackground
}
