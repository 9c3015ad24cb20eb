package model

import "testing"

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventPress, "press"},
		{EventMotion, "motion"},
		{EventRelease, "release"},
		{EventScroll, "scroll"},
		{EventKind(42), "unknown"},
	}

	for _, test := range tests {
		if result := test.kind.String(); result != test.expected {
			t.Errorf("EventKind(%d).String() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}

func TestPointerEvent_IsPrimary(t *testing.T) {
	tests := []struct {
		button   Button
		expected bool
	}{
		{ButtonNone, false},
		{ButtonPrimary, true},
		{ButtonMiddle, false},
		{ButtonSecondary, false},
	}

	for _, test := range tests {
		ev := PointerEvent{Kind: EventPress, Button: test.button}
		if result := ev.IsPrimary(); result != test.expected {
			t.Errorf("Button %d IsPrimary() = %v, expected %v", test.button, result, test.expected)
		}
	}
}

func TestLayerProfile_IsValid(t *testing.T) {
	tests := []struct {
		profile  LayerProfile
		expected bool
	}{
		{LayerOverlay, true},
		{LayerDesktopBackground, true},
		{LayerProfile(""), false},
		{LayerProfile("top"), false},
	}

	for _, test := range tests {
		if result := test.profile.IsValid(); result != test.expected {
			t.Errorf("LayerProfile(%q).IsValid() = %v, expected %v", test.profile, result, test.expected)
		}
	}
}
