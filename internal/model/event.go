package model

// EventKind identifies a pointer signal delivered by the host
type EventKind int

const (
	EventPress EventKind = iota
	EventMotion
	EventRelease
	EventScroll
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMotion:
		return "motion"
	case EventRelease:
		return "release"
	case EventScroll:
		return "scroll"
	}
	return "unknown"
}

// Button is a pointer button id, numbered the way X11 numbers them
type Button int

const (
	ButtonNone      Button = 0
	ButtonPrimary   Button = 1
	ButtonMiddle    Button = 2
	ButtonSecondary Button = 3
)

// ScrollDirection of a scroll event
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollSmooth
)

// String returns the string representation of ScrollDirection
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	case ScrollSmooth:
		return "smooth"
	}
	return "unknown"
}

// PointerEvent is the payload of a press, motion, release or scroll signal.
// X and Y are screen coordinates.
type PointerEvent struct {
	Kind      EventKind
	Button    Button
	Direction ScrollDirection
	X         float64
	Y         float64
}

// Pointer returns the event coordinates as a Point
func (e PointerEvent) Pointer() Point {
	return Point{X: e.X, Y: e.Y}
}

// IsPrimary reports whether the event concerns the primary button
func (e PointerEvent) IsPrimary() bool {
	return e.Button == ButtonPrimary
}
