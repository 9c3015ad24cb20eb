package widget

import (
	"time"

	"github.com/ytget/clock-face/internal/model"
	"github.com/ytget/clock-face/internal/timer"
)

// EventHandler receives pointer events and reports whether it consumed them
type EventHandler func(model.PointerEvent) bool

// Actor is the display element that shows the clock face.
type Actor interface {
	SetClockStrings(strings model.ClockStrings)
	SetPosition(x, y float64)
	Position() (x, y float64)
	// SetScale applies a uniform size multiplier
	SetScale(scale float64)
	// SetDragging toggles the visual drag affordance
	SetDragging(active bool)
	Connect(handler EventHandler)
	Disconnect()
	Destroy()
}

// Layer is a parent that stacks actors
type Layer interface {
	// InsertAt places actor at index, 0 being the bottom of the stack
	InsertAt(actor Actor, index int)
	Add(actor Actor)
	Remove(actor Actor)
}

// MonitorProvider reports the primary monitor geometry, if known
type MonitorProvider interface {
	PrimaryMonitor() (model.Rect, bool)
}

// Scheduler runs callbacks on an interval until cancelled
type Scheduler interface {
	Every(interval time.Duration, fn func()) timer.Handle
	Cancel(h timer.Handle)
}

// PlacementStore loads and persists the placement
type PlacementStore interface {
	Load(monitor *model.Rect) model.Placement
	Save(p model.Placement) error
}
