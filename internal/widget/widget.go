package widget

import (
	"log"
	"time"

	"github.com/ytget/clock-face/internal/clock"
	"github.com/ytget/clock-face/internal/model"
	"github.com/ytget/clock-face/internal/timer"
)

// RefreshInterval is how often the clock strings are recomputed
const RefreshInterval = time.Second

// Options wires a Widget to its host
type Options struct {
	// NewActor builds a fresh display element on every Enable
	NewActor func() Actor

	// WindowGroup receives the actor in the overlay profile and as a fallback
	WindowGroup Layer

	// Background is the desktop background layer; may be nil
	Background Layer

	Profile   model.LayerProfile
	Monitor   MonitorProvider
	Scheduler Scheduler
	Store     PlacementStore
	Limits    model.ScaleLimits
	Language  string

	// Now defaults to time.Now
	Now func() time.Time
}

// Widget owns the clock face actor, its controller and the refresh timer
type Widget struct {
	opts       Options
	formatter  *clock.Formatter
	actor      Actor
	layer      Layer
	controller *Controller
	tick       timer.Handle
	ticking    bool
	placement  model.Placement
}

// New creates a disabled widget
func New(opts Options) *Widget {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Profile == "" {
		opts.Profile = model.LayerDesktopBackground
	}
	return &Widget{
		opts:      opts,
		formatter: clock.NewFormatter(opts.Language),
	}
}

// Enabled reports whether the clock face is on screen
func (w *Widget) Enabled() bool {
	return w.actor != nil
}

// Enable builds the actor, applies the stored placement, shows the current
// time and starts the refresh timer. Calling it twice is a no-op.
func (w *Widget) Enable() {
	if w.Enabled() {
		return
	}

	w.actor = w.opts.NewActor()
	w.layer = w.attach(w.actor)

	w.placement = w.opts.Store.Load(w.monitor())
	w.controller = NewController(w.actor, w.opts.Store, w.opts.Limits, w.placement)
	w.controller.Apply()
	w.actor.Connect(w.handleEvent)

	w.refresh()
	w.tick = w.opts.Scheduler.Every(RefreshInterval, w.refresh)
	w.ticking = true

	p := w.controller.Placement()
	log.Printf("Clock face enabled: profile=%s x=%d y=%d scale=%.2f", w.opts.Profile, p.X, p.Y, p.Scale)
}

// Disable cancels the timer and releases the actor. It is safe to call when
// already disabled.
func (w *Widget) Disable() {
	if w.ticking {
		w.opts.Scheduler.Cancel(w.tick)
		w.ticking = false
		w.tick = ""
	}

	if w.actor == nil {
		return
	}

	w.placement = w.controller.Placement()
	w.actor.Disconnect()
	if w.layer != nil {
		w.layer.Remove(w.actor)
	}
	w.actor.Destroy()
	w.actor = nil
	w.layer = nil
	w.controller = nil

	log.Printf("Clock face disabled")
}

// Placement returns the live placement, or the last one seen while enabled
func (w *Widget) Placement() model.Placement {
	if w.controller != nil {
		return w.controller.Placement()
	}
	return w.placement
}

// DragState returns the controller state; Idle when disabled
func (w *Widget) DragState() model.DragState {
	if w.controller == nil {
		return model.DragStateIdle
	}
	return w.controller.State()
}

// ResetPlacement moves the clock back to its default position and scale:
// 200 px right of and below the monitor origin reported by Options.Monitor
func (w *Widget) ResetPlacement() {
	if w.controller == nil {
		return
	}
	w.controller.Reset(model.DefaultPlacement(w.monitor()))
}

// SetLanguage switches the day and month names
func (w *Widget) SetLanguage(language string) {
	w.opts.Language = language
	w.formatter = clock.NewFormatter(language)
	if w.Enabled() {
		w.refresh()
	}
}

// ClockStrings returns what the clock shows right now
func (w *Widget) ClockStrings() model.ClockStrings {
	return w.formatter.Now(w.opts.Now())
}

func (w *Widget) refresh() {
	if w.actor == nil {
		return
	}
	w.actor.SetClockStrings(w.ClockStrings())
}

func (w *Widget) handleEvent(ev model.PointerEvent) bool {
	if w.controller == nil {
		return false
	}
	return w.controller.HandleEvent(ev)
}

// attach adds the actor to the layer chosen by the profile and returns that layer
func (w *Widget) attach(actor Actor) Layer {
	switch w.opts.Profile {
	case model.LayerOverlay:
		if w.opts.WindowGroup != nil {
			w.opts.WindowGroup.InsertAt(actor, 0)
			return w.opts.WindowGroup
		}
	default:
		if w.opts.Background != nil {
			w.opts.Background.Add(actor)
			return w.opts.Background
		}
		if w.opts.WindowGroup != nil {
			w.opts.WindowGroup.Add(actor)
			return w.opts.WindowGroup
		}
	}

	log.Printf("No layer available for profile %s", w.opts.Profile)
	return nil
}

// monitor returns the primary monitor rectangle that default placements are
// offset from; nil when the provider knows none
func (w *Widget) monitor() *model.Rect {
	if w.opts.Monitor == nil {
		return nil
	}
	rect, ok := w.opts.Monitor.PrimaryMonitor()
	if !ok || rect.Empty() {
		return nil
	}
	return &rect
}
