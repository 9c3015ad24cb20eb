package widget

import (
	"log"

	"github.com/ytget/clock-face/internal/model"
)

// Controller turns pointer input into position and scale changes and persists
// the result after every drag and every scale change.
type Controller struct {
	actor     Actor
	store     PlacementStore
	limits    model.ScaleLimits
	placement model.Placement
	session   model.DragSession
}

// NewController creates a controller for actor starting from placement
func NewController(actor Actor, store PlacementStore, limits model.ScaleLimits, placement model.Placement) *Controller {
	if !limits.Valid() {
		limits = model.DefaultScaleLimits()
	}
	return &Controller{
		actor:     actor,
		store:     store,
		limits:    limits,
		placement: placement.WithScale(placement.Scale, limits),
	}
}

// Placement returns the current in-memory placement
func (c *Controller) Placement() model.Placement {
	return c.placement
}

// State returns Idle or Dragging
func (c *Controller) State() model.DragState {
	return c.session.State()
}

// Apply pushes the current placement to the actor
func (c *Controller) Apply() {
	c.actor.SetPosition(float64(c.placement.X), float64(c.placement.Y))
	c.actor.SetScale(c.placement.Scale)
}

// Reset replaces the placement, applies and persists it
func (c *Controller) Reset(p model.Placement) {
	c.cancelDrag()
	c.placement = p.WithScale(p.Scale, c.limits)
	c.Apply()
	c.persist()
}

// HandleEvent processes one pointer event and reports whether it was consumed
func (c *Controller) HandleEvent(ev model.PointerEvent) bool {
	switch ev.Kind {
	case model.EventPress:
		return c.press(ev)
	case model.EventMotion:
		return c.motion(ev)
	case model.EventRelease:
		return c.release(ev)
	case model.EventScroll:
		return c.scroll(ev)
	}
	return false
}

func (c *Controller) press(ev model.PointerEvent) bool {
	if c.session.Active {
		// Other buttons are swallowed while a drag is in progress
		return true
	}
	if !ev.IsPrimary() {
		return false
	}

	x, y := c.actor.Position()
	c.session.Begin(ev.Pointer(), model.Point{X: x, Y: y})
	c.actor.SetDragging(true)
	return true
}

func (c *Controller) motion(ev model.PointerEvent) bool {
	if !c.session.Active {
		return false
	}

	pos := c.session.PositionFor(ev.Pointer())
	c.actor.SetPosition(pos.X, pos.Y)
	return true
}

func (c *Controller) release(ev model.PointerEvent) bool {
	if !c.session.Active {
		return false
	}
	if !ev.IsPrimary() {
		return true
	}

	c.session.End()
	c.actor.SetDragging(false)
	c.placement = c.placement.WithPosition(c.actor.Position())
	c.persist()
	return true
}

func (c *Controller) scroll(ev model.PointerEvent) bool {
	var scale float64
	switch ev.Direction {
	case model.ScrollUp:
		scale = c.limits.Clamp(model.RoundScale(c.placement.Scale + c.limits.Step))
	case model.ScrollDown:
		scale = c.limits.Clamp(model.RoundScale(c.placement.Scale - c.limits.Step))
	default:
		return false
	}

	if scale == c.placement.Scale {
		return true
	}

	c.placement.Scale = scale
	c.actor.SetScale(scale)
	c.persist()
	return true
}

// cancelDrag ends a session without persisting
func (c *Controller) cancelDrag() {
	if c.session.Active {
		c.session.End()
		c.actor.SetDragging(false)
	}
}

func (c *Controller) persist() {
	if err := c.store.Save(c.placement); err != nil {
		log.Printf("Placement kept in memory only: x=%d y=%d scale=%.2f",
			c.placement.X, c.placement.Y, c.placement.Scale)
	}
}
