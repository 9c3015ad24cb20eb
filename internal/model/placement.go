package model

import "math"

// Placement defaults and scale limits
const (
	DefaultOffset   = 200
	DefaultScale    = 1.0
	DefaultMinScale = 0.4
	DefaultMaxScale = 3.0
	DefaultStep     = 0.1
)

// Placement is the persisted position and size multiplier of the clock face
type Placement struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Scale float64 `json:"scale"`
}

// ScaleLimits bounds the scale of a placement and the scroll increment
type ScaleLimits struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultScaleLimits returns the limits used when nothing is configured
func DefaultScaleLimits() ScaleLimits {
	return ScaleLimits{Min: DefaultMinScale, Max: DefaultMaxScale, Step: DefaultStep}
}

// Clamp returns scale limited to [Min, Max]
func (l ScaleLimits) Clamp(scale float64) float64 {
	if scale < l.Min {
		return l.Min
	}
	if scale > l.Max {
		return l.Max
	}
	return scale
}

// Valid reports whether the limits describe a usable range
func (l ScaleLimits) Valid() bool {
	return l.Min > 0 && l.Max >= l.Min && l.Step > 0
}

// DefaultPlacement returns the first-run placement. The clock is offset from
// the primary monitor origin when the monitor is known.
func DefaultPlacement(monitor *Rect) Placement {
	p := Placement{X: DefaultOffset, Y: DefaultOffset, Scale: DefaultScale}
	if monitor != nil {
		p.X += monitor.X
		p.Y += monitor.Y
	}
	return p
}

// RoundScale rounds scale to two decimal places
func RoundScale(scale float64) float64 {
	return math.Round(scale*100) / 100
}

// Rounded returns the placement in its persisted form
func (p Placement) Rounded() Placement {
	p.Scale = RoundScale(p.Scale)
	return p
}

// WithScale returns a copy of p with the scale clamped to limits
func (p Placement) WithScale(scale float64, limits ScaleLimits) Placement {
	p.Scale = limits.Clamp(scale)
	return p
}

// WithPosition returns a copy of p moved to the rounded screen coordinates
func (p Placement) WithPosition(x, y float64) Placement {
	p.X = int(math.Round(x))
	p.Y = int(math.Round(y))
	return p
}
