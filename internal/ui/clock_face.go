package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clock-face/internal/model"
)

// ClockFace draws the day, date and time between two separator lines and
// forwards pointer input as model events
type ClockFace struct {
	widget.BaseWidget

	dayText    *canvas.Text
	dateText   *canvas.Text
	timeText   *canvas.Text
	topLine    *canvas.Rectangle
	bottomLine *canvas.Rectangle
	backdrop   *canvas.Rectangle
	content    *fyne.Container

	scale     float32
	opacity   float32
	onPointer func(model.PointerEvent) bool
	lastPos   fyne.Position
}

// Interface checks
var (
	_ desktop.Mouseable = (*ClockFace)(nil)
	_ desktop.Hoverable = (*ClockFace)(nil)
	_ fyne.Draggable    = (*ClockFace)(nil)
	_ fyne.Scrollable   = (*ClockFace)(nil)
)

// NewClockFace creates a clock face at scale 1
func NewClockFace() *ClockFace {
	cf := &ClockFace{scale: 1, opacity: 1}

	cf.dayText = newCenteredText(DayColor, fyne.TextStyle{Bold: true})
	cf.dateText = newCenteredText(DateColor, fyne.TextStyle{})
	cf.timeText = newCenteredText(TimeColor, fyne.TextStyle{})
	cf.topLine = canvas.NewRectangle(SeparatorColor)
	cf.bottomLine = canvas.NewRectangle(SeparatorColor)
	cf.backdrop = canvas.NewRectangle(BackdropColor)
	cf.backdrop.CornerRadius = 8

	cf.content = container.NewVBox(
		container.NewCenter(cf.topLine),
		cf.dayText,
		cf.dateText,
		cf.timeText,
		container.NewCenter(cf.bottomLine),
	)

	cf.ExtendBaseWidget(cf)
	cf.applyScale()
	return cf
}

func newCenteredText(c color.Color, style fyne.TextStyle) *canvas.Text {
	t := canvas.NewText("", c)
	t.Alignment = fyne.TextAlignCenter
	t.TextStyle = style
	return t
}

// CreateRenderer implements fyne.Widget
func (cf *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(cf.backdrop, container.NewPadded(cf.content)))
}

// SetStrings updates the three text lines
func (cf *ClockFace) SetStrings(s model.ClockStrings) {
	cf.dayText.Text = s.Day
	cf.dateText.Text = s.Date
	cf.timeText.Text = s.Time
	cf.dayText.Refresh()
	cf.dateText.Refresh()
	cf.timeText.Refresh()
	cf.Resize(cf.MinSize())
}

// Strings returns what is currently displayed
func (cf *ClockFace) Strings() model.ClockStrings {
	return model.ClockStrings{Day: cf.dayText.Text, Date: cf.dateText.Text, Time: cf.timeText.Text}
}

// SetScale sets the size multiplier for text, lines and padding
func (cf *ClockFace) SetScale(scale float32) {
	if scale <= 0 {
		return
	}
	cf.scale = scale
	cf.applyScale()
}

// Scale returns the current size multiplier
func (cf *ClockFace) Scale() float32 {
	return cf.scale
}

func (cf *ClockFace) applyScale() {
	cf.dayText.TextSize = scaledTextSize(DayTextSize, cf.scale)
	cf.dateText.TextSize = scaledTextSize(DateTextSize, cf.scale)
	cf.timeText.TextSize = scaledTextSize(TimeTextSize, cf.scale)

	line := fyne.NewSize(SeparatorWidth*cf.scale, SeparatorThickness)
	cf.topLine.SetMinSize(line)
	cf.bottomLine.SetMinSize(line)

	cf.content.Refresh()
	cf.Resize(cf.MinSize())
}

func scaledTextSize(base, scale float32) float32 {
	size := base * scale
	if size < MinTextSize {
		return MinTextSize
	}
	return size
}

// SetOpacity multiplies the alpha of every text line by opacity (0..1)
func (cf *ClockFace) SetOpacity(opacity float32) {
	cf.opacity = opacity
	cf.dayText.Color = withOpacity(DayColor, opacity)
	cf.dateText.Color = withOpacity(DateColor, opacity)
	cf.timeText.Color = withOpacity(TimeColor, opacity)
	cf.dayText.Refresh()
	cf.dateText.Refresh()
	cf.timeText.Refresh()
}

// Opacity returns the current text opacity
func (cf *ClockFace) Opacity() float32 {
	return cf.opacity
}

// SetBackdropAlpha sets the alpha of the drag backdrop (0..255)
func (cf *ClockFace) SetBackdropAlpha(alpha float32) {
	c := BackdropColor
	c.A = uint8(clampAlpha(alpha))
	cf.backdrop.FillColor = c
	cf.backdrop.Refresh()
}

// BackdropAlpha returns the alpha of the drag backdrop
func (cf *ClockFace) BackdropAlpha() uint8 {
	return cf.backdrop.FillColor.(color.NRGBA).A
}

func withOpacity(c color.NRGBA, opacity float32) color.NRGBA {
	c.A = uint8(clampAlpha(float32(c.A) * opacity))
	return c
}

func clampAlpha(a float32) float32 {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return a
}

// SetOnPointer sets the pointer event handler; nil stops delivery
func (cf *ClockFace) SetOnPointer(fn func(model.PointerEvent) bool) {
	cf.onPointer = fn
}

func (cf *ClockFace) emit(ev model.PointerEvent) bool {
	if cf.onPointer == nil {
		return false
	}
	return cf.onPointer(ev)
}

func pointerEvent(kind model.EventKind, button model.Button, pos fyne.Position) model.PointerEvent {
	return model.PointerEvent{Kind: kind, Button: button, X: float64(pos.X), Y: float64(pos.Y)}
}

// MouseDown implements desktop.Mouseable
func (cf *ClockFace) MouseDown(ev *desktop.MouseEvent) {
	cf.lastPos = ev.AbsolutePosition
	cf.emit(pointerEvent(model.EventPress, mouseButton(ev.Button), ev.AbsolutePosition))
}

// MouseUp implements desktop.Mouseable
func (cf *ClockFace) MouseUp(ev *desktop.MouseEvent) {
	cf.lastPos = ev.AbsolutePosition
	cf.emit(pointerEvent(model.EventRelease, mouseButton(ev.Button), ev.AbsolutePosition))
}

// MouseIn implements desktop.Hoverable
func (cf *ClockFace) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable
func (cf *ClockFace) MouseMoved(ev *desktop.MouseEvent) {
	cf.lastPos = ev.AbsolutePosition
	cf.emit(pointerEvent(model.EventMotion, model.ButtonNone, ev.AbsolutePosition))
}

// MouseOut implements desktop.Hoverable
func (cf *ClockFace) MouseOut() {}

// Dragged implements fyne.Draggable
func (cf *ClockFace) Dragged(ev *fyne.DragEvent) {
	cf.lastPos = ev.AbsolutePosition
	cf.emit(pointerEvent(model.EventMotion, model.ButtonNone, ev.AbsolutePosition))
}

// DragEnd implements fyne.Draggable. Fyne may deliver it without a matching
// MouseUp when the pointer leaves the widget, so a primary release is sent;
// the controller ignores it if the drag already ended.
func (cf *ClockFace) DragEnd() {
	cf.emit(pointerEvent(model.EventRelease, model.ButtonPrimary, cf.lastPos))
}

// Scrolled implements fyne.Scrollable
func (cf *ClockFace) Scrolled(ev *fyne.ScrollEvent) {
	ptr := pointerEvent(model.EventScroll, model.ButtonNone, ev.AbsolutePosition)
	ptr.Direction = scrollDirection(ev.Scrolled)
	cf.emit(ptr)
}

func mouseButton(b desktop.MouseButton) model.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return model.ButtonPrimary
	case desktop.MouseButtonTertiary:
		return model.ButtonMiddle
	case desktop.MouseButtonSecondary:
		return model.ButtonSecondary
	}
	return model.ButtonNone
}

func scrollDirection(d fyne.Delta) model.ScrollDirection {
	switch {
	case d.DY > 0:
		return model.ScrollUp
	case d.DY < 0:
		return model.ScrollDown
	case d.DX < 0:
		return model.ScrollLeft
	case d.DX > 0:
		return model.ScrollRight
	}
	return model.ScrollSmooth
}
