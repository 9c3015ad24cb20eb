package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clock-face/internal/model"
	clockwidget "github.com/ytget/clock-face/internal/widget"
)

// CanvasObjectProvider is implemented by actors backed by a Fyne object
type CanvasObjectProvider interface {
	CanvasObject() fyne.CanvasObject
}

// FaceActor adapts a ClockFace to the clockwidget.Actor interface
type FaceActor struct {
	face *ClockFace
	fade *Fade
}

var _ clockwidget.Actor = (*FaceActor)(nil)

// NewFaceActor creates an actor around a new clock face
func NewFaceActor() *FaceActor {
	return &FaceActor{face: NewClockFace()}
}

// NewActor matches the clockwidget.Options factory signature
func NewActor() clockwidget.Actor {
	return NewFaceActor()
}

// CanvasObject returns the Fyne object to add to a container
func (a *FaceActor) CanvasObject() fyne.CanvasObject {
	return a.face
}

// Face returns the underlying widget
func (a *FaceActor) Face() *ClockFace {
	return a.face
}

// SetClockStrings implements clockwidget.Actor
func (a *FaceActor) SetClockStrings(s model.ClockStrings) {
	a.face.SetStrings(s)
}

// SetPosition implements clockwidget.Actor
func (a *FaceActor) SetPosition(x, y float64) {
	a.face.Move(fyne.NewPos(float32(x), float32(y)))
}

// Position implements clockwidget.Actor
func (a *FaceActor) Position() (float64, float64) {
	pos := a.face.Position()
	return float64(pos.X), float64(pos.Y)
}

// SetScale implements clockwidget.Actor
func (a *FaceActor) SetScale(scale float64) {
	a.face.SetScale(float32(scale))
}

// SetDragging dims the text and fades the backdrop in while dragging
func (a *FaceActor) SetDragging(active bool) {
	from, to := BackdropDragAlpha, BackdropIdleAlpha
	opacity := float32(1)
	if active {
		from, to = BackdropIdleAlpha, BackdropDragAlpha
		opacity = DragTextOpacity
	}

	a.stopFade()
	a.face.SetOpacity(opacity)
	a.fade = NewFade(from, to, FadeDuration, a.face.SetBackdropAlpha)
	a.fade.Start()
}

// Connect implements clockwidget.Actor
func (a *FaceActor) Connect(handler clockwidget.EventHandler) {
	a.face.SetOnPointer(handler)
}

// Disconnect implements clockwidget.Actor
func (a *FaceActor) Disconnect() {
	a.face.SetOnPointer(nil)
}

// Destroy stops animations and hides the face
func (a *FaceActor) Destroy() {
	a.stopFade()
	a.face.Hide()
}

func (a *FaceActor) stopFade() {
	if a.fade != nil {
		a.fade.Stop()
		a.fade = nil
	}
}
