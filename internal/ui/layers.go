package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/clock-face/internal/model"
	clockwidget "github.com/ytget/clock-face/internal/widget"
)

// ContainerLayer stacks actors inside a Fyne container without layout
type ContainerLayer struct {
	container *fyne.Container
}

var _ clockwidget.Layer = (*ContainerLayer)(nil)

// NewContainerLayer wraps c; c should not have a layout so actors keep their positions
func NewContainerLayer(c *fyne.Container) *ContainerLayer {
	return &ContainerLayer{container: c}
}

// Container returns the wrapped container
func (l *ContainerLayer) Container() *fyne.Container {
	return l.container
}

// InsertAt implements clockwidget.Layer
func (l *ContainerLayer) InsertAt(actor clockwidget.Actor, index int) {
	obj := canvasObject(actor)
	if obj == nil {
		return
	}

	objects := l.container.Objects
	if index < 0 || index > len(objects) {
		index = len(objects)
	}
	objects = append(objects, nil)
	copy(objects[index+1:], objects[index:])
	objects[index] = obj

	l.container.Objects = objects
	l.container.Refresh()
}

// Add implements clockwidget.Layer
func (l *ContainerLayer) Add(actor clockwidget.Actor) {
	if obj := canvasObject(actor); obj != nil {
		l.container.Add(obj)
	}
}

// Remove implements clockwidget.Layer
func (l *ContainerLayer) Remove(actor clockwidget.Actor) {
	if obj := canvasObject(actor); obj != nil {
		l.container.Remove(obj)
	}
}

func canvasObject(actor clockwidget.Actor) fyne.CanvasObject {
	provider, ok := actor.(CanvasObjectProvider)
	if !ok {
		log.Printf("Actor %T is not backed by a Fyne object", actor)
		return nil
	}
	return provider.CanvasObject()
}

// CanvasMonitor reports the window canvas as the primary monitor. Fyne does
// not expose screen geometry, and the host window covers the primary screen.
// The origin is always (0, 0), so model.DefaultPlacement resolves to
// (200, 200) in window coordinates.
type CanvasMonitor struct {
	window fyne.Window
}

var _ clockwidget.MonitorProvider = (*CanvasMonitor)(nil)

// NewCanvasMonitor creates a monitor provider for window
func NewCanvasMonitor(window fyne.Window) *CanvasMonitor {
	return &CanvasMonitor{window: window}
}

// PrimaryMonitor implements clockwidget.MonitorProvider
func (m *CanvasMonitor) PrimaryMonitor() (model.Rect, bool) {
	if m.window == nil || m.window.Canvas() == nil {
		return model.Rect{}, false
	}
	size := m.window.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		return model.Rect{}, false
	}
	return model.Rect{Width: int(size.Width), Height: int(size.Height)}, true
}
