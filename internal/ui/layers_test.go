package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/clock-face/internal/model"
	clockwidget "github.com/ytget/clock-face/internal/widget"
)

// plainActor is an actor with no Fyne object behind it
type plainActor struct{ clockwidget.Actor }

func TestContainerLayer_InsertAt(t *testing.T) {
	test.NewApp()
	first := canvas.NewRectangle(nil)
	second := canvas.NewRectangle(nil)
	layer := NewContainerLayer(container.NewWithoutLayout(first, second))

	actor := NewFaceActor()
	layer.InsertAt(actor, 0)

	objects := layer.Container().Objects
	if len(objects) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(objects))
	}
	if objects[0] != actor.CanvasObject() || objects[1] != fyne.CanvasObject(first) || objects[2] != fyne.CanvasObject(second) {
		t.Error("Actor should be inserted at the bottom, keeping existing order")
	}

	layer.Remove(actor)
	if len(layer.Container().Objects) != 2 {
		t.Errorf("Expected 2 objects after remove, got %d", len(layer.Container().Objects))
	}

	// Out of range index appends
	layer.InsertAt(actor, 99)
	objects = layer.Container().Objects
	if objects[len(objects)-1] != actor.CanvasObject() {
		t.Error("Out of range index should append")
	}
}

func TestContainerLayer_Add(t *testing.T) {
	test.NewApp()
	layer := NewContainerLayer(container.NewWithoutLayout())

	actor := NewFaceActor()
	layer.Add(actor)
	if len(layer.Container().Objects) != 1 {
		t.Fatal("Expected actor to be added")
	}

	// Actors without a Fyne object are ignored
	layer.Add(plainActor{})
	layer.InsertAt(plainActor{}, 0)
	if len(layer.Container().Objects) != 1 {
		t.Error("Plain actors should not be added")
	}
}

func TestCanvasMonitor(t *testing.T) {
	test.NewApp()

	if _, ok := NewCanvasMonitor(nil).PrimaryMonitor(); ok {
		t.Error("No window means no monitor")
	}

	w := test.NewWindow(container.NewWithoutLayout())
	defer w.Close()
	w.Resize(fyne.NewSize(800, 600))

	rect, ok := NewCanvasMonitor(w).PrimaryMonitor()
	if !ok {
		t.Fatal("Expected monitor geometry from the window canvas")
	}
	if rect.X != 0 || rect.Y != 0 || rect.Empty() {
		t.Errorf("Unexpected rect %+v", rect)
	}

	p := model.DefaultPlacement(&rect)
	if p.X != model.DefaultOffset || p.Y != model.DefaultOffset {
		t.Errorf("Expected default placement at (%d, %d) in window coordinates, got (%d, %d)",
			model.DefaultOffset, model.DefaultOffset, p.X, p.Y)
	}
}
