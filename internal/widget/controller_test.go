package widget

import (
	"path/filepath"
	"testing"

	"github.com/ytget/clock-face/internal/config"
	"github.com/ytget/clock-face/internal/model"
)

func press(x, y float64) model.PointerEvent {
	return model.PointerEvent{Kind: model.EventPress, Button: model.ButtonPrimary, X: x, Y: y}
}

func move(x, y float64) model.PointerEvent {
	return model.PointerEvent{Kind: model.EventMotion, X: x, Y: y}
}

func release(x, y float64) model.PointerEvent {
	return model.PointerEvent{Kind: model.EventRelease, Button: model.ButtonPrimary, X: x, Y: y}
}

func scroll(dir model.ScrollDirection) model.PointerEvent {
	return model.PointerEvent{Kind: model.EventScroll, Direction: dir}
}

func newTestController(store PlacementStore, p model.Placement) (*Controller, *fakeActor) {
	actor := &fakeActor{}
	c := NewController(actor, store, model.DefaultScaleLimits(), p)
	c.Apply()
	return c, actor
}

func TestDragScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock-face", "position.json")
	store := config.NewPlacementStore(path, model.DefaultScaleLimits())
	c, actor := newTestController(store, model.Placement{X: 50, Y: 50, Scale: 1.3})

	if !c.HandleEvent(press(100, 100)) {
		t.Fatal("Primary press should be consumed")
	}
	if c.State() != model.DragStateDragging || !actor.dragging {
		t.Fatalf("Expected dragging with affordance, got state=%s dragging=%v", c.State(), actor.dragging)
	}

	if !c.HandleEvent(move(130, 145)) {
		t.Fatal("Motion while dragging should be consumed")
	}
	if actor.x != 80 || actor.y != 95 {
		t.Errorf("Expected actor at (80, 95), got (%v, %v)", actor.x, actor.y)
	}

	if !c.HandleEvent(release(130, 145)) {
		t.Fatal("Primary release should be consumed")
	}
	if c.State() != model.DragStateIdle || actor.dragging {
		t.Errorf("Expected idle without affordance after release")
	}

	want := model.Placement{X: 80, Y: 95, Scale: 1.3}
	if got := store.Load(nil); got != want {
		t.Errorf("Persisted %+v, expected %+v", got, want)
	}
	if c.Placement() != want {
		t.Errorf("In-memory placement %+v, expected %+v", c.Placement(), want)
	}
}

func TestIdleEventsNotConsumed(t *testing.T) {
	store := &fakeStore{}
	c, actor := newTestController(store, model.DefaultPlacement(nil))

	tests := []model.PointerEvent{
		move(10, 10),
		release(10, 10),
		{Kind: model.EventPress, Button: model.ButtonSecondary},
		{Kind: model.EventPress, Button: model.ButtonMiddle},
		{Kind: model.EventKind(99)},
	}

	for _, ev := range tests {
		if c.HandleEvent(ev) {
			t.Errorf("Event %s button=%d should not be consumed while idle", ev.Kind, ev.Button)
		}
	}

	if actor.x != 200 || actor.y != 200 {
		t.Errorf("Actor should not move, got (%v, %v)", actor.x, actor.y)
	}
	if len(store.saved) != 0 {
		t.Errorf("Nothing should be persisted, got %d saves", len(store.saved))
	}
}

func TestOtherButtonsDuringDrag(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestController(store, model.DefaultPlacement(nil))

	c.HandleEvent(press(0, 0))
	secondary := model.PointerEvent{Kind: model.EventRelease, Button: model.ButtonSecondary}
	if !c.HandleEvent(secondary) {
		t.Error("Secondary release during drag should be swallowed")
	}
	if c.State() != model.DragStateDragging {
		t.Error("Secondary release must not end the drag")
	}
	if len(store.saved) != 0 {
		t.Error("Secondary release must not persist")
	}
}

func TestScrollBounds(t *testing.T) {
	store := &fakeStore{}
	c, actor := newTestController(store, model.DefaultPlacement(nil))
	limits := model.DefaultScaleLimits()

	for i := 0; i < 50; i++ {
		if !c.HandleEvent(scroll(model.ScrollUp)) {
			t.Fatal("Scroll up should be consumed")
		}
		if c.Placement().Scale > limits.Max {
			t.Fatalf("Scale %v exceeded max %v", c.Placement().Scale, limits.Max)
		}
	}
	if c.Placement().Scale != limits.Max || actor.scale != limits.Max {
		t.Errorf("Expected scale at max %v, got %v (actor %v)", limits.Max, c.Placement().Scale, actor.scale)
	}

	for i := 0; i < 50; i++ {
		c.HandleEvent(scroll(model.ScrollDown))
		if c.Placement().Scale < limits.Min {
			t.Fatalf("Scale %v went below min %v", c.Placement().Scale, limits.Min)
		}
	}
	if c.Placement().Scale != limits.Min {
		t.Errorf("Expected scale at min %v, got %v", limits.Min, c.Placement().Scale)
	}

	// 20 steps up from 1.0 to 3.0 and 26 steps down to 0.4; saturated
	// scrolls do not write
	if len(store.saved) != 46 {
		t.Errorf("Expected 46 saves, got %d", len(store.saved))
	}
	if store.last().Scale != limits.Min {
		t.Errorf("Last persisted scale %v, expected %v", store.last().Scale, limits.Min)
	}
}

func TestScrollStepNoDrift(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestController(store, model.DefaultPlacement(nil))

	for i := 0; i < 7; i++ {
		c.HandleEvent(scroll(model.ScrollUp))
	}
	if c.Placement().Scale != 1.7 {
		t.Errorf("Expected exact scale 1.7, got %v", c.Placement().Scale)
	}
}

func TestScrollOtherDirectionsIgnored(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestController(store, model.DefaultPlacement(nil))

	for _, dir := range []model.ScrollDirection{model.ScrollLeft, model.ScrollRight, model.ScrollSmooth} {
		if c.HandleEvent(scroll(dir)) {
			t.Errorf("Scroll %s should not be consumed", dir)
		}
	}
	if c.Placement().Scale != 1.0 || len(store.saved) != 0 {
		t.Error("Ignored scrolls must not change or persist the scale")
	}
}

func TestScrollDuringDrag(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestController(store, model.Placement{X: 10, Y: 10, Scale: 1})

	c.HandleEvent(press(0, 0))
	c.HandleEvent(scroll(model.ScrollUp))
	c.HandleEvent(move(5, 5))
	c.HandleEvent(release(5, 5))

	want := model.Placement{X: 15, Y: 15, Scale: 1.1}
	if store.last() != want {
		t.Errorf("Expected %+v, got %+v", want, store.last())
	}
}

func TestSaveFailureKeepsPlacement(t *testing.T) {
	store := &fakeStore{fail: true}
	c, _ := newTestController(store, model.Placement{X: 0, Y: 0, Scale: 1})

	c.HandleEvent(press(0, 0))
	c.HandleEvent(move(40, 30))
	c.HandleEvent(release(40, 30))
	c.HandleEvent(scroll(model.ScrollUp))

	want := model.Placement{X: 40, Y: 30, Scale: 1.1}
	if c.Placement() != want {
		t.Errorf("Expected in-memory placement %+v, got %+v", want, c.Placement())
	}
}

func TestReset(t *testing.T) {
	store := &fakeStore{}
	c, actor := newTestController(store, model.Placement{X: 900, Y: 700, Scale: 2.2})

	c.HandleEvent(press(0, 0))
	c.Reset(model.DefaultPlacement(nil))

	if c.State() != model.DragStateIdle || actor.dragging {
		t.Error("Reset should end an active drag")
	}
	if actor.x != 200 || actor.y != 200 || actor.scale != 1.0 {
		t.Errorf("Actor not reset: (%v, %v) scale %v", actor.x, actor.y, actor.scale)
	}
	if store.last() != model.DefaultPlacement(nil) {
		t.Errorf("Expected default placement persisted, got %+v", store.last())
	}
}

func TestNewController_ClampsInitialScale(t *testing.T) {
	c := NewController(&fakeActor{}, &fakeStore{}, model.ScaleLimits{Min: 0.3, Max: 5, Step: 0.1},
		model.Placement{Scale: 0.01})
	if c.Placement().Scale != 0.3 {
		t.Errorf("Expected initial scale clamped to 0.3, got %v", c.Placement().Scale)
	}
}
