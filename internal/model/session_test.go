package model

import "testing"

func TestDragSession_PositionFor(t *testing.T) {
	var s DragSession
	if s.State() != DragStateIdle {
		t.Fatalf("Expected idle session, got %s", s.State())
	}

	s.Begin(Point{X: 100, Y: 100}, Point{X: 50, Y: 50})
	if s.State() != DragStateDragging {
		t.Fatalf("Expected dragging session, got %s", s.State())
	}

	pos := s.PositionFor(Point{X: 130, Y: 145})
	if pos.X != 80 || pos.Y != 95 {
		t.Errorf("Expected (80, 95), got (%v, %v)", pos.X, pos.Y)
	}

	s.End()
	if s.Active || s.StartPointer != (Point{}) || s.StartPosition != (Point{}) {
		t.Errorf("Expected cleared session, got %+v", s)
	}
}

func TestRect_Empty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("Zero rect should be empty")
	}
	if (Rect{Width: 10, Height: 10}).Empty() {
		t.Error("10x10 rect should not be empty")
	}
}
