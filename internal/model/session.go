package model

// DragState represents the state of the drag controller
type DragState string

const (
	// DragStateIdle means no button is held over the clock face
	DragStateIdle DragState = "Idle"

	// DragStateDragging means the primary button was pressed and not yet released
	DragStateDragging DragState = "Dragging"
)

// String returns the string representation of DragState
func (ds DragState) String() string {
	return string(ds)
}

// DragSession tracks a single press/release pair. It is never persisted.
type DragSession struct {
	Active        bool
	StartPointer  Point
	StartPosition Point
}

// Begin starts a session anchored at the given pointer and widget positions
func (s *DragSession) Begin(pointer, position Point) {
	s.Active = true
	s.StartPointer = pointer
	s.StartPosition = position
}

// PositionFor returns the widget position for the current pointer
func (s DragSession) PositionFor(pointer Point) Point {
	return s.StartPosition.Add(pointer.Sub(s.StartPointer))
}

// End discards the session
func (s *DragSession) End() {
	*s = DragSession{}
}

// State returns the controller state implied by the session
func (s DragSession) State() DragState {
	if s.Active {
		return DragStateDragging
	}
	return DragStateIdle
}
