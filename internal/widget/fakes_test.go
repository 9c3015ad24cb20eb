package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/ytget/clock-face/internal/model"
	"github.com/ytget/clock-face/internal/timer"
)

type fakeActor struct {
	x, y       float64
	scale      float64
	dragging   bool
	strings    model.ClockStrings
	handler    EventHandler
	destroyed  bool
	dragToggle int
}

func (a *fakeActor) SetClockStrings(s model.ClockStrings) { a.strings = s }
func (a *fakeActor) SetPosition(x, y float64)             { a.x, a.y = x, y }
func (a *fakeActor) Position() (float64, float64)         { return a.x, a.y }
func (a *fakeActor) SetScale(scale float64)               { a.scale = scale }
func (a *fakeActor) Connect(h EventHandler)               { a.handler = h }
func (a *fakeActor) Disconnect()                          { a.handler = nil }
func (a *fakeActor) Destroy()                             { a.destroyed = true }

func (a *fakeActor) SetDragging(active bool) {
	a.dragging = active
	a.dragToggle++
}

// emit delivers an event the way the host would
func (a *fakeActor) emit(ev model.PointerEvent) bool {
	if a.handler == nil {
		return false
	}
	return a.handler(ev)
}

type fakeLayer struct {
	children []Actor
	inserted []int
}

func (l *fakeLayer) InsertAt(actor Actor, index int) {
	l.children = append(l.children[:index], append([]Actor{actor}, l.children[index:]...)...)
	l.inserted = append(l.inserted, index)
}

func (l *fakeLayer) Add(actor Actor) {
	l.children = append(l.children, actor)
	l.inserted = append(l.inserted, len(l.children)-1)
}

func (l *fakeLayer) Remove(actor Actor) {
	for i, c := range l.children {
		if c == actor {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

type fakeMonitor struct {
	rect model.Rect
	ok   bool
}

func (m fakeMonitor) PrimaryMonitor() (model.Rect, bool) { return m.rect, m.ok }

// fakeScheduler records subscriptions; fire runs every live callback once
type fakeScheduler struct {
	next      int
	callbacks map[timer.Handle]func()
	started   int
	cancelled int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{callbacks: make(map[timer.Handle]func())}
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) timer.Handle {
	s.next++
	s.started++
	h := timer.Handle(fmt.Sprintf("h%d", s.next))
	s.callbacks[h] = fn
	return h
}

func (s *fakeScheduler) Cancel(h timer.Handle) {
	if _, ok := s.callbacks[h]; ok {
		s.cancelled++
		delete(s.callbacks, h)
	}
}

func (s *fakeScheduler) fire() {
	for _, fn := range s.callbacks {
		fn()
	}
}

type fakeStore struct {
	loaded model.Placement
	saved  []model.Placement
	fail   bool
}

func (s *fakeStore) Load(monitor *model.Rect) model.Placement {
	if s.loaded == (model.Placement{}) {
		return model.DefaultPlacement(monitor)
	}
	return s.loaded
}

func (s *fakeStore) Save(p model.Placement) error {
	if s.fail {
		return errors.New("disk full")
	}
	s.saved = append(s.saved, p)
	return nil
}

func (s *fakeStore) last() model.Placement {
	if len(s.saved) == 0 {
		return model.Placement{}
	}
	return s.saved[len(s.saved)-1]
}
