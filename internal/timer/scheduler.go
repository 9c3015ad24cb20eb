package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HandlePrefix marks subscription handles
const HandlePrefix = "tick_"

// Handle identifies an interval subscription
type Handle string

// Dispatcher runs fn on the owner's event context
type Dispatcher func(fn func())

// Scheduler starts and cancels interval subscriptions
type Scheduler struct {
	dispatch Dispatcher
	mu       sync.Mutex
	active   map[Handle]context.CancelFunc
}

// NewScheduler creates a scheduler delivering ticks through dispatch. A nil
// dispatch calls the callback directly on the ticker goroutine.
func NewScheduler(dispatch Dispatcher) *Scheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Scheduler{
		dispatch: dispatch,
		active:   make(map[Handle]context.CancelFunc),
	}
}

// Every calls fn once per interval until the returned handle is cancelled
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHandle()

	s.mu.Lock()
	s.active[h] = cancel
	s.mu.Unlock()

	go s.run(ctx, h, interval, fn)
	return h
}

func (s *Scheduler) run(ctx context.Context, h Handle, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatch(func() {
				// A tick queued before Cancel must not run after it
				if s.IsActive(h) {
					fn()
				}
			})
		}
	}
}

// Cancel stops the subscription. Unknown or already cancelled handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	s.mu.Lock()
	cancel, ok := s.active[h]
	delete(s.active, h)
	s.mu.Unlock()

	if ok {
		cancel()
	}
}

// IsActive reports whether h has not been cancelled
func (s *Scheduler) IsActive(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[h]
	return ok
}

// ActiveCount returns the number of live subscriptions
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Stop cancels every subscription
func (s *Scheduler) Stop() {
	s.mu.Lock()
	active := s.active
	s.active = make(map[Handle]context.CancelFunc)
	s.mu.Unlock()

	for _, cancel := range active {
		cancel()
	}
}

// newHandle generates a unique handle using UUID v7
func newHandle() Handle {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return Handle(fmt.Sprintf(HandlePrefix+"%d", time.Now().UnixNano()))
	}
	return Handle(HandlePrefix + id.String())
}
