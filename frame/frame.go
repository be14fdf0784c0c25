// Package frame provides a scheduler for callbacks that should run on the
// next rendered frame. The frontend calls Tick() once per frame.
//
// A request is fulfilled once. A callback that wants to run every frame must
// request the next frame each time it runs, and cancellation of the
// outstanding request is therefore enough to stop it completely.
package frame

// Handle identifies a pending request. The zero value is never a valid handle
type Handle uint64

type request struct {
	handle Handle
	fn     func()
}

// Scheduler is not safe for concurrent use. It should be used only from the
// goroutine running the frontend's frame loop
type Scheduler struct {
	next    Handle
	pending []request

	// requests being serviced by the current Tick(). a request in this list
	// can still be cancelled by an earlier callback in the same tick
	running []request

	frames uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request that fn be called on the next frame
func (s *Scheduler) Request(fn func()) Handle {
	s.next++
	s.pending = append(s.pending, request{handle: s.next, fn: fn})
	return s.next
}

// Cancel a pending request. Cancelling a handle that is not pending has no
// effect
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range s.pending {
		if r.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for i, r := range s.running {
		if r.handle == h {
			s.running[i].fn = nil
			return
		}
	}
}

// Tick runs the callbacks that were pending at the start of the tick.
// Callbacks requested during the tick are run on the next one
func (s *Scheduler) Tick() {
	s.frames++

	s.running = s.pending
	s.pending = nil
	defer func() {
		s.running = nil
	}()

	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn()
	}
}

// Pending returns the number of outstanding requests
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Frames returns the number of times Tick() has been called
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
