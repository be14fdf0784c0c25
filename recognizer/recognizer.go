// Package recognizer turns gamepad and keyboard input into a stream of
// debounced up/down intents.
//
// Gamepads are sampled once per frame through a frame.Scheduler. Keyboard
// events arrive through KeyDown() whenever the frontend sees them. Both paths
// go through the same intent.Debouncer.
//
// The Recognizer is not safe for concurrent use. Frame callbacks and calls to
// KeyDown() must happen on the frontend's frame loop goroutine.
package recognizer

import (
	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/logger"
	"github.com/jetsetilly/updown/sampler"
)

// Recognizer owns at most one outstanding frame request at a time
type Recognizer struct {
	sched     *frame.Scheduler
	devs      sampler.Devices
	debouncer *intent.Debouncer

	// the outstanding frame request. zero if the recognizer is stopped or
	// if the request is being serviced
	handle  frame.Handle
	running bool

	observers []func(intent.Intent)

	latest    intent.Intent
	hasLatest bool

	// number of gamepads seen on the previous frame
	pads int
}

// NewRecognizer is the preferred method of initialisation for the Recognizer
// type. A nil Devices is the same as sampler.NoDevices
func NewRecognizer(sched *frame.Scheduler, devs sampler.Devices, clock intent.Clock) *Recognizer {
	if devs == nil {
		devs = sampler.NoDevices{}
	}
	return &Recognizer{
		sched:     sched,
		devs:      devs,
		debouncer: intent.NewDebouncer(clock),
	}
}

// Observe adds a function to be called with every accepted intent. Observers
// are called in the order they were added
func (r *Recognizer) Observe(fn func(intent.Intent)) {
	r.observers = append(r.observers, fn)
}

// Start sampling gamepads. Has no effect if the recognizer is already running
func (r *Recognizer) Start() {
	if r.running {
		return
	}
	r.running = true
	r.handle = r.sched.Request(r.poll)
	logger.Log(logger.Allow, "recognizer", "started")
}

// Stop sampling gamepads. The outstanding frame request is withdrawn so that
// no callback fires after Stop() returns. Safe to call more than once
func (r *Recognizer) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.sched.Cancel(r.handle)
	r.handle = 0
	logger.Log(logger.Allow, "recognizer", "stopped")
}

// Running returns true if the recognizer is sampling gamepads
func (r *Recognizer) Running() bool {
	return r.running
}

// Latest returns the most recently accepted intent. The boolean is false if
// no intent has been accepted
func (r *Recognizer) Latest() (intent.Intent, bool) {
	return r.latest, r.hasLatest
}

// KeyDown should be called for every key-down event, including repeats.
// Keys other than KeyArrowUp and KeyArrowDown are ignored
func (r *Recognizer) KeyDown(k Key) {
	if d, ok := k.direction(); ok {
		r.offer(d, intent.Keyboard)
	}
}

func (r *Recognizer) poll() {
	// the request being serviced is spent
	r.handle = 0

	snapshots := r.devs.Snapshots()
	if len(snapshots) != r.pads {
		logger.Logf(logger.Allow, "recognizer", "%d gamepad(s) connected", len(snapshots))
		r.pads = len(snapshots)
	}

	for _, s := range snapshots {
		if d, ok := sampler.Evaluate(s); ok {
			r.offer(d, intent.Device)
			break
		}
	}

	// an observer may have stopped or restarted the recognizer
	if r.running && r.handle == 0 {
		r.handle = r.sched.Request(r.poll)
	}
}

func (r *Recognizer) offer(d intent.Direction, src intent.Source) {
	in, ok := r.debouncer.Offer(d, src)
	if !ok {
		return
	}
	r.latest = in
	r.hasLatest = true
	for _, fn := range r.observers {
		fn(in)
	}
}
