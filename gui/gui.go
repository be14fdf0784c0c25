// Package gui contains the parts of the user interface that are common to
// all frontends. The frontends themselves are in the sub-packages.
package gui

import (
	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/recognizer"
	"github.com/jetsetilly/updown/sampler"
	"github.com/jetsetilly/updown/trainer"
)

// App is everything a frontend needs to run the trainer
type App struct {
	Clock   intent.Clock
	Session *trainer.Session

	// functions called with every intent after the session has seen it
	OnIntent []func(intent.Intent)
}

// NewApp is the preferred method of initialisation for the App type. The
// chime can be nil
func NewApp(clock intent.Clock, chime trainer.Chime) *App {
	if clock == nil {
		clock = intent.SystemClock
	}
	return &App{
		Clock:   clock,
		Session: trainer.NewSession(clock, chime),
	}
}

// Recognizer creates a recognizer for the devices, attached to the session
// of the application. Each frontend must call Tick() on the returned
// scheduler once per frame, and Stop() on the recognizer when it ends
func (a *App) Recognizer(devs sampler.Devices) (*recognizer.Recognizer, *frame.Scheduler) {
	sched := frame.NewScheduler()
	rec := recognizer.NewRecognizer(sched, devs, a.Clock)
	rec.Observe(a.Session.Apply)
	for _, fn := range a.OnIntent {
		rec.Observe(fn)
	}
	return rec, sched
}
