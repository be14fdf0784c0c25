// Package terminal is a frontend for text terminals. There is no gamepad
// support in the terminal so the keyboard is the only input.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/logger"
	"github.com/jetsetilly/updown/recognizer"
	"github.com/jetsetilly/updown/sampler"
)

// FrameRate is the number of frames per second. The terminal has no vertical
// sync so a ticker is used instead
const FrameRate = 60

type guiTerminal struct {
	app    *gui.App
	screen tcell.Screen
	rec    *recognizer.Recognizer
	sched  *frame.Scheduler
}

// Launch takes over the terminal and runs until the escape key or ctrl-c is
// pressed
func Launch(app *gui.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return run(app, screen)
}

// run takes ownership of an initialised screen
func run(app *gui.App, screen tcell.Screen) error {
	defer screen.Fini()

	gt := &guiTerminal{
		app:    app,
		screen: screen,
	}

	// the recognizer still runs on frames, even though there are never any
	// gamepads to sample
	gt.rec, gt.sched = app.Recognizer(sampler.NoDevices{})
	gt.rec.Start()
	defer gt.rec.Stop()

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	done := make(chan bool)
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	gt.draw()

	for {
		select {
		case ev := <-events:
			if !gt.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			gt.sched.Tick()
			gt.app.Session.Update()
			gt.draw()
		}
	}
}

// handleEvent returns false if the frontend should quit
func (gt *guiTerminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			gt.rec.KeyDown(recognizer.KeyArrowUp)
		case tcell.KeyDown:
			gt.rec.KeyDown(recognizer.KeyArrowDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'k':
				gt.rec.KeyDown(recognizer.KeyArrowUp)
			case 's', 'j':
				gt.rec.KeyDown(recognizer.KeyArrowDown)
			}
		}
	case *tcell.EventResize:
		gt.screen.Sync()
		logger.Log(logger.Allow, "terminal", "resized")
	}
	return true
}
