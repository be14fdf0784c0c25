package gui_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/recognizer"
	"github.com/jetsetilly/updown/sampler"
	"github.com/jetsetilly/updown/test"
	"github.com/jetsetilly/updown/trainer"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

type chime struct {
	played int
}

func (c *chime) Play() {
	c.played++
}

func TestText(t *testing.T) {
	s := trainer.InitialState()
	test.ExpectEquality(t, gui.ActionText(s), "UP")
	test.ExpectEquality(t, gui.HintText(s), "Press the D-pad up to match the highlight.")

	s = trainer.Reduce(s, trainer.Input{Direction: intent.Up})
	test.ExpectEquality(t, gui.ActionText(s), "DOWN")
	test.ExpectEquality(t, gui.HintText(s), "Press the D-pad down to match the highlight.")

	test.ExpectEquality(t, gui.BoxLabel(trainer.Top), "Up")
	test.ExpectEquality(t, gui.BoxLabel(trainer.Bottom), "Down")
	test.ExpectEquality(t, gui.Boxes[0], trainer.Top)
}

func TestApp(t *testing.T) {
	clk := &clock{now: time.Unix(1000, 0)}
	ch := &chime{}
	app := gui.NewApp(clk, ch)

	var seen []intent.Direction
	app.OnIntent = append(app.OnIntent, func(in intent.Intent) {
		seen = append(seen, in.Direction)
	})

	rec, sched := app.Recognizer(sampler.NoDevices{})
	rec.Start()
	defer rec.Stop()

	rec.KeyDown(recognizer.KeyArrowDown)
	test.ExpectEquality(t, app.Session.State().Successes, 0)

	clk.now = clk.now.Add(time.Millisecond)
	rec.KeyDown(recognizer.KeyArrowUp)
	test.ExpectEquality(t, app.Session.State().Successes, 1)
	test.ExpectEquality(t, app.Session.State().Selected, trainer.Top)
	test.ExpectEquality(t, ch.played, 1)

	sched.Tick()
	test.ExpectEquality(t, len(seen), 2)
	test.ExpectEquality(t, rec.Running(), true)
}
