package recognizer_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/recognizer"
	"github.com/jetsetilly/updown/sampler"
	"github.com/jetsetilly/updown/test"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

// devices returns whatever snapshots it is currently set to
type devices struct {
	pads []sampler.Snapshot
}

func (d *devices) Snapshots() []sampler.Snapshot {
	return d.pads
}

var (
	idle     = sampler.Snapshot{Axes: []float64{0, 0, 0}, Standard: true}
	stickUp  = sampler.Snapshot{Axes: []float64{0, 0, -0.8}, Standard: true}
	stickDn  = sampler.Snapshot{Axes: []float64{0, 0, 0.8}, Standard: true}
	diagonal = sampler.Snapshot{Axes: []float64{0.6, 0, -0.8}, Standard: true}
	buttonUp = sampler.Snapshot{Buttons: make17(sampler.ButtonUp), Standard: true}
)

func make17(pressed int) []bool {
	b := make([]bool, 17)
	b[pressed] = true
	return b
}

type harness struct {
	clk     *clock
	sched   *frame.Scheduler
	devs    *devices
	rec     *recognizer.Recognizer
	intents []intent.Intent
}

func newHarness() *harness {
	h := &harness{
		clk:   &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		sched: frame.NewScheduler(),
		devs:  &devices{},
	}
	h.rec = recognizer.NewRecognizer(h.sched, h.devs, h.clk)
	h.rec.Observe(func(in intent.Intent) {
		h.intents = append(h.intents, in)
	})
	return h
}

// run the given number of frames at 60Hz
func (h *harness) frames(n int) {
	for range n {
		h.sched.Tick()
		h.clk.now = h.clk.now.Add(time.Second / 60)
	}
}

func TestNoInput(t *testing.T) {
	h := newHarness()
	h.rec.Start()
	h.frames(600)
	test.ExpectEquality(t, len(h.intents), 0)
	_, ok := h.rec.Latest()
	test.ExpectFailure(t, ok)
}

func TestSustainedButton(t *testing.T) {
	h := newHarness()
	h.devs.pads = []sampler.Snapshot{buttonUp}
	h.rec.Start()

	// one second of frames produces one intent per repeat window and not one
	// per frame
	h.frames(60)
	test.ExpectEquality(t, len(h.intents), 4)
	for _, in := range h.intents {
		test.ExpectEquality(t, in.Direction, intent.Up)
		test.ExpectEquality(t, in.Source, intent.Device)
	}
	for i := 1; i < len(h.intents); i++ {
		test.ExpectSuccess(t, h.intents[i].Timestamp.Sub(h.intents[i-1].Timestamp) >= intent.RepeatDelay)
	}
}

func TestStickScenarios(t *testing.T) {
	h := newHarness()
	h.rec.Start()

	h.devs.pads = []sampler.Snapshot{diagonal}
	h.frames(1)
	test.ExpectEquality(t, len(h.intents), 0)

	h.devs.pads = []sampler.Snapshot{stickUp}
	h.frames(1)
	test.DemandEquality(t, len(h.intents), 1)
	test.ExpectEquality(t, h.intents[0].Direction, intent.Up)

	latest, ok := h.rec.Latest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, latest, h.intents[0])
}

func TestReversal(t *testing.T) {
	h := newHarness()
	h.rec.Start()

	h.devs.pads = []sampler.Snapshot{stickUp}
	h.frames(1)
	h.clk.now = h.intents[0].Timestamp.Add(10 * time.Millisecond)
	h.devs.pads = []sampler.Snapshot{stickDn}
	h.sched.Tick()

	test.DemandEquality(t, len(h.intents), 2)
	test.ExpectEquality(t, h.intents[1].Direction, intent.Down)
	test.ExpectEquality(t, h.intents[1].Timestamp.Sub(h.intents[0].Timestamp), 10*time.Millisecond)
}

func TestKeyboardSharesWindow(t *testing.T) {
	h := newHarness()
	h.rec.Start()

	h.devs.pads = []sampler.Snapshot{stickUp}
	h.sched.Tick()
	h.devs.pads = []sampler.Snapshot{idle}

	h.clk.now = h.clk.now.Add(50 * time.Millisecond)
	h.rec.KeyDown(recognizer.KeyArrowUp)
	test.DemandEquality(t, len(h.intents), 1)
	test.ExpectEquality(t, h.intents[0].Source, intent.Device)

	// the keyboard is not blocked from the opposite direction
	h.rec.KeyDown(recognizer.KeyArrowDown)
	test.DemandEquality(t, len(h.intents), 2)
	test.ExpectEquality(t, h.intents[1].Direction, intent.Down)
	test.ExpectEquality(t, h.intents[1].Source, intent.Keyboard)
}

func TestKeyboardWithoutFrames(t *testing.T) {
	h := newHarness()

	// the keyboard path does not depend on frame sampling
	h.rec.KeyDown(recognizer.KeyArrowDown)
	test.DemandEquality(t, len(h.intents), 1)

	// key repeats are debounced in the same way as anything else
	for range 10 {
		h.clk.now = h.clk.now.Add(30 * time.Millisecond)
		h.rec.KeyDown(recognizer.KeyArrowDown)
	}
	test.ExpectEquality(t, len(h.intents), 2)

	// other keys are ignored
	h.rec.KeyDown(recognizer.Key("ArrowLeft"))
	h.rec.KeyDown(recognizer.Key("a"))
	test.ExpectEquality(t, len(h.intents), 2)
}

func TestFirstPadWins(t *testing.T) {
	h := newHarness()
	h.rec.Start()

	h.devs.pads = []sampler.Snapshot{idle, stickDn, stickUp}
	h.frames(1)
	test.DemandEquality(t, len(h.intents), 1)
	test.ExpectEquality(t, h.intents[0].Direction, intent.Down)
}

func TestStartStop(t *testing.T) {
	h := newHarness()

	h.rec.Start()
	h.rec.Start()
	test.ExpectSuccess(t, h.rec.Running())
	test.ExpectEquality(t, h.sched.Pending(), 1)

	h.frames(5)
	test.ExpectEquality(t, h.sched.Pending(), 1)

	h.rec.Stop()
	test.ExpectFailure(t, h.rec.Running())
	test.ExpectEquality(t, h.sched.Pending(), 0)

	// no stray callback after stopping
	h.devs.pads = []sampler.Snapshot{stickUp}
	h.frames(5)
	test.ExpectEquality(t, len(h.intents), 0)

	h.rec.Stop()
	test.ExpectEquality(t, h.sched.Pending(), 0)

	// restart
	h.rec.Start()
	h.frames(1)
	test.ExpectEquality(t, len(h.intents), 1)
}

func TestStopFromObserver(t *testing.T) {
	h := newHarness()
	h.rec.Observe(func(_ intent.Intent) {
		h.rec.Stop()
	})
	h.rec.Start()

	h.devs.pads = []sampler.Snapshot{stickUp}
	h.frames(1)
	test.ExpectFailure(t, h.rec.Running())
	test.ExpectEquality(t, h.sched.Pending(), 0)
}
