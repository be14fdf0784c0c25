package frame_test

import (
	"testing"

	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/test"
)

func TestRequest(t *testing.T) {
	s := frame.NewScheduler()

	var ct int
	h := s.Request(func() { ct++ })
	test.ExpectInequality(t, h, frame.Handle(0))
	test.ExpectEquality(t, s.Pending(), 1)

	s.Tick()
	test.ExpectEquality(t, ct, 1)
	test.ExpectEquality(t, s.Pending(), 0)

	// requests are fulfilled only once
	s.Tick()
	test.ExpectEquality(t, ct, 1)
	test.ExpectEquality(t, s.Frames(), uint64(2))
}

func TestRequestDuringTick(t *testing.T) {
	s := frame.NewScheduler()

	var ct int
	var loop func()
	loop = func() {
		ct++
		s.Request(loop)
	}
	s.Request(loop)

	// a callback that requests another frame does not run twice in one tick
	for i := range 10 {
		s.Tick()
		test.ExpectEquality(t, ct, i+1)
		test.ExpectEquality(t, s.Pending(), 1)
	}
}

func TestCancel(t *testing.T) {
	s := frame.NewScheduler()

	var ct int
	h := s.Request(func() { ct++ })
	s.Cancel(h)
	test.ExpectEquality(t, s.Pending(), 0)
	s.Tick()
	test.ExpectEquality(t, ct, 0)

	// cancelling unknown and zero handles is harmless
	s.Cancel(h)
	s.Cancel(frame.Handle(0))
	s.Cancel(frame.Handle(1000))
}

func TestCancelDuringTick(t *testing.T) {
	s := frame.NewScheduler()

	var ct int
	var h frame.Handle
	s.Request(func() { s.Cancel(h) })
	h = s.Request(func() { ct++ })

	s.Tick()
	test.ExpectEquality(t, ct, 0)
}
