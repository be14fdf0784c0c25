package trainer_test

import (
	"testing"

	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/trainer"
	"github.com/jetsetilly/updown/test"
)

func TestInitialState(t *testing.T) {
	s := trainer.InitialState()
	test.ExpectEquality(t, s.Selected, trainer.Bottom)
	test.ExpectEquality(t, s.Target, intent.Up)
	test.ExpectFailure(t, s.ToastVisible())
	test.ExpectEquality(t, s.Successes, 0)
}

func TestReduceInput(t *testing.T) {
	s := trainer.InitialState()

	// wrong direction changes nothing
	n := trainer.Reduce(s, trainer.Input{Direction: intent.Down})
	test.ExpectEquality(t, n, s)

	n = trainer.Reduce(s, trainer.Input{Direction: intent.Up})
	test.ExpectEquality(t, n.Selected, trainer.Top)
	test.ExpectEquality(t, n.Target, intent.Down)
	test.ExpectEquality(t, n.Toast, "Correct!")
	test.ExpectEquality(t, n.Successes, 1)

	n = trainer.Reduce(n, trainer.Input{Direction: intent.Up})
	test.ExpectEquality(t, n.Successes, 1)

	n = trainer.Reduce(n, trainer.Input{Direction: intent.Down})
	test.ExpectEquality(t, n.Selected, trainer.Bottom)
	test.ExpectEquality(t, n.Target, intent.Up)
	test.ExpectEquality(t, n.Successes, 2)
}

func TestReduceHideToast(t *testing.T) {
	s := trainer.InitialState()
	test.ExpectEquality(t, trainer.Reduce(s, trainer.HideToast{}), s)

	s = trainer.Reduce(s, trainer.Input{Direction: intent.Up})
	n := trainer.Reduce(s, trainer.HideToast{})
	test.ExpectFailure(t, n.ToastVisible())
	test.ExpectEquality(t, n.Successes, s.Successes)
	test.ExpectEquality(t, n.Selected, s.Selected)
}

func TestBox(t *testing.T) {
	test.ExpectEquality(t, trainer.BoxFor(intent.Up), trainer.Top)
	test.ExpectEquality(t, trainer.BoxFor(intent.Down), trainer.Bottom)
	test.ExpectEquality(t, trainer.Top.String(), "top")
	test.ExpectEquality(t, trainer.Bottom.String(), "bottom")
}
