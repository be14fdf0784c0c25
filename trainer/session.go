package trainer

import (
	"time"

	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/logger"
)

// ToastDuration is how long the toast message is visible
const ToastDuration = 3 * time.Second

// Chime is played when the player matches the target
type Chime interface {
	Play()
}

// Session is a game in progress. It should be updated once per frame from
// the same goroutine that delivers intents
type Session struct {
	clock intent.Clock
	chime Chime
	state State

	// the time at which the toast should be hidden. zero if there is no toast
	hideToast time.Time

	observers []func(State)
}

// NewSession is the preferred method of initialisation for the Session type.
// The chime can be nil
func NewSession(clock intent.Clock, chime Chime) *Session {
	if clock == nil {
		clock = intent.SystemClock
	}
	return &Session{
		clock: clock,
		chime: chime,
		state: InitialState(),
	}
}

// State returns the current state of the game
func (s *Session) State() State {
	return s.state
}

// Observe adds a function to be called whenever the state changes
func (s *Session) Observe(fn func(State)) {
	s.observers = append(s.observers, fn)
}

// Apply an intent to the game. Only the direction of the intent matters
func (s *Session) Apply(in intent.Intent) {
	prev := s.state
	s.dispatch(Input{Direction: in.Direction})

	if s.state.Successes != prev.Successes {
		logger.Logf(logger.Allow, "trainer", "correct %s (%d)", in.Direction, s.state.Successes)

		// every success restarts the toast timer
		s.hideToast = s.clock.Now().Add(ToastDuration)
		if s.chime != nil {
			s.chime.Play()
		}
	}
}

// Update should be called once per frame
func (s *Session) Update() {
	if s.hideToast.IsZero() {
		return
	}
	if !s.clock.Now().Before(s.hideToast) {
		s.hideToast = time.Time{}
		s.dispatch(HideToast{})
	}
}

func (s *Session) dispatch(a Action) {
	prev := s.state
	s.state = Reduce(s.state, a)
	if s.state != prev {
		for _, fn := range s.observers {
			fn(s.state)
		}
	}
}
