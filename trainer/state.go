// Package trainer implements the up/down training game. The game only
// advances when the player's intent matches the target direction.
package trainer

import (
	"github.com/jetsetilly/updown/intent"
)

// Box is one of the two selectable boxes
type Box int

// List of valid Box values
const (
	Bottom Box = iota
	Top
)

func (b Box) String() string {
	if b == Top {
		return "top"
	}
	return "bottom"
}

// BoxFor returns the box that is selected by the direction
func BoxFor(d intent.Direction) Box {
	if d == intent.Up {
		return Top
	}
	return Bottom
}

// the message shown when the player matches the target
const correctMessage = "Correct!"

// State of the game
type State struct {
	Selected  Box
	Target    intent.Direction
	Toast     string
	Successes int
}

// InitialState returns the state of a new game
func InitialState() State {
	return State{
		Selected: Bottom,
		Target:   intent.Up,
	}
}

// ToastVisible returns true if there is a toast message
func (s State) ToastVisible() bool {
	return s.Toast != ""
}

// Action is implemented by Input and HideToast
type Action interface {
	isAction()
}

// Input is the action of the player indicating a direction
type Input struct {
	Direction intent.Direction
}

// HideToast is the action of the toast timing out
type HideToast struct{}

func (Input) isAction()     {}
func (HideToast) isAction() {}

// Reduce applies the action to the state and returns the new state
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Input:
		if a.Direction != s.Target {
			return s
		}
		return State{
			Selected:  BoxFor(a.Direction),
			Target:    s.Target.Opposite(),
			Toast:     correctMessage,
			Successes: s.Successes + 1,
		}
	case HideToast:
		if !s.ToastVisible() {
			return s
		}
		s.Toast = ""
		return s
	}
	return s
}
