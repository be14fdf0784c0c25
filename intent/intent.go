// Package intent defines the directional intents produced by the recognizer
// and the Debouncer that decides whether a candidate direction becomes one.
//
// An intent is only ever up or down. Other physical signals (left and right)
// exist to modulate how candidates are formed and never produce an Intent.
package intent

import (
	"fmt"
	"time"
)

// Direction is the direction of an intent. The zero value is not a valid
// direction.
type Direction int

// List of valid Direction values
const (
	Up Direction = iota + 1
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid returns true if the direction is one of the enumerated values
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Source indicates the provenance of an intent
type Source int

// List of valid Source values
const (
	Device Source = iota
	Keyboard
)

func (s Source) String() string {
	switch s {
	case Device:
		return "device"
	case Keyboard:
		return "keyboard"
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// Intent is a decided and debounced direction. It is never modified after
// creation
type Intent struct {
	Direction Direction
	Timestamp time.Time
	Source    Source
}

func (in Intent) String() string {
	return fmt.Sprintf("%s (%s)", in.Direction, in.Source)
}

// Clock is the source of time for the Debouncer
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock uses time.Now(). The monotonic reading carried by time.Time is
// what makes debounce arithmetic immune to wall-clock changes
var SystemClock Clock = systemClock{}
