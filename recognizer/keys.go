package recognizer

import "github.com/jetsetilly/updown/intent"

// Key identifies a key on the keyboard. Frontends translate their own key
// events into these identifiers
type Key string

// List of keys with meaning to the recognizer. All other keys are ignored
const (
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
)

func (k Key) direction() (intent.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return intent.Up, true
	case KeyArrowDown:
		return intent.Down, true
	}
	return 0, false
}
