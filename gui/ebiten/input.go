package ebiten

import (
	"github.com/jetsetilly/updown/recognizer"
	input "github.com/quasilyte/ebitengine-input"
)

const (
	actionUp input.Action = iota
	actionDown
	actionQuit
)

// keyboard handling. gamepads are not handled here because they are sampled
// by the recognizer
type keyboard struct {
	system  input.System
	handler *input.Handler

	// ebiten reports held keys rather than key events so repeats are
	// emulated
	up   recognizer.Repeater
	down recognizer.Repeater
}

func (k *keyboard) initialise() {
	k.system.Init(input.SystemConfig{
		DevicesEnabled: input.KeyboardDevice,
	})

	keymap := input.Keymap{
		actionUp:   {input.KeyUp, input.KeyW},
		actionDown: {input.KeyDown, input.KeyS},
		actionQuit: {input.KeyEscape},
	}
	k.handler = k.system.NewHandler(uint8(0), keymap)
}

// update returns true if the quit key has been pressed
func (k *keyboard) update(rec *recognizer.Recognizer) bool {
	k.system.Update()

	if k.handler.ActionIsJustPressed(actionQuit) {
		return true
	}

	if k.up.Update(k.handler.ActionIsPressed(actionUp)) {
		rec.KeyDown(recognizer.KeyArrowUp)
	}
	if k.down.Update(k.handler.ActionIsPressed(actionDown)) {
		rec.KeyDown(recognizer.KeyArrowDown)
	}

	return false
}
