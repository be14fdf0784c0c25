package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/updown/sampler"
)

// gamepads implements the sampler.Devices interface
type gamepads struct {
	ids []ebiten.GamepadID
}

// Snapshots reads every connected gamepad. Raw axes are always used because
// the hat switch is only visible on the raw axes. Buttons use the standard
// layout where ebiten knows the mapping for the device
func (g *gamepads) Snapshots() []sampler.Snapshot {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	if len(g.ids) == 0 {
		return nil
	}

	snapshots := make([]sampler.Snapshot, 0, len(g.ids))
	for _, id := range g.ids {
		snapshots = append(snapshots, snapshot(id))
	}
	return snapshots
}

func snapshot(id ebiten.GamepadID) sampler.Snapshot {
	var s sampler.Snapshot

	s.Axes = make([]float64, ebiten.GamepadAxisCount(id))
	for i := range s.Axes {
		s.Axes[i] = ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(i))
	}

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		s.Standard = true
		s.Buttons = make([]bool, ebiten.StandardGamepadButtonMax+1)
		for i := range s.Buttons {
			s.Buttons[i] = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(i))
		}
		return s
	}

	s.Buttons = make([]bool, ebiten.GamepadButtonCount(id))
	for i := range s.Buttons {
		s.Buttons[i] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
	}

	return s
}
