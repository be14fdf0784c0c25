package sampler

// Snapshot is the state of a single gamepad as read at the start of a frame.
// It should not be kept beyond the frame in which it was read
type Snapshot struct {
	// analogue axes in the range -1.0 to 1.0 (approximately)
	Axes []float64

	// button state. true indicates the button is pressed
	Buttons []bool

	// the gamepad reports buttons using the standard layout
	Standard bool
}

// Axis returns the value of the axis. Missing axes are neutral
func (s Snapshot) Axis(i int) float64 {
	if i < 0 || i >= len(s.Axes) {
		return 0
	}
	return s.Axes[i]
}

// Button returns true if the button is pressed. Missing buttons are not
// pressed
func (s Snapshot) Button(i int) bool {
	if i < 0 || i >= len(s.Buttons) {
		return false
	}
	return s.Buttons[i]
}

// Hat returns the value of the combined hat-switch axis. The boolean is false
// if the gamepad has no such axis
func (s Snapshot) Hat() (float64, bool) {
	if HatAxis >= len(s.Axes) {
		return 0, false
	}
	return s.Axes[HatAxis], true
}

// Devices is implemented by the platform to enumerate the gamepads that are
// currently connected. The order of snapshots should be stable from frame to
// frame
type Devices interface {
	Snapshots() []Snapshot
}

// NoDevices is an implementation of Devices for platforms without gamepads
type NoDevices struct{}

// Snapshots implements the Devices interface
func (NoDevices) Snapshots() []Snapshot {
	return nil
}
