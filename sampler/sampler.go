// Package sampler reduces the state of the connected gamepads to, at most, a
// single candidate direction per frame.
//
// Gamepads differ in how they report a d-pad. Some use buttons, some use a
// hat switch encoded as a single axis and some only have analogue sticks.
// The decision table in Evaluate() handles all three and makes sure that
// horizontal movement, which is never emitted, suppresses any accidental
// vertical reading.
package sampler

import (
	"math"

	"github.com/jetsetilly/updown/intent"
)

// Thresholds applied to analogue values
const (
	// magnitude an axis must exceed to count as movement
	MovementThreshold = 0.5

	// a vertical reading from an axis is only trusted when the horizontal
	// axis is below this magnitude
	HorizontalSuppressionThreshold = 0.3

	// magnitude below which the vertical axis is considered idle
	VerticalActivityThreshold = 0.1
)

// Axis indexes
const (
	HorizontalAxis = 0
	VerticalAxis   = 2
	HatAxis        = 9
)

// Button indexes in the standard layout
const (
	ButtonUp    = 12
	ButtonDown  = 13
	ButtonLeft  = 14
	ButtonRight = 15
)

// the vertical axis is noisy when idle so small values are reduced to zero.
// the axis at index 1 is used for horizontal tracking on some controllers and
// is ignored
func verticalAxis(s Snapshot) float64 {
	v := s.Axis(VerticalAxis)
	if math.IsNaN(v) || math.Abs(v) < VerticalActivityThreshold {
		return 0
	}
	return v
}

func horizontalAxis(s Snapshot) float64 {
	v := s.Axis(HorizontalAxis)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Evaluate a single gamepad. Returns the candidate direction and true if the
// gamepad indicates up or down. Up is preferred if both are indicated
func Evaluate(s Snapshot) (intent.Direction, bool) {
	horiz := horizontalAxis(s)
	vert := verticalAxis(s)

	hat := HatNeutral
	if v, ok := s.Hat(); ok {
		hat = ClassifyHat(v)
	}

	// left/right buttons only have meaning in the standard layout
	horizButtons := s.Standard && (s.Button(ButtonLeft) || s.Button(ButtonRight))

	horizActive := horizButtons || hat.Horizontal() || math.Abs(horiz) > MovementThreshold

	// a borderline horizontal reading must not be allowed to register as
	// vertical noise
	axisVertical := !horizActive && math.Abs(horiz) < HorizontalSuppressionThreshold

	up := (!horizActive && s.Standard && s.Button(ButtonUp)) ||
		(axisVertical && vert < -MovementThreshold) ||
		(!horizActive && hat.Is(HatUp))
	if up {
		return intent.Up, true
	}

	down := (!horizActive && s.Standard && s.Button(ButtonDown)) ||
		(axisVertical && vert > MovementThreshold) ||
		(!horizActive && hat.Is(HatDown))
	if down {
		return intent.Down, true
	}

	return 0, false
}

// Sample the connected gamepads and return the candidate from the first
// gamepad that indicates a direction. Returns false if no gamepad does
func Sample(devs Devices) (intent.Direction, bool) {
	if devs == nil {
		return 0, false
	}
	for _, s := range devs.Snapshots() {
		if d, ok := Evaluate(s); ok {
			return d, true
		}
	}
	return 0, false
}
