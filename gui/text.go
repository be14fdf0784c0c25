package gui

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/updown/trainer"
)

// Strings shown by every frontend
const (
	Heading      = "Up / Down Trainer"
	Instructions = "Follow the Action box and press your controller or keyboard arrows to move the highlight."
	ActionLabel  = "Action"
)

// Boxes in the order they should be drawn, top to bottom
var Boxes = []trainer.Box{trainer.Top, trainer.Bottom}

// BoxLabel returns the text that is drawn inside the box
func BoxLabel(b trainer.Box) string {
	if b == trainer.Top {
		return "Up"
	}
	return "Down"
}

// ActionText is the target direction as shown in the action panel
func ActionText(s trainer.State) string {
	return strings.ToUpper(s.Target.String())
}

// HintText is the line beneath the action text
func HintText(s trainer.State) string {
	return fmt.Sprintf("Press the D-pad %s to match the highlight.", s.Target)
}
