package recognizer

// Frame counts used by Repeater. At 60 frames per second the first repeat
// arrives after half a second and then at 15Hz
const (
	RepeatDelayFrames    = 30
	RepeatIntervalFrames = 4
)

// Repeater emulates keyboard autorepeat for frontends that only see whether
// a key is held. The zero value is ready to use
type Repeater struct {
	held int
}

// Update should be called once per frame with the held state of the key. It
// returns true on the frame the key is pressed and for every repeat
func (r *Repeater) Update(pressed bool) bool {
	if !pressed {
		r.held = 0
		return false
	}

	r.held++
	if r.held == 1 {
		return true
	}

	n := r.held - 1 - RepeatDelayFrames
	return n >= 0 && n%RepeatIntervalFrames == 0
}
