package intent

import "time"

// RepeatDelay is the minimum time between two accepted intents of the same
// direction
const RepeatDelay = 250 * time.Millisecond

// EmitMemory records the most recent accepted intent. The zero value is empty
type EmitMemory struct {
	LastDirection Direction
	LastEmit      time.Time
}

// Empty returns true if nothing has been accepted since the memory was reset
func (m EmitMemory) Empty() bool {
	return !m.LastDirection.Valid()
}

// Debouncer decides whether a candidate direction becomes an Intent. The
// memory is shared by all sources so switching from a gamepad to the
// keyboard does not bypass the repeat delay
type Debouncer struct {
	clock  Clock
	memory EmitMemory
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type. A nil clock means SystemClock
func NewDebouncer(clock Clock) *Debouncer {
	if clock == nil {
		clock = SystemClock
	}
	return &Debouncer{
		clock: clock,
	}
}

// Offer a candidate direction. Returns the new intent and true if the
// candidate is accepted
//
// A candidate is rejected only if it repeats the most recently accepted
// direction within RepeatDelay. A rejection does not change the memory and
// the opposite direction is never held back
func (db *Debouncer) Offer(d Direction, src Source) (Intent, bool) {
	if !d.Valid() {
		return Intent{}, false
	}

	now := db.clock.Now()
	if db.memory.LastDirection == d && now.Sub(db.memory.LastEmit) < RepeatDelay {
		return Intent{}, false
	}

	db.memory = EmitMemory{
		LastDirection: d,
		LastEmit:      now,
	}

	return Intent{
		Direction: d,
		Timestamp: now,
		Source:    src,
	}, true
}

// Memory returns a copy of the current emit memory
func (db *Debouncer) Memory() EmitMemory {
	return db.memory
}

// Reset the emit memory to empty
func (db *Debouncer) Reset() {
	db.memory = EmitMemory{}
}
