package sampler

import (
	"math"
	"strings"
)

// HatTolerance is the distance a hat value can be from a bucket value and
// still be considered a match
const HatTolerance = 0.05

// values on the edge of the tolerance are a match. the distance is not exact
// in floating point so the edge is widened slightly
const hatEpsilon = 1e-9

// the hat switch of some controllers is reported as a single axis. each of
// the eight directions (and neutral) is a discrete value in the range -1 to
// 1. the diagonals appear in more than one table, so a diagonal counts as
// both of its cardinal directions
var (
	hatUpValues    = []float64{-1, -0.714, 0.714, 1}
	hatDownValues  = []float64{-0.142, 0, 0.142}
	hatLeftValues  = []float64{0.142, 0.428, 0.714}
	hatRightValues = []float64{-0.714, -0.428, -0.142}
)

// Hat is the set of cardinal directions indicated by a hat-switch value
type Hat uint8

// HatNeutral is the empty set
const HatNeutral Hat = 0

// List of hat flags
const (
	HatUp Hat = 1 << iota
	HatDown
	HatLeft
	HatRight
)

// Is returns true if all the flags in o are also in h
func (h Hat) Is(o Hat) bool {
	return o != HatNeutral && h&o == o
}

// Horizontal returns true if the hat indicates left or right
func (h Hat) Horizontal() bool {
	return h&(HatLeft|HatRight) != 0
}

func (h Hat) String() string {
	if h == HatNeutral {
		return "neutral"
	}
	var s []string
	if h.Is(HatUp) {
		s = append(s, "up")
	}
	if h.Is(HatDown) {
		s = append(s, "down")
	}
	if h.Is(HatLeft) {
		s = append(s, "left")
	}
	if h.Is(HatRight) {
		s = append(s, "right")
	}
	return strings.Join(s, "+")
}

func hatMatches(v float64, targets []float64) bool {
	for _, t := range targets {
		if math.Abs(v-t) <= HatTolerance+hatEpsilon {
			return true
		}
	}
	return false
}

// ClassifyHat resolves a hat-switch value to its directions. A value that
// matches no bucket is neutral and is never guessed into a direction
func ClassifyHat(v float64) Hat {
	if math.IsNaN(v) {
		return HatNeutral
	}

	var h Hat
	if hatMatches(v, hatUpValues) {
		h |= HatUp
	}
	if hatMatches(v, hatDownValues) {
		h |= HatDown
	}
	if hatMatches(v, hatLeftValues) {
		h |= HatLeft
	}
	if hatMatches(v, hatRightValues) {
		h |= HatRight
	}
	return h
}
