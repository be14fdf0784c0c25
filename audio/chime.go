// Package audio synthesises and plays the success chime.
//
// The chime is a beep.Streamer so that it can be rendered to a buffer for
// export or drained by the oto player in real time.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate of the chime
const SampleRate = beep.SampleRate(44100)

// shape of the chime
const (
	chimeDuration = 650 * time.Millisecond
	attackTime    = 20 * time.Millisecond
	releaseTime   = 120 * time.Millisecond

	// the chime rises from B4 to G5
	startFreq = 493.88
	endFreq   = 783.99

	// peak gain reached at the end of the attack
	peakGain = 0.6
)

// chime is a beep.Streamer for the success chime. the sound is a rising sine
// sweep shaped by an attack/release envelope and a gain ramp
type chime struct {
	sr     beep.SampleRate
	pos    int
	length int
	volume float64
}

// NewChime returns a new beep.Streamer for the chime. The volume is in the
// range 0.0 to 1.0
func NewChime(sr beep.SampleRate, volume float64) beep.Streamer {
	return &chime{
		sr:     sr,
		length: sr.N(chimeDuration),
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// sample returns the value of the chime at time t (in seconds)
func sample(t float64) float64 {
	dur := chimeDuration.Seconds()
	attack := attackTime.Seconds()
	release := releaseTime.Seconds()

	envAttack := math.Min(1, t/attack)
	envRelease := 1 - math.Max(0, (t-(dur-release))/release)
	env := envAttack * envRelease

	freq := startFreq + (endFreq-startFreq)*(t/dur)
	v := env * math.Sin(2*math.Pi*freq*t)

	// gain ramps up to peak over the attack and then down to zero by the end
	var gain float64
	if t < attack {
		gain = peakGain * t / attack
	} else {
		gain = peakGain * (1 - (t-attack)/(dur-attack))
	}

	return v * math.Max(0, gain)
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.length {
			return i, i > 0
		}
		v := sample(float64(c.pos)/float64(c.sr)) * c.volume
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }

// Render drains the streamer and returns the samples of the left channel
func Render(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, v := range buf[:n] {
			out = append(out, v[0])
		}
		if !ok {
			return out
		}
	}
}
