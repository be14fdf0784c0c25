package audio_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/updown/audio"
	"github.com/jetsetilly/updown/test"
)

func TestChimeLength(t *testing.T) {
	samples := audio.Render(audio.NewChime(audio.SampleRate, 1.0))
	test.ExpectEquality(t, len(samples), audio.SampleRate.N(650_000_000))

	// silent at the start and at the end
	test.ExpectEquality(t, samples[0], 0.0)
	test.ExpectSuccess(t, math.Abs(samples[len(samples)-1]) < 0.001)
}

func TestChimePeak(t *testing.T) {
	samples := audio.Render(audio.NewChime(audio.SampleRate, 1.0))

	var peak float64
	for _, v := range samples {
		peak = math.Max(peak, math.Abs(v))
	}
	test.ExpectSuccess(t, peak <= 0.6)
	test.ExpectSuccess(t, peak > 0.3)
}

func TestChimeVolume(t *testing.T) {
	full := audio.Render(audio.NewChime(audio.SampleRate, 1.0))
	half := audio.Render(audio.NewChime(audio.SampleRate, 0.5))
	test.DemandEquality(t, len(half), len(full))
	for i := range full {
		test.ExpectApproximate(t, half[i]*2, full[i], 0.0001, i)
	}

	// volume is clamped
	loud := audio.Render(audio.NewChime(audio.SampleRate, 10))
	test.ExpectEquality(t, loud[1000], full[1000])
}

func TestWriteWAV(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "chime.wav")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, audio.WriteWAV(f))
	test.DemandSuccess(t, f.Close())

	f, err = os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(audio.SampleRate))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), audio.SampleRate.N(650_000_000))
}
