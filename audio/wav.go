package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV renders the chime at full volume and writes it as a mono 16bit WAV
// file
func WriteWAV(w io.WriteSeeker) error {
	const bitDepth = 16
	const pcm = 1

	samples := Render(NewChime(SampleRate, 1.0))

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  int(SampleRate),
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range samples {
		buf.Data[i] = int(math.Round(v * math.MaxInt16))
	}

	enc := wav.NewEncoder(w, int(SampleRate), bitDepth, 1, pcm)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}
