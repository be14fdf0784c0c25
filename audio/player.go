package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep"
	"github.com/jetsetilly/updown/logger"
)

// the oto context can only be created once per process
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

func otoContext() (*oto.Context, error) {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(SampleRate),
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if otoErr == nil {
			<-ready
		}
	})
	return otoCtx, otoErr
}

// streamerReader adapts a beep.Streamer to the io.Reader required by an oto
// player. samples are encoded as mono signed 16bit little-endian
type streamerReader struct {
	s      beep.Streamer
	format beep.Format
	buf    [][2]float64
}

func newStreamerReader(s beep.Streamer) *streamerReader {
	return &streamerReader{
		s: s,
		format: beep.Format{
			SampleRate:  SampleRate,
			NumChannels: 1,
			Precision:   2,
		},
	}
}

func (r *streamerReader) Read(p []byte) (int, error) {
	w := r.format.Width()
	n := len(p) / w
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([][2]float64, n)
	}
	r.buf = r.buf[:n]

	m, ok := r.s.Stream(r.buf)
	if m == 0 && !ok {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	var c int
	for _, v := range r.buf[:m] {
		c += r.format.EncodeSigned(p[c:], v)
	}
	return c, nil
}

// Player plays the success chime. It implements the trainer.Chime interface
type Player struct {
	volume float64

	// the player is accessed by the frame loop and by the oto engine
	crit   sync.Mutex
	active *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The volume is in the range 0.0 to 1.0
func NewPlayer(volume float64) (*Player, error) {
	_, err := otoContext()
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return &Player{
		volume: volume,
	}, nil
}

// Play the chime. A chime that is already playing is stopped first
func (p *Player) Play() {
	ctx, err := otoContext()
	if err != nil {
		logger.Log(logger.Allow, "audio", err)
		return
	}

	p.crit.Lock()
	defer p.crit.Unlock()

	p.stop()

	p.active = ctx.NewPlayer(newStreamerReader(NewChime(SampleRate, p.volume)))
	p.active.Play()
}

// Close stops any playing chime
func (p *Player) Close() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.stop()
}

func (p *Player) stop() error {
	if p.active == nil {
		return nil
	}
	p.active.Pause()
	err := p.active.Close()
	p.active = nil
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Log(logger.Allow, "audio", err)
		return fmt.Errorf("audio: %w", err)
	}
	return nil
}
