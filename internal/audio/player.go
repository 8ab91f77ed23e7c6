package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flytype/internal/config"
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
func (NopPlayer) Close()   {}

// SpeakerPlayer mixes cues into the system audio device.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// NewPlayer returns a speaker-backed player, or a NopPlayer when audio is
// disabled in cfg.
func NewPlayer(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return NopPlayer{}, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues c on the mixer.
func (p *SpeakerPlayer) Play(c Cue) {
	s := Sound(c, p.rate, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	// The mixer is read by the speaker goroutine
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the player. beep has no way to release the device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
}
