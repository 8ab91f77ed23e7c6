// Package audio plays short synthesized cues for round outcomes.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flytype/internal/typing"
)

// Cue identifies a sound.
type Cue int

const (
	CueNone Cue = iota
	CueCorrect
	CueIncorrect
	CueBackspace
	CueComplete
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "Correct"
	case CueIncorrect:
		return "Incorrect"
	case CueBackspace:
		return "Backspace"
	case CueComplete:
		return "Complete"
	default:
		return "None"
	}
}

// CueFor maps an orchestrator event to its cue.
func CueFor(e typing.Event) Cue {
	switch e {
	case typing.EventCorrect:
		return CueCorrect
	case typing.EventIncorrect:
		return CueIncorrect
	case typing.EventBackspace:
		return CueBackspace
	case typing.EventCompleted:
		return CueComplete
	default:
		return CueNone
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a tone of freq Hz lasting d.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its final release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which lasts d, with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound builds the streamer for cue at the given volume.
// Returns nil for CueNone.
func Sound(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueCorrect:
		s = tone(880, 60*time.Millisecond, WaveSine, rate)
	case CueIncorrect:
		s = tone(110, 140*time.Millisecond, WaveSaw, rate)
	case CueBackspace:
		s = tone(440, 50*time.Millisecond, WaveSquare, rate)
	case CueComplete:
		// Rising major arpeggio
		s = beep.Seq(
			tone(523.25, 90*time.Millisecond, WaveSine, rate),
			tone(659.25, 90*time.Millisecond, WaveSine, rate),
			tone(783.99, 180*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}
