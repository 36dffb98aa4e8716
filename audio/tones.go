package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lguibr/pongarena/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneAttack  = 2 * time.Millisecond
	toneRelease = 15 * time.Millisecond
)

// Tone describes one sound cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Saw      bool
}

// tones maps every game cue to its tone.
var tones = map[game.Sound]Tone{
	game.SoundHit:   {Freq: 880, Duration: 50 * time.Millisecond},
	game.SoundTick:  {Freq: 440, Duration: 30 * time.Millisecond},
	game.SoundError: {Freq: 110, Duration: 250 * time.Millisecond, Saw: true},
}

// ToneFor returns the tone played for sound.
func ToneFor(sound game.Sound) (Tone, bool) {
	tone, ok := tones[sound]
	return tone, ok
}

// NewToneStreamer renders a tone at the given sample rate, shaped to avoid
// clicks and scaled by volume in [0, 1].
func NewToneStreamer(tone Tone, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	var (
		wave beep.Streamer
		err  error
	)
	if tone.Saw {
		wave = newSawOscillator(tone.Freq, sr)
	} else {
		wave, err = generators.SineTone(sr, tone.Freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %vHz: %w", tone.Freq, err)
		}
	}

	total := sr.N(tone.Duration)
	shaped := newEnvelope(beep.Take(total, wave), total, sr.N(toneAttack), sr.N(toneRelease))
	return newVolume(shaped, volume), nil
}

// sawOscillator generates an endless sawtooth wave in [-1, 1).
type sawOscillator struct {
	step  float64
	phase float64
}

func newSawOscillator(freq float64, sr beep.SampleRate) *sawOscillator {
	return &sawOscillator{step: freq / float64(sr)}
}

func (o *sawOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 2 * (o.phase - 0.5)
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *sawOscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, math.Max(float64(remaining)/float64(e.release), 0))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. effects.Volume works in powers of Base,
// so a zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
