package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/pongarena/game"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		require.Less(t, len(out), 10*int(sampleRate), "stream must be finite")
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneFor(t *testing.T) {
	testCases := []struct {
		sound    game.Sound
		freq     float64
		duration time.Duration
		saw      bool
	}{
		{game.SoundHit, 880, 50 * time.Millisecond, false},
		{game.SoundTick, 440, 30 * time.Millisecond, false},
		{game.SoundError, 110, 250 * time.Millisecond, true},
	}

	for _, tc := range testCases {
		t.Run(tc.sound.String(), func(t *testing.T) {
			tone, ok := ToneFor(tc.sound)
			require.True(t, ok)
			assert.Equal(t, tc.freq, tone.Freq)
			assert.Equal(t, tc.duration, tone.Duration)
			assert.Equal(t, tc.saw, tone.Saw)
		})
	}

	_, ok := ToneFor(game.Sound(42))
	assert.False(t, ok)
}

func TestNewToneStreamer_LengthAndRange(t *testing.T) {
	for _, sound := range []game.Sound{game.SoundHit, game.SoundTick, game.SoundError} {
		t.Run(sound.String(), func(t *testing.T) {
			tone, _ := ToneFor(sound)
			s, err := NewToneStreamer(tone, sampleRate, 1)
			require.NoError(t, err)

			samples := drain(t, s)
			assert.Len(t, samples, sampleRate.N(tone.Duration))
			for i, smp := range samples {
				assert.LessOrEqual(t, math.Abs(smp[0]), 1.0, "sample %d", i)
				assert.Equal(t, smp[0], smp[1], "tones are mono")
			}
			assert.InDelta(t, 0, samples[0][0], 1e-9, "attack starts silent")
		})
	}
}

func TestNewToneStreamer_Volume(t *testing.T) {
	tone, _ := ToneFor(game.SoundHit)

	loud, err := NewToneStreamer(tone, sampleRate, 1)
	require.NoError(t, err)
	quiet, err := NewToneStreamer(tone, sampleRate, 0.25)
	require.NoError(t, err)
	muted, err := NewToneStreamer(tone, sampleRate, 0)
	require.NoError(t, err)

	loudSamples := drain(t, loud)
	quietSamples := drain(t, quiet)
	mutedSamples := drain(t, muted)
	for i := range loudSamples {
		assert.InDelta(t, loudSamples[i][0]*0.25, quietSamples[i][0], 1e-9)
		assert.Equal(t, 0.0, mutedSamples[i][0])
	}
}

func TestNewToneStreamer_RejectsAliasing(t *testing.T) {
	_, err := NewToneStreamer(Tone{Freq: 30000, Duration: 10 * time.Millisecond}, sampleRate, 1)
	assert.Error(t, err)
}

func TestSawOscillator(t *testing.T) {
	osc := newSawOscillator(125, beep.SampleRate(1000))
	samples := make([][2]float64, 20)
	n, ok := osc.Stream(samples)

	assert.True(t, ok)
	assert.Equal(t, 20, n)
	assert.InDelta(t, -1.0, samples[0][0], 1e-9)
	assert.InDelta(t, -0.75, samples[1][0], 1e-9)
	assert.InDelta(t, -1.0, samples[8][0], 1e-9, "period of eight samples")
	assert.NoError(t, osc.Err())
}
