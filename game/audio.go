package game

// Sound identifies a fire-and-forget audio cue requested by the simulation.
type Sound int

const (
	SoundHit   Sound = iota // Paddle contact
	SoundTick               // Wall or goal border bounce
	SoundError              // Goal scored
)

func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundTick:
		return "tick"
	case SoundError:
		return "error"
	}
	return "unknown"
}

// Audio plays sound cues. Implementations must not block the caller.
type Audio interface {
	Play(sound Sound)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
