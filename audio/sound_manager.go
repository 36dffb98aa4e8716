package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lguibr/pongarena/game"
)

const queueSize = 16

// SoundManager plays game cues through the speaker. It implements game.Audio:
// Play only enqueues, a background loop renders tones into the mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	rate        beep.SampleRate // Rate tones are rendered at
	queue       chan game.Sound
	stopCh      chan struct{}
	done        chan struct{}
	initialized bool
	running     atomic.Bool
	stopped     atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	// Guards the mixer while the speaker streams it.
	lock   func()
	unlock func()
}

var _ game.Audio = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. Nothing is audible until Initialize succeeds.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		rate:   sampleRate,
		queue:  make(chan game.Sound, queueSize),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker and starts the playback loop.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.start()
	return nil
}

// start runs the playback loop. The caller holds sm.mu.
func (sm *SoundManager) start() {
	sm.initialized = true
	sm.running.Store(true)
	go sm.loop()
}

// Play queues a cue without blocking. Cues are dropped when the queue is full
// or the manager is not running.
func (sm *SoundManager) Play(sound game.Sound) {
	if !sm.running.Load() {
		sm.dropped.Add(1)
		return
	}
	select {
	case sm.queue <- sound:
	default:
		sm.dropped.Add(1)
	}
}

func (sm *SoundManager) loop() {
	defer close(sm.done)
	for {
		select {
		case <-sm.stopCh:
			return
		case sound := <-sm.queue:
			tone, ok := ToneFor(sound)
			if !ok {
				sm.dropped.Add(1)
				continue
			}
			streamer, err := NewToneStreamer(tone, sm.rate, sm.volume)
			if err != nil {
				log.Printf("WARN: audio: dropping %s cue: %v", sound, err)
				sm.dropped.Add(1)
				continue
			}
			sm.lock()
			sm.mixer.Add(streamer)
			sm.unlock()
			sm.played.Add(1)
		}
	}
}

// Stats returns how many cues were played and dropped.
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}

// Cleanup stops the playback loop and silences the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.stopped.CompareAndSwap(false, true) {
		return
	}
	sm.running.Store(false)
	close(sm.stopCh)
	if !sm.initialized {
		return
	}
	<-sm.done

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	sm.initialized = false
}
