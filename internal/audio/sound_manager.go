package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go-breakout/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.3
)

// SoundManager plays short synthesized effects for game events.
// Every method is safe to call before Initialize or after Cleanup.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. The game runs silent when this fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event it has a sound for.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.WallBounce, event.PaddleBounce, event.BrickHit, event.BrickDestroyed,
		event.LifeLost, event.GameWon, event.GameLost)
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s := SoundFor(e.Type); s != nil {
		sm.play(s)
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, volume))
	speaker.Unlock()
}

// SoundFor builds the effect for an event type, or nil when it is silent.
func SoundFor(t event.EventType) beep.Streamer {
	switch t {
	case event.WallBounce:
		return Tone(440, 25*time.Millisecond)
	case event.PaddleBounce:
		return Tone(330, 40*time.Millisecond)
	case event.BrickHit:
		return Tone(660, 40*time.Millisecond)
	case event.BrickDestroyed:
		return Tone(880, 50*time.Millisecond)
	case event.LifeLost:
		return beep.Seq(Tone(220, 120*time.Millisecond), Tone(165, 180*time.Millisecond))
	case event.GameWon:
		return Arpeggio(80*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
	case event.GameLost:
		return Arpeggio(150*time.Millisecond, 392, 311.13, 261.63, 196)
	}
	return nil
}

// Tone returns a sine blip of the given frequency and length.
func Tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

// Arpeggio plays the notes one after another, each lasting step.
func Arpeggio(step time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, Tone(f, step))
	}
	return beep.Seq(notes...)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
