package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/engine"
)

// SoundManager plays the game's sound cues through a single speaker mixer
// Every play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio is not an error, the manager simply stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayStart plays the round start chime
func (sm *SoundManager) PlayStart() { sm.play(CueStart) }

// PlayFall plays the crash of a lost round
func (sm *SoundManager) PlayFall() { sm.play(CueFall) }

// PlayRewind plays the descending recovery sweep
func (sm *SoundManager) PlayRewind() { sm.play(CueRewind) }

func (sm *SoundManager) play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewCue(c, sm.rate, sm.cfg.Volume, sm.rng)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventRoundStarted:
		sm.PlayStart()
	case engine.EventRoundLost:
		sm.PlayFall()
	case engine.EventRecoveryStarted:
		sm.PlayRewind()
	}
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventRoundStarted,
		engine.EventRoundLost,
		engine.EventRecoveryStarted,
	}
}
