package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/parameter"
)

var format = beep.Format{
	SampleRate:  beep.SampleRate(parameter.AudioSampleRate),
	NumChannels: 2,
	Precision:   2,
}

// SoundManager plays game cues through the system speaker
// Play is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		cache: newSoundCache(format),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue and reports whether it was sent to the speaker
func (sm *SoundManager) Play(st core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	buf := sm.cache.get(st)
	if buf == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), parameter.SoundVolume))
	speaker.Unlock()
	return true
}

// SetMuted silences new cues and drops the ones in flight
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if !muted {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
