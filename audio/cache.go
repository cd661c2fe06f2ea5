package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/idle-city/core"
)

// soundCache stores pre-rendered cue buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache(format beep.Format) *soundCache {
	return &soundCache{format: format}
}

// get returns the cached buffer, rendering it on first use
func (c *soundCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have rendered it meanwhile
	if c.store[st] != nil {
		return c.store[st]
	}

	buf = beep.NewBuffer(c.format)
	buf.Append(GetSoundEffect(st, c.format.SampleRate))
	c.store[st] = buf
	return buf
}

// preload renders the cues heard in the first seconds of play
func (c *soundCache) preload() {
	c.get(core.SoundPurchase)
	c.get(core.SoundDenied)
}
