package audio

import (
	"testing"

	"github.com/lixenwraith/idle-city/core"
)

// TestSoundManagerGracefulDegradation verifies playing before initialization is a silent no-op
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	for st := range core.SoundTypeCount {
		if sm.Play(st) {
			t.Errorf("%s played without a speaker", st)
		}
	}
	sm.SetMuted(true)
	sm.SetMuted(false)
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	if sm.IsMuted() {
		t.Fatal("new manager should not be muted")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("expected muted")
	}
	if sm.Play(core.SoundHit) {
		t.Error("muted manager played a cue")
	}
}

// TestCacheRendersOnce verifies repeated lookups share one buffer
func TestCacheRendersOnce(t *testing.T) {
	c := newSoundCache(format)
	a := c.get(core.SoundHeal)
	if a == nil || a.Len() == 0 {
		t.Fatal("expected a rendered buffer")
	}
	if b := c.get(core.SoundHeal); b != a {
		t.Error("expected the cached buffer")
	}
	if c.get(core.SoundType(-1)) != nil {
		t.Error("expected nil for an invalid type")
	}
}
