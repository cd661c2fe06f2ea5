package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// SoundPlayer is the audio backend; the audio package's SoundManager implements it
type SoundPlayer interface {
	Play(core.SoundType) bool
	SetMuted(bool)
	IsMuted() bool
}

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from the audio backend
type AudioSystem struct {
	player SoundPlayer

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is unavailable
func NewAudioSystem(ctx *engine.GameContext, player SoundPlayer) *AudioSystem {
	s := &AudioSystem{
		player:      player,
		statPlayed:  ctx.Status.Ints.Get("audio.played"),
		statDropped: ctx.Status.Ints.Get("audio.dropped"),
	}
	if player != nil {
		player.SetMuted(!ctx.Settings.SoundEnabled)
	}
	return s
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent processes sound request events
func (s *AudioSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	if s.player == nil || !ctx.Settings.SoundEnabled {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	if s.player.Play(payload.Sound) {
		s.statPlayed.Add(1)
	} else {
		s.statDropped.Add(1)
	}
}

// Update keeps the backend mute state in line with settings
func (s *AudioSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	if s.player != nil && s.player.IsMuted() == ctx.Settings.SoundEnabled {
		s.player.SetMuted(!ctx.Settings.SoundEnabled)
	}
}

// ToggleMute flips the sound setting and reports whether sound is now on
func (s *AudioSystem) ToggleMute(ctx *engine.GameContext) bool {
	ctx.Settings.SoundEnabled = !ctx.Settings.SoundEnabled
	if ctx.Settings.SoundEnabled {
		ctx.Notify("Sound on", parameter.MessageDuration)
	} else {
		ctx.Notify("Sound off", parameter.MessageDuration)
	}
	return ctx.Settings.SoundEnabled
}
