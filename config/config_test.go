package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)

	f, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestParseAndApply(t *testing.T) {
	f, err := Parse([]byte(`
tick_interval: 50ms
frame_interval: 16ms
income_period: 2s
admin_multiplier: 4
glitch_duration: 1s
sound: false
admin_keys: true
seed: 42
`))
	require.NoError(t, err)
	require.NotNil(t, f.Seed)
	assert.Equal(t, uint64(42), *f.Seed)

	s := engine.DefaultSettings()
	f.Apply(&s)
	assert.Equal(t, 50*time.Millisecond, s.TickInterval)
	assert.Equal(t, 16*time.Millisecond, s.FrameInterval)
	assert.Equal(t, 2*time.Second, s.IncomePeriod)
	assert.Equal(t, 4.0, s.AdminMultiplier)
	assert.Equal(t, time.Second, s.GlitchDuration)
	assert.False(t, s.SoundEnabled)
	assert.True(t, s.AdminKeys)
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	f, err := Parse([]byte("sound: false\n"))
	require.NoError(t, err)

	s := engine.DefaultSettings()
	want := s
	want.SoundEnabled = false
	f.Apply(&s)
	assert.Equal(t, want, s)
}

func TestValidateListsEveryProblem(t *testing.T) {
	_, err := Parse([]byte("tick_interval: 0s\nadmin_multiplier: -1\nglitch_duration: -1s\n"))
	require.Error(t, err)
	for _, field := range []string{"tick_interval", "admin_multiplier", "glitch_duration"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("tick_interval: [oops"))
	assert.Error(t, err)
}

func TestPayloadCarriesLiveFieldsOnly(t *testing.T) {
	f, err := Parse([]byte("admin_multiplier: 2\ntick_interval: 10ms\n"))
	require.NoError(t, err)
	p := f.Payload()
	require.NotNil(t, p.AdminMultiplier)
	assert.Equal(t, 2.0, *p.AdminMultiplier)
	assert.Nil(t, p.GlitchDuration)
	assert.Nil(t, p.SoundEnabled)
}

func TestWatcherQueuesReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sound: true\n"), 0o644))

	queue := event.NewQueue()
	w, err := NewWatcher(path, queue, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("sound: false\nadmin_multiplier: 3\n"), 0o644))
	require.Eventually(t, func() bool { return queue.Len() > 0 }, 2*time.Second, 10*time.Millisecond)

	events := queue.Consume()
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, event.EventSettingsReloaded, last.Type)
	p := last.Payload.(*event.SettingsPayload)
	require.NotNil(t, p.SoundEnabled)
	assert.False(t, *p.SoundEnabled)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherIgnoresInvalidFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	queue := event.NewQueue()
	w, err := NewWatcher(path, queue, nil)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: -1s\n"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, queue.Len())

	cancel()
	require.NoError(t, <-done)
}
