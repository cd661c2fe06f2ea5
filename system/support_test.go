package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

func TestAdminKeysRequireFlag(t *testing.T) {
	ctx, set, cs := newTestGame(t)

	assert.False(t, set.Admin.GrantOre(ctx))
	assert.False(t, set.Admin.UnlockBlackhole(ctx))
	assert.Zero(t, ctx.State.Mining.Inventory["stone"])
	assert.False(t, ctx.State.Blackhole.Unlocked)

	ctx.Settings.AdminKeys = true
	require.True(t, set.Admin.GrantOre(ctx))
	for _, o := range ctx.Content.Ores {
		assert.Equal(t, parameter.AdminOreGrant, ctx.State.Mining.Inventory[o.Name], o.Name)
	}
	require.True(t, set.Admin.UnlockBlackhole(ctx))
	assert.True(t, ctx.State.Blackhole.Unlocked)

	cs.DispatchEvents()
	assert.NotEmpty(t, ctx.State.Message.Text)
	assert.False(t, ctx.State.Sanity.AwaitingReturn, "admin unlock does not send to the map")
}

func TestMessageExpires(t *testing.T) {
	ctx, _, cs := newTestGame(t)

	ctx.Notify("hello", 250*time.Millisecond)
	cs.DispatchEvents()
	assert.Equal(t, "hello", ctx.State.Message.Text)

	cs.Tick()
	cs.Tick()
	assert.Equal(t, "hello", ctx.State.Message.Text)
	cs.Tick()
	assert.Empty(t, ctx.State.Message.Text)
}

func TestNewestMessageWins(t *testing.T) {
	ctx, _, cs := newTestGame(t)

	ctx.Notify("first", time.Second)
	ctx.Notify("second", 0)
	cs.DispatchEvents()
	assert.Equal(t, "second", ctx.State.Message.Text)
	assert.Equal(t, parameter.MessageDuration, ctx.State.Message.Remaining)
}

func TestSettingsReload(t *testing.T) {
	ctx, _, cs := newTestGame(t)

	mult := 3.0
	glitch := 2 * time.Second
	sound := false
	ctx.Queue().Emit(event.EventSettingsReloaded, &event.SettingsPayload{
		AdminMultiplier: &mult,
		GlitchDuration:  &glitch,
		SoundEnabled:    &sound,
	})
	cs.DispatchEvents()

	assert.Equal(t, 3.0, ctx.Settings.AdminMultiplier)
	assert.Equal(t, 3.0, ctx.State.AdminMultiplier)
	assert.Equal(t, glitch, ctx.Settings.GlitchDuration)
	assert.False(t, ctx.Settings.SoundEnabled)
	assert.Equal(t, "Settings reloaded", ctx.State.Message.Text)
}

func TestSettingsReloadIgnoresEmptyPayload(t *testing.T) {
	ctx, _, cs := newTestGame(t)
	before := ctx.Settings

	ctx.Queue().Emit(event.EventSettingsReloaded, &event.SettingsPayload{})
	cs.DispatchEvents()
	assert.Equal(t, before, ctx.Settings)
	assert.Empty(t, ctx.State.Message.Text)
}

func TestAudioPlaysRequestedSounds(t *testing.T) {
	player := &fakePlayer{}
	ctx, set, cs := newTestGameWithPlayer(t, player)

	ctx.PlaySound(core.SoundHit)
	cs.DispatchEvents()
	assert.Equal(t, []core.SoundType{core.SoundHit}, player.played)

	assert.False(t, set.Audio.ToggleMute(ctx))
	cs.Tick()
	assert.True(t, player.IsMuted())

	ctx.PlaySound(core.SoundHeal)
	cs.DispatchEvents()
	assert.Len(t, player.played, 1)

	assert.True(t, set.Audio.ToggleMute(ctx))
	cs.Tick()
	assert.False(t, player.IsMuted())
}

func TestGlitchPlaysCue(t *testing.T) {
	player := &fakePlayer{}
	ctx, _, cs := newTestGameWithPlayer(t, player)

	goToMap(t, ctx, cs)
	assert.Contains(t, player.played, core.SoundGlitch)
}

func TestTelemetryCounts(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 10

	require.NoError(t, set.Upgrade.Buy(ctx, "a"))
	cs.Tick()

	assert.Equal(t, int64(1), ctx.Status.Ints.Get("telemetry.purchases").Load())
	assert.InDelta(t, 10, ctx.Status.Floats.Get("telemetry.spent").Get(), 1e-9)
	assert.Equal(t, "city", ctx.Status.Strings.Get("engine.page").Load())
}
