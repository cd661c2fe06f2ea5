package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/terminal"
)

func newTestGame(t *testing.T) (*game, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(sim, terminal.ColorModeTrueColor)
	require.NoError(t, term.Init())
	sim.SetSize(110, 40)
	t.Cleanup(term.Fini)

	settings := engine.DefaultSettings()
	settings.FrameInterval = 5 * time.Millisecond
	g, err := newGame(term, content.Default(), settings, 5, nil, nil)
	require.NoError(t, err)
	return g, sim
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		}
	}
	return sb.String()
}

func TestGameQuitsOnCtrlC(t *testing.T) {
	defer goleak.VerifyNone(t)
	g, sim := newTestGame(t)

	done := make(chan error, 1)
	go func() { done <- g.run(context.Background(), nil) }()

	require.Eventually(t, func() bool { return strings.Contains(screenText(sim), "Money:") }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop")
	}
}

func TestGameStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	g, _ := newTestGame(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.run(ctx, nil) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard("boom", func() error { panic("bad") })()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom crashed: bad")
}
