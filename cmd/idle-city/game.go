package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/idle-city/config"
	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/input"
	"github.com/lixenwraith/idle-city/mode"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/render/renderers"
	"github.com/lixenwraith/idle-city/system"
	"github.com/lixenwraith/idle-city/terminal"
)

// errQuit ends the loop on a quit intent
var errQuit = errors.New("quit")

// game wires the terminal, systems, router and renderers around one GameContext
type game struct {
	term   terminal.Terminal
	ctx    *engine.GameContext
	set    *system.Set
	cs     *engine.ClockScheduler
	zones  *hitzone.Map
	router *mode.Router
	orch   *render.RenderOrchestrator
	start  time.Time
}

func newGame(term terminal.Terminal, c *content.Content, settings engine.Settings, seed uint64, logger *zap.Logger, player system.SoundPlayer) (*game, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ctx := engine.NewGameContext(c, settings, seed, logger)
	ctx.Width, ctx.Height = term.Size()

	set, cs, err := system.Bootstrap(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	zones := hitzone.NewMap()
	orch := render.NewRenderOrchestrator(term.Screen(), ctx.Width, ctx.Height)
	renderers.RegisterAll(orch, ctx, set, seed)

	ctx.Logger.Info("game started",
		zap.Uint64("seed", seed),
		zap.String("color", term.ColorMode().String()),
		zap.Bool("admin", settings.AdminKeys))

	return &game{
		term:   term,
		ctx:    ctx,
		set:    set,
		cs:     cs,
		zones:  zones,
		router: mode.NewRouter(ctx, input.NewMachine(), set, zones),
		orch:   orch,
		start:  ctx.Clock.Now(),
	}, nil
}

// run drives the input pump, the game loop and the optional settings watcher until quit or error
func (g *game) run(ctx context.Context, watcher *config.Watcher) error {
	grp, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, parameter.InputChannelSize)

	grp.Go(guard("input pump", func() error { return g.pumpInput(gctx, events) }))
	grp.Go(guard("game loop", func() error { return g.loop(gctx, events) }))
	if watcher != nil {
		grp.Go(guard("settings watcher", func() error { return watcher.Run(gctx) }))
	}

	err := grp.Wait()
	g.ctx.Logger.Info("game stopped",
		zap.Uint64("ticks", g.cs.TickCount()),
		zap.Uint64("frames", g.ctx.FrameNumber),
		zap.Bool("won", g.ctx.State.Won))
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// pumpInput forwards terminal events until the screen is finalized
func (g *game) pumpInput(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := g.term.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop owns the game state: input, fixed-step ticks and frames all run here
// Finalizing the terminal on exit unblocks the input pump
func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	defer g.term.Fini()

	interval := g.ctx.Settings.FrameInterval
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.cs.Start(g.ctx.Clock.Now())
	g.renderFrame()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !g.router.HandleEvent(ev) {
				return errQuit
			}
			// Dispatch input events immediately, bypassing the tick wait
			g.cs.DispatchEvents()

		case <-ticker.C:
			g.cs.Advance(g.ctx.Clock.Now())
			g.renderFrame()
		}
	}
}

func (g *game) renderFrame() {
	g.ctx.FrameNumber++
	now := g.ctx.Clock.Now()
	g.orch.RenderFrame(render.NewRenderContext(g.ctx, g.zones, now.Sub(g.start)))
}

// guard turns a panic in fn into an error after restoring the terminal
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				err = fmt.Errorf("%s crashed: %v\n%s", name, r, debug.Stack())
			}
		}()
		return fn()
	}
}
