package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/idle-city/asset"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/render"
	"github.com/lixenwraith/idle-city/vmath"
)

// cloudPeriod is how long a cloud row stays before drifting
const cloudPeriod = time.Second

// CityRenderer draws the city page: balance, skyline, upgrades and navigation hints
type CityRenderer struct {
	gameCtx *engine.GameContext
	skyline *asset.Skyline
	rng     *vmath.FastRand

	clouds    string
	cloudTick time.Duration
}

// NewCityRenderer lays out the skyline once for the session
func NewCityRenderer(gameCtx *engine.GameContext, seed uint64) *CityRenderer {
	rng := vmath.NewFastRand(seed)
	return &CityRenderer{
		gameCtx:   gameCtx,
		skyline:   asset.NewSkyline(rng),
		rng:       rng,
		cloudTick: -cloudPeriod,
	}
}

// Pages implements PageBound
func (r *CityRenderer) Pages() []fsm.StateID { return []fsm.StateID{engine.PageCity} }

// Render implements SystemRenderer
func (r *CityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := r.gameCtx.State

	y := 0
	buf.Text(0, y, "Money: "+Money(s.Money), render.StyleMoney)
	buf.Text(30, y, fmt.Sprintf("Income: %s/sec", Money(s.IncomePerSecond())), render.StyleDim)
	y += 2

	skyline := r.skyline.Lines(s.CityPurchased, r.rng)
	if ctx.Elapsed-r.cloudTick >= cloudPeriod {
		r.clouds = skyline[0]
		r.cloudTick = ctx.Elapsed
	}
	skyline[0] = r.clouds
	buf.Lines(0, y, skyline, render.StyleDefault)
	y += len(skyline) + 1

	buf.Text(0, y, "=== UPGRADES ===", render.StyleTitle)
	y++
	anySeen := false
	for i, def := range r.gameCtx.Content.Upgrades {
		u := s.CityUpgrades[i]
		if !u.Seen {
			continue
		}
		anySeen = true
		x := buf.Text(0, y, fmt.Sprintf("%s %s %s ", keyLabel(def.Key), def.Name, countLabel(u.Count, def.Max)), render.StyleDefault)
		if u.Count >= def.Max {
			buf.Text(x, y, "MAXED", render.StyleDone)
		} else {
			style := render.StyleCost
			if !s.CanAfford(u.Cost) {
				style = render.StyleLocked
			}
			buf.Text(x, y, fmt.Sprintf("+%g/sec | Cost: %s", def.RateInc, Cost(u.Cost)), style)
		}
		y++
	}
	if !anySeen {
		buf.Text(0, y, "(No upgrades available yet...)", render.StyleDim)
		y++
	}
	y++

	if s.ResearchUnlocked {
		buf.Text(0, y, "Press [R] to go to Research.", render.StyleDim)
		y++
	}
	if s.TechnologyUnlocked {
		buf.Text(0, y, "Press [T] to go to Technology.", render.StyleDim)
		y++
	}
	if s.Blackhole.Unlocked {
		buf.Text(0, y, "Press [B] to open the Black Hole page.", render.StyleDim)
		y++
	}
	if r.gameCtx.Settings.AdminKeys {
		buf.Text(0, y, "[Z] +50 ore  [M] Unlock Black Hole (admin)", render.StyleWarning)
	}
}
