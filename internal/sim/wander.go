package sim

import (
	"math"
	"math/rand"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
)

func newWanderState(x, y float64) wanderState {
	home := geom.Vec2{X: x, Y: y}
	return wanderState{home: home, target: home}
}

// stepNPCs advances every wandering villager. Stationary villagers skip
// the controller entirely.
func (w *World) stepNPCs(dt float64) {
	for _, npc := range w.npcs {
		if npc.Wander == nil {
			continue
		}
		w.updateWanderer(&npc.wander, &npc.X, &npc.Y, npc.Radius, *npc.Wander, w.npcRNG, dt)
	}
}

// updateWanderer is the shared controller for villagers and mobs: wait,
// walk toward the target, bounce off obstacles onto a fresh target, and
// pull back toward home when the tether stretches too far.
func (w *World) updateWanderer(ws *wanderState, x, y *float64, radius float64, prof WanderProfile, rng *rand.Rand, dt float64) {
	if ws.wait > 0 {
		ws.wait -= dt
		return
	}

	if geom.Dist(*x, *y, ws.target.X, ws.target.Y) <= arriveEpsilon {
		ws.target = w.pickWanderTarget(ws.home, radius, prof, rng)
		ws.wait = randomRange(rng, prof.PauseMin, prof.PauseMax)
		return
	}

	dx := ws.target.X - *x
	dy := ws.target.Y - *y
	dist := math.Hypot(dx, dy)
	step := prof.Speed * dt
	if step > dist {
		step = dist
	}
	nx := *x + dx/dist*step
	ny := *y + dy/dist*step

	bounds := geom.Rect{X: nx - radius, Y: ny - radius, W: radius * 2, H: radius * 2}
	if geom.CollidesAny(bounds, w.obstacles) {
		// Bounce off and reconsider rather than grinding on the wall.
		ws.target = w.pickWanderTarget(ws.home, radius, prof, rng)
		ws.wait = avoidWaitFraction * randomRange(rng, prof.PauseMin, prof.PauseMax)
		return
	}

	*x = nx
	*y = ny

	// Repeated avoidance redirects can drag an agent off its tether;
	// force it back before the drift becomes permanent.
	fromHome := geom.Dist(*x, *y, ws.home.X, ws.home.Y)
	limit := prof.Radius * tetherFactor
	if fromHome > limit {
		ws.target = ws.home
		over := (fromHome - limit) / prof.Radius
		ws.wait = geom.Clamp(over, 0, 1) * tetherBaseWait
	}
}

// pickWanderTarget samples a point uniformly by area inside the wander
// disc, clamped to the world bounds inset by the agent's radius.
func (w *World) pickWanderTarget(home geom.Vec2, radius float64, prof WanderProfile, rng *rand.Rand) geom.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	dist := prof.Radius * math.Sqrt(rng.Float64())
	return geom.Vec2{
		X: geom.Clamp(home.X+math.Cos(angle)*dist, radius, w.config.Width-radius),
		Y: geom.Clamp(home.Y+math.Sin(angle)*dist, radius, w.config.Height-radius),
	}
}
