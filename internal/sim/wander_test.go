package sim

import (
	"testing"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
)

func TestWanderStaysTethered(t *testing.T) {
	w := bareWorld(t)
	prof := WanderProfile{Radius: 100, Speed: 80, PauseMin: 0.1, PauseMax: 0.3}
	npc := &NPC{ID: "npc-roamer", Name: "Roamer", X: 800, Y: 600, Radius: 16, Wander: &prof}
	npc.wander = newWanderState(npc.X, npc.Y)
	w.npcs = []*NPC{npc}

	limit := prof.Radius*tetherFactor + prof.Speed*maxDelta
	for i := 0; i < 20000; i++ {
		w.stepNPCs(maxDelta)
		if d := geom.Dist(npc.X, npc.Y, 800, 600); d > limit {
			t.Fatalf("tick %d: agent drifted %v from home, limit %v", i, d, limit)
		}
	}
}

func TestWanderTargetsStayInsideBoundsInset(t *testing.T) {
	w := bareWorld(t)
	prof := WanderProfile{Radius: 500, Speed: 50, PauseMin: 0.1, PauseMax: 0.2}
	home := geom.Vec2{X: 20, Y: 20} // disc pokes far outside the world
	for i := 0; i < 1000; i++ {
		target := w.pickWanderTarget(home, 16, prof, w.npcRNG)
		if target.X < 16 || target.X > w.config.Width-16 ||
			target.Y < 16 || target.Y > w.config.Height-16 {
			t.Fatalf("target %+v outside inset bounds", target)
		}
	}
}

func TestWanderWaitCountsDownWithoutMovement(t *testing.T) {
	w := bareWorld(t)
	prof := WanderProfile{Radius: 100, Speed: 80, PauseMin: 1, PauseMax: 1}
	npc := &NPC{ID: "npc-idler", Name: "Idler", X: 400, Y: 400, Radius: 16, Wander: &prof}
	npc.wander = newWanderState(npc.X, npc.Y)
	npc.wander.wait = 0.5
	npc.wander.target = geom.Vec2{X: 600, Y: 400}
	w.npcs = []*NPC{npc}

	w.stepNPCs(0.2)
	if npc.X != 400 || npc.Y != 400 {
		t.Fatalf("agent must not move while waiting")
	}
	if npc.wander.wait >= 0.5 {
		t.Fatalf("wait must count down, got %v", npc.wander.wait)
	}
}

func TestWanderAvoidsObstaclesByRetargeting(t *testing.T) {
	w := bareWorld(t)
	// Wall directly between the agent and its target.
	w.obstacles = []geom.Rect{{X: 480, Y: 0, W: 40, H: 1200}}
	prof := WanderProfile{Radius: 200, Speed: 100, PauseMin: 1, PauseMax: 2}
	npc := &NPC{ID: "npc-bouncer", Name: "Bouncer", X: 460, Y: 400, Radius: 16, Wander: &prof}
	npc.wander = newWanderState(npc.X, npc.Y)
	npc.wander.target = geom.Vec2{X: 700, Y: 400}
	w.npcs = []*NPC{npc}

	oldTarget := npc.wander.target
	w.stepNPCs(0.2) // step of 20 units would push the hit-box into the wall

	if npc.X != 460 || npc.Y != 400 {
		t.Fatalf("blocked move must be aborted, agent at (%v,%v)", npc.X, npc.Y)
	}
	if npc.wander.target == oldTarget {
		t.Fatalf("agent must pick a fresh target after bouncing")
	}
	if npc.wander.wait <= 0 {
		t.Fatalf("agent must take a shortened pause after bouncing, wait=%v", npc.wander.wait)
	}
	if npc.wander.wait > prof.PauseMax*avoidWaitFraction {
		t.Fatalf("bounce pause must be shortened, wait=%v", npc.wander.wait)
	}
}

func TestWanderDoesNotOvershootTarget(t *testing.T) {
	w := bareWorld(t)
	prof := WanderProfile{Radius: 200, Speed: 1000, PauseMin: 1, PauseMax: 2}
	npc := &NPC{ID: "npc-sprinter", Name: "Sprinter", X: 400, Y: 400, Radius: 16, Wander: &prof}
	npc.wander = newWanderState(npc.X, npc.Y)
	npc.wander.target = geom.Vec2{X: 410, Y: 400}
	w.npcs = []*NPC{npc}

	w.stepNPCs(0.2) // raw step of 200 units, 10 away from the target

	if npc.X != 410 || npc.Y != 400 {
		t.Fatalf("step must cap at the target, agent at (%v,%v)", npc.X, npc.Y)
	}
}

func TestStationaryNPCSkipsWandering(t *testing.T) {
	w := bareWorld(t)
	npc := &NPC{ID: "npc-statue", Name: "Statue", X: 300, Y: 300, Radius: 16}
	w.npcs = []*NPC{npc}

	for i := 0; i < 100; i++ {
		w.stepNPCs(maxDelta)
	}
	if npc.X != 300 || npc.Y != 300 {
		t.Fatalf("stationary villager must not move")
	}
}
