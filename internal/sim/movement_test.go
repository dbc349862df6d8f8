package sim

import (
	"context"
	"math"
	"testing"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
	"github.com/peggy10039/cat-village-gaming/internal/store"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(context.Background(), DefaultConfig(), Deps{Store: store.NewMemoryStore()})
}

// bareWorld strips the authored content so scenarios can stage exact
// geometry.
func bareWorld(t *testing.T) *World {
	t.Helper()
	w := newTestWorld(t)
	w.obstacles = nil
	w.npcs = nil
	w.mobs = nil
	w.shop = ShopPoint{ID: "shop", Name: "Shop", X: -10000, Y: -10000}
	w.dialogue = dialogueSession{}
	w.overlay = OverlayNone
	w.notice = notice{}
	w.recomputePrompt()
	return w
}

func TestBlockedAxisMoveIsRejected(t *testing.T) {
	w := bareWorld(t)
	w.obstacles = []geom.Rect{{X: 100, Y: 100, W: 50, H: 50}}
	w.player = Player{X: 70, Y: 120, W: 10, H: 10, Speed: 400, Facing: FacingDown}
	w.held = DirRight

	// dx = 400 * 0.1 = +40 would land the hit-box on [110,120) x [120,130),
	// inside the obstacle, so the X move must be rejected outright.
	w.stepPlayer(0.1)

	if w.player.X != 70 {
		t.Fatalf("expected X move rejected, player at x=%v", w.player.X)
	}
	if w.player.Y != 120 {
		t.Fatalf("Y must be untouched, got %v", w.player.Y)
	}
}

func TestDiagonalSlidesAlongWall(t *testing.T) {
	w := bareWorld(t)
	w.obstacles = []geom.Rect{{X: 100, Y: 100, W: 50, H: 50}}
	w.player = Player{X: 70, Y: 120, W: 10, H: 10, Speed: 600, Facing: FacingDown}
	w.held = DirRight | DirDown

	// Normalized diagonal gives dx = dy ≈ 42.4; the X candidate collides
	// but the Y candidate clears the obstacle's bottom edge.
	w.stepPlayer(0.1)

	if w.player.X != 70 {
		t.Fatalf("expected X blocked, got %v", w.player.X)
	}
	if w.player.Y <= 120 {
		t.Fatalf("expected Y to slide, got %v", w.player.Y)
	}
}

func TestDiagonalSpeedIsNormalized(t *testing.T) {
	w := bareWorld(t)
	w.player = Player{X: 500, Y: 500, W: 10, H: 10, Speed: 100, Facing: FacingDown}
	w.held = DirRight | DirDown

	w.stepPlayer(0.5)

	moved := math.Hypot(w.player.X-500, w.player.Y-500)
	if math.Abs(moved-50) > 1e-9 {
		t.Fatalf("diagonal movement must cover speed*dt, moved %v", moved)
	}
}

func TestMovementSuppressedDuringDialogueAndOverlay(t *testing.T) {
	w := bareWorld(t)
	w.player = Player{X: 500, Y: 500, W: 10, H: 10, Speed: 100, Facing: FacingDown}
	w.held = DirRight

	w.dialogue.Active = true
	w.stepPlayer(0.1)
	if w.player.X != 500 {
		t.Fatalf("movement must be suppressed during dialogue")
	}

	w.dialogue.Active = false
	w.overlay = OverlayInventory
	w.stepPlayer(0.1)
	if w.player.X != 500 {
		t.Fatalf("movement must be suppressed while an overlay is open")
	}

	// Held keys stay tracked; unblocking applies them again.
	w.overlay = OverlayNone
	w.stepPlayer(0.1)
	if w.player.X <= 500 {
		t.Fatalf("movement must resume once unblocked")
	}
}

func TestFacingFollowsDominantInputAxis(t *testing.T) {
	cases := []struct {
		name    string
		vx, vy  float64
		current Facing
		want    Facing
	}{
		{"pure right", 1, 0, FacingDown, FacingRight},
		{"pure left", -1, 0, FacingDown, FacingLeft},
		{"pure up", 0, -1, FacingDown, FacingUp},
		{"pure down", 0, 1, FacingUp, FacingDown},
		{"diagonal tie prefers vertical", 1, 1, FacingLeft, FacingDown},
		{"diagonal tie up", -1, -1, FacingRight, FacingUp},
		{"no input keeps facing", 0, 0, FacingLeft, FacingLeft},
	}
	for _, tc := range cases {
		if got := facingFor(tc.vx, tc.vy, tc.current); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestBoundaryWallsKeepPlayerInWorld(t *testing.T) {
	w := newTestWorld(t)
	w.npcs = nil
	w.mobs = nil
	w.player.X = 10
	w.player.Y = 600
	w.held = DirLeft

	for i := 0; i < 200; i++ {
		w.stepPlayer(maxDelta)
	}
	if w.player.X < 0 {
		t.Fatalf("player escaped through the left wall, x=%v", w.player.X)
	}
}
