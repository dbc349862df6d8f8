package sim

import (
	"math"
	"testing"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
)

func TestCameraZoomEasesTowardDialogueTarget(t *testing.T) {
	w := bareWorld(t)
	if w.camera.Zoom != baseZoom {
		t.Fatalf("camera starts at base zoom, got %v", w.camera.Zoom)
	}

	w.dialogue.Active = true
	w.dialogue.NPCID = "npc-missing"
	prev := w.camera.Zoom
	for i := 0; i < 300; i++ {
		w.stepCamera(maxDelta)
		if w.camera.Zoom < prev {
			t.Fatalf("zoom must approach the target monotonically")
		}
		if w.camera.Zoom > dialogueZoom {
			t.Fatalf("zoom overshot the dialogue target: %v", w.camera.Zoom)
		}
		prev = w.camera.Zoom
	}
	if math.Abs(w.camera.Zoom-dialogueZoom) > 0.001 {
		t.Fatalf("zoom should have converged, got %v", w.camera.Zoom)
	}

	// Leaving dialogue eases back down.
	w.dialogue.Active = false
	for i := 0; i < 300; i++ {
		w.stepCamera(maxDelta)
	}
	if math.Abs(w.camera.Zoom-baseZoom) > 0.001 {
		t.Fatalf("zoom should return to base, got %v", w.camera.Zoom)
	}
}

func TestCameraZoomIsFrameRateIndependent(t *testing.T) {
	// The exponential blend must land at the same place whether a span of
	// time arrives as one step or many.
	a := bareWorld(t)
	b := bareWorld(t)
	a.dialogue.Active = true
	b.dialogue.Active = true
	a.dialogue.NPCID = "npc-missing"
	b.dialogue.NPCID = "npc-missing"

	a.stepCamera(0.02)
	for i := 0; i < 2; i++ {
		b.stepCamera(0.01)
	}
	if math.Abs(a.camera.Zoom-b.camera.Zoom) > 0.0005 {
		t.Fatalf("smoothing drifts with step size: %v vs %v", a.camera.Zoom, b.camera.Zoom)
	}
}

func TestCameraClampsToWorldEdges(t *testing.T) {
	w := bareWorld(t)
	w.player.X = 0
	w.player.Y = 0
	w.stepCamera(maxDelta)
	if w.camera.X != 0 || w.camera.Y != 0 {
		t.Fatalf("camera must clamp at the top-left corner, got (%v,%v)", w.camera.X, w.camera.Y)
	}

	w.player.X = w.config.Width - w.player.W
	w.player.Y = w.config.Height - w.player.H
	w.stepCamera(maxDelta)
	viewW, viewH := w.ViewportSize()
	wantX := w.config.Width - viewW
	wantY := w.config.Height - viewH
	if math.Abs(w.camera.X-wantX) > 1e-9 || math.Abs(w.camera.Y-wantY) > 1e-9 {
		t.Fatalf("camera must clamp at the bottom-right corner, got (%v,%v)", w.camera.X, w.camera.Y)
	}
}

func TestCameraCentersWhenViewportOutsizesWorld(t *testing.T) {
	focal := geom.Vec2{X: 100, Y: 100}
	cfg := Config{Width: 400, Height: 300, CanvasWidth: 960, CanvasHeight: 540}
	x, y := cameraTopLeft(focal, 1, cfg)
	if x != (400-960)/2.0 || y != (300-540)/2.0 {
		t.Fatalf("undersized world must center the camera, got (%v,%v)", x, y)
	}
}

func TestCameraFocusesBetweenSpeakers(t *testing.T) {
	w := bareWorld(t)
	npc := stageVillager(w)
	w.player.X = 400
	w.player.Y = 400
	npc.X = 600
	npc.Y = 400
	w.dialogue.Active = true
	w.dialogue.NPCID = npc.ID

	for i := 0; i < 600; i++ {
		w.stepCamera(maxDelta)
	}

	viewW, viewH := w.ViewportSize()
	center := w.player.Center()
	wantX := geom.Clamp((center.X+npc.X)/2-viewW/2, 0, w.config.Width-viewW)
	wantY := geom.Clamp((center.Y+npc.Y)/2-dialoguePanelOffset-viewH/2, 0, w.config.Height-viewH)
	if math.Abs(w.camera.X-wantX) > 0.5 || math.Abs(w.camera.Y-wantY) > 0.5 {
		t.Fatalf("camera should settle on the dialogue midpoint, got (%v,%v) want (%v,%v)",
			w.camera.X, w.camera.Y, wantX, wantY)
	}
}
