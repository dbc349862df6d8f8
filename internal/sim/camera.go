package sim

import (
	"math"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
)

// Camera is the smoothed viewport. X,Y are the top-left corner in world
// space; the visible size derives from the canvas and the current zoom.
type Camera struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

func newCamera(focal geom.Vec2, cfg Config) Camera {
	cam := Camera{Zoom: baseZoom}
	cam.X, cam.Y = cameraTopLeft(focal, cam.Zoom, cfg)
	return cam
}

// stepCamera eases zoom toward its target and re-centers on the focal
// point: the player, or the player/villager midpoint during dialogue.
func (w *World) stepCamera(dt float64) {
	targetZoom := baseZoom
	if w.dialogue.Active {
		targetZoom = dialogueZoom
	}
	// Fixed time-constant smoothing, independent of frame rate.
	blend := 1 - math.Exp(-zoomSmoothingRate*dt)
	w.camera.Zoom += (targetZoom - w.camera.Zoom) * blend

	focal := w.player.Center()
	if w.dialogue.Active {
		if npc := w.findNPC(w.dialogue.NPCID); npc != nil {
			focal = geom.Vec2{
				X: (focal.X + npc.X) / 2,
				Y: (focal.Y+npc.Y)/2 - dialoguePanelOffset,
			}
		}
	}

	w.camera.X, w.camera.Y = cameraTopLeft(focal, w.camera.Zoom, w.config)
}

// cameraTopLeft translates a focal point to clamped top-left camera
// coordinates. When the viewport outsizes the world on an axis the clamp
// range collapses and the camera centers instead.
func cameraTopLeft(focal geom.Vec2, zoom float64, cfg Config) (float64, float64) {
	viewW := cfg.CanvasWidth / zoom
	viewH := cfg.CanvasHeight / zoom

	x := focal.X - viewW/2
	if viewW >= cfg.Width {
		x = (cfg.Width - viewW) / 2
	} else {
		x = geom.Clamp(x, 0, cfg.Width-viewW)
	}

	y := focal.Y - viewH/2
	if viewH >= cfg.Height {
		y = (cfg.Height - viewH) / 2
	} else {
		y = geom.Clamp(y, 0, cfg.Height-viewH)
	}
	return x, y
}

// ViewportSize reports the camera's world-space visible dimensions.
func (w *World) ViewportSize() (float64, float64) {
	return w.config.CanvasWidth / w.camera.Zoom, w.config.CanvasHeight / w.camera.Zoom
}
