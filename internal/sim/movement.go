package sim

import (
	"math"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
)

// stepPlayer integrates held input into displacement with axis-separated
// collision. Each axis commits only if its candidate rectangle is clear,
// which lets diagonal movement slide along walls instead of stopping.
func (w *World) stepPlayer(dt float64) {
	if w.blocked() {
		return
	}

	vx, vy := w.held.Axes()
	if vx == 0 && vy == 0 {
		return
	}

	w.player.Facing = facingFor(vx, vy, w.player.Facing)

	if vx != 0 && vy != 0 {
		length := math.Hypot(vx, vy)
		vx /= length
		vy /= length
	}

	dx := vx * w.player.Speed * dt
	dy := vy * w.player.Speed * dt

	if dx != 0 {
		candidate := geom.Rect{X: w.player.X + dx, Y: w.player.Y, W: w.player.W, H: w.player.H}
		if !geom.CollidesAny(candidate, w.obstacles) {
			w.player.X += dx
		}
	}
	if dy != 0 {
		candidate := geom.Rect{X: w.player.X, Y: w.player.Y + dy, W: w.player.W, H: w.player.H}
		if !geom.CollidesAny(candidate, w.obstacles) {
			w.player.Y += dy
		}
	}
}

// facingFor picks the dominant axis of the raw input vector. Horizontal
// wins only when strictly larger; vertical ties resolve down.
func facingFor(vx, vy float64, current Facing) Facing {
	if vx == 0 && vy == 0 {
		return current
	}
	if math.Abs(vx) > math.Abs(vy) {
		if vx < 0 {
			return FacingLeft
		}
		return FacingRight
	}
	if vy < 0 {
		return FacingUp
	}
	return FacingDown
}
