package sim

import "github.com/peggy10039/cat-village-gaming/internal/geom"

// Facing is the player's cardinal orientation.
type Facing string

const (
	FacingDown  Facing = "down"
	FacingUp    Facing = "up"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Player is the avatar state. Position is the top-left corner of its
// hit-box; only the movement resolver mutates it.
type Player struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Speed  float64 `json:"-"`
	Facing Facing  `json:"facing"`
}

// Rect is the player's current hit-box.
func (p Player) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center is the player's center point, used for all distance checks.
func (p Player) Center() geom.Vec2 {
	return p.Rect().Center()
}

// WanderProfile tunes an agent's autonomous movement. PauseMin/PauseMax
// bound the rest taken after arriving at a target.
type WanderProfile struct {
	Radius   float64
	Speed    float64
	PauseMin float64
	PauseMax float64
}

// wanderState tethers an agent to its spawn point. Target always lies
// inside the world bounds inset by the agent's radius.
type wanderState struct {
	home   geom.Vec2
	target geom.Vec2
	wait   float64
}

// NPC is a friendly villager. Villagers without a wander profile stand
// still; dialogue content never changes at runtime.
type NPC struct {
	ID       string
	Name     string
	X        float64
	Y        float64
	Radius   float64
	Dialogue []string
	GiftName string
	GiftDesc string
	Wander   *WanderProfile

	wander wanderState
}

// MobKind separates the two hostile behaviors.
type MobKind string

const (
	MobThief    MobKind = "thief"
	MobBruteCat MobKind = "bruteCat"
)

// Mob is a roaming hostile. Unlike villagers it applies effects on
// proximity without an interact keypress, throttled by its cooldown.
type Mob struct {
	ID     string
	Kind   MobKind
	Name   string
	X      float64
	Y      float64
	Radius float64
	Wander *WanderProfile

	wander   wanderState
	cooldown float64
}

// ShopPoint is the fixed interactive location for selling gifts.
type ShopPoint struct {
	ID   string
	Name string
	X    float64
	Y    float64
}
