package sim

const (
	// Tick deltas are clamped into this window before any time-based
	// update runs; stalls slide instead of tunneling.
	minDelta = 0.001
	maxDelta = 1.0 / 30.0

	playerWidth  = 28.0
	playerHeight = 28.0
	playerSpeed  = 220.0 // units per second

	interactionRange = 72.0

	// Wander tuning shared by villagers and mobs.
	arriveEpsilon     = 2.0
	tetherFactor      = 1.15
	tetherBaseWait    = 0.6
	avoidWaitFraction = 0.55

	thiefStrikeRadius  = 44.0
	thiefStealMin      = 2
	thiefStealMax      = 6
	thiefCooldownMin   = 1.0
	thiefCooldownMax   = 1.6
	bruteStrikeRadius  = 48.0
	bruteDamageMin     = 4
	bruteDamageMax     = 8
	bruteCooldownMin   = 0.8
	bruteCooldownMax   = 1.3

	noticeDuration = 2.5 // seconds a transient notice stays up

	baseZoom            = 1.0
	dialogueZoom        = 1.35
	zoomSmoothingRate   = 6.0
	dialoguePanelOffset = 46.0 // focal point lifts to clear the dialogue panel
)
