package sim

import "github.com/peggy10039/cat-village-gaming/internal/geom"

// seedVillage installs the authored layout: boundary walls, terrain
// obstacles, the villager roster, the shop, and the mob spawns. Obstacles
// never move after this runs.
func seedVillage(w *World) {
	width := w.config.Width
	height := w.config.Height

	const wallThickness = 400.0
	w.obstacles = []geom.Rect{
		// Enclosing walls sit outside the visible bounds so nothing can
		// leave the map.
		{X: -wallThickness, Y: -wallThickness, W: width + 2*wallThickness, H: wallThickness},
		{X: -wallThickness, Y: height, W: width + 2*wallThickness, H: wallThickness},
		{X: -wallThickness, Y: 0, W: wallThickness, H: height},
		{X: width, Y: 0, W: wallThickness, H: height},

		{X: 520, Y: 320, W: 220, H: 140},  // pond
		{X: 980, Y: 240, W: 160, H: 120},  // bakery cabin
		{X: 200, Y: 200, W: 120, H: 60},   // garden beds
		{X: 300, Y: 800, W: 90, H: 70},    // mossy boulder
		{X: 1150, Y: 860, W: 120, H: 80},  // split boulder
		{X: 700, Y: 980, W: 140, H: 60},   // fallen log
		{X: 1380, Y: 420, W: 80, H: 80},   // old well
	}

	w.spawn = geom.Vec2{X: 800, Y: 640}
	w.player = Player{
		X:      w.spawn.X,
		Y:      w.spawn.Y,
		W:      playerWidth,
		H:      playerHeight,
		Speed:  playerSpeed,
		Facing: FacingDown,
	}

	w.npcs = []*NPC{
		{
			ID: "npc-mochi", Name: "Mochi", X: 950, Y: 430, Radius: 16,
			Dialogue: []string{
				"Oh! A visitor. The ovens have been lonely.",
				"I bake for the whole village, you know. Even the thieves.",
				"They never pay. But a full belly keeps their paws slow.",
			},
			GiftName: "Dried Minnow",
			GiftDesc: "Baked twice, the way the harbor cats like it.",
		},
		{
			ID: "npc-suzu", Name: "Suzu", X: 620, Y: 560, Radius: 16,
			Dialogue: []string{
				"Shh. The pond carp can hear you.",
				"I've been watching that big one for three seasons.",
			},
			GiftName: "River Pebble",
			GiftDesc: "Perfectly round. Warm from a paw that held it too long.",
			Wander:   &WanderProfile{Radius: 120, Speed: 60, PauseMin: 1.5, PauseMax: 4.0},
		},
		{
			ID: "npc-tama", Name: "Tama", X: 260, Y: 310, Radius: 16,
			Dialogue: []string{
				"Mind the garden beds, the catnip is shy this year.",
				"I weave collars from reed grass. Tourists love them.",
				"Not that we get tourists. You're the first in a while.",
			},
			GiftName: "Woven Collar",
			GiftDesc: "Reed grass, triple braided. A bit frayed at one end.",
		},
		{
			ID: "npc-goro", Name: "Goro", X: 1300, Y: 700, Radius: 16,
			Dialogue: []string{
				"Best sun in the village, right here. Don't crowd it.",
				"The brute by the log? He wasn't always mean. Winters do that.",
			},
			GiftName: "Sun-warmed Tile",
			GiftDesc: "A roof tile that somehow never goes cold.",
			Wander:   &WanderProfile{Radius: 90, Speed: 45, PauseMin: 2.0, PauseMax: 5.0},
		},
	}

	w.shop = ShopPoint{ID: "shop-village", Name: "Village Shop", X: 1080, Y: 620}

	w.mobs = []*Mob{
		{
			ID: "mob-thief-1", Kind: MobThief, Name: "Hooded Stray", X: 400, Y: 950, Radius: 16,
			Wander: &WanderProfile{Radius: 180, Speed: 95, PauseMin: 0.8, PauseMax: 2.2},
		},
		{
			ID: "mob-thief-2", Kind: MobThief, Name: "Quickpaw", X: 1350, Y: 300, Radius: 16,
			Wander: &WanderProfile{Radius: 180, Speed: 95, PauseMin: 0.8, PauseMax: 2.2},
		},
		{
			ID: "mob-brute-1", Kind: MobBruteCat, Name: "Old Scar", X: 820, Y: 900, Radius: 18,
			Wander: &WanderProfile{Radius: 160, Speed: 80, PauseMin: 1.0, PauseMax: 2.5},
		},
	}
}
