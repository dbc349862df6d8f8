package sim

import (
	"context"
	"fmt"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
	"github.com/peggy10039/cat-village-gaming/logging"
	logencounter "github.com/peggy10039/cat-village-gaming/logging/encounter"
)

// stepMobs runs mob wandering and effect application. Wandering never
// pauses; effects are gated behind the dialogue/overlay state and each
// mob's cooldown.
func (w *World) stepMobs(ctx context.Context, dt float64) {
	for _, mob := range w.mobs {
		if mob.Wander != nil {
			w.updateWanderer(&mob.wander, &mob.X, &mob.Y, mob.Radius, *mob.Wander, w.mobRNG, dt)
		}
		if mob.cooldown > 0 {
			mob.cooldown -= dt
		}
	}

	if w.blocked() {
		return
	}

	center := w.player.Center()
	for _, mob := range w.mobs {
		if mob.cooldown > 0 {
			continue
		}
		dist := geom.Dist(mob.X, mob.Y, center.X, center.Y)
		switch mob.Kind {
		case MobThief:
			w.applyTheft(ctx, mob, dist)
		case MobBruteCat:
			w.applyClaw(ctx, mob, dist)
		}
	}
}

func (w *World) applyTheft(ctx context.Context, mob *Mob, dist float64) {
	if dist > thiefStrikeRadius {
		return
	}
	if w.ledger.Stats().Coins < 1 {
		return
	}
	stolen := w.ledger.TakeCoins(ctx, randomInt(w.mobRNG, thiefStealMin, thiefStealMax))
	if stolen == 0 {
		return
	}
	mob.cooldown = randomRange(w.mobRNG, thiefCooldownMin, thiefCooldownMax)
	w.setNotice(fmt.Sprintf("%s snatched %d coins!", mob.Name, stolen))
	logencounter.CoinsStolen(ctx, w.publisher, w.tick,
		logging.EntityRef{ID: mob.ID, Kind: logging.EntityKindMob},
		logencounter.CoinsStolenPayload{Amount: stolen, CoinsLeft: w.ledger.Stats().Coins})
}

func (w *World) applyClaw(ctx context.Context, mob *Mob, dist float64) {
	if dist > bruteStrikeRadius {
		return
	}
	if w.ledger.Stats().HP <= 0 {
		return
	}
	damage := w.ledger.TakeDamage(ctx, randomInt(w.mobRNG, bruteDamageMin, bruteDamageMax))
	if damage == 0 {
		return
	}
	mob.cooldown = randomRange(w.mobRNG, bruteCooldownMin, bruteCooldownMax)
	hpLeft := w.ledger.Stats().HP
	logencounter.Clawed(ctx, w.publisher, w.tick,
		logging.EntityRef{ID: mob.ID, Kind: logging.EntityKindMob},
		logencounter.ClawedPayload{Damage: damage, HPLeft: hpLeft})
	if hpLeft <= 0 {
		w.setStickyNotice(fmt.Sprintf("%s got the better of you. Reset to continue.", mob.Name))
		logencounter.PlayerDefeated(ctx, w.publisher, w.tick,
			logging.EntityRef{ID: mob.ID, Kind: logging.EntityKindMob})
		return
	}
	w.setNotice(fmt.Sprintf("%s clawed you for %d!", mob.Name, damage))
}
