package encounter

import (
	"context"

	"github.com/peggy10039/cat-village-gaming/logging"
)

const (
	// EventCoinsStolen is emitted when a thief lifts coins off the player.
	EventCoinsStolen logging.EventType = "encounter.coins_stolen"
	// EventClawed is emitted when the brute cat lands a hit.
	EventClawed logging.EventType = "encounter.clawed"
	// EventPlayerDefeated is emitted once when hp reaches zero.
	EventPlayerDefeated logging.EventType = "encounter.player_defeated"
)

// CoinsStolenPayload describes a theft.
type CoinsStolenPayload struct {
	Amount    int `json:"amount"`
	CoinsLeft int `json:"coinsLeft"`
}

// ClawedPayload describes a damage hit.
type ClawedPayload struct {
	Damage int `json:"damage"`
	HPLeft int `json:"hpLeft"`
}

// CoinsStolen publishes a theft event.
func CoinsStolen(ctx context.Context, pub logging.Publisher, tick uint64, mob logging.EntityRef, payload CoinsStolenPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventCoinsStolen,
		Tick:     tick,
		Actor:    mob,
		Targets:  []logging.EntityRef{{Kind: logging.EntityKindPlayer}},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEncounter,
		Payload:  payload,
	})
}

// Clawed publishes a damage event.
func Clawed(ctx context.Context, pub logging.Publisher, tick uint64, mob logging.EntityRef, payload ClawedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventClawed,
		Tick:     tick,
		Actor:    mob,
		Targets:  []logging.EntityRef{{Kind: logging.EntityKindPlayer}},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEncounter,
		Payload:  payload,
	})
}

// PlayerDefeated publishes the terminal defeat event.
func PlayerDefeated(ctx context.Context, pub logging.Publisher, tick uint64, mob logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPlayerDefeated,
		Tick:     tick,
		Actor:    mob,
		Targets:  []logging.EntityRef{{Kind: logging.EntityKindPlayer}},
		Severity: logging.SeverityWarn,
		Category: logging.CategoryEncounter,
	})
}
