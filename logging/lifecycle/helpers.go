package lifecycle

import (
	"context"

	"github.com/peggy10039/cat-village-gaming/logging"
)

const (
	// EventWorldStarted is emitted once after world construction.
	EventWorldStarted logging.EventType = "lifecycle.world_started"
	// EventSaveLoaded is emitted after the persisted record is decoded.
	EventSaveLoaded logging.EventType = "lifecycle.save_loaded"
	// EventHardReset is emitted when the player wipes the save and restarts.
	EventHardReset logging.EventType = "lifecycle.hard_reset"
)

// WorldStartedPayload summarizes the constructed world.
type WorldStartedPayload struct {
	Seed      string `json:"seed"`
	NPCs      int    `json:"npcs"`
	Mobs      int    `json:"mobs"`
	Obstacles int    `json:"obstacles"`
}

// SaveLoadedPayload summarizes the restored ledger.
type SaveLoadedPayload struct {
	Gifts    int  `json:"gifts"`
	Coins    int  `json:"coins"`
	HP       int  `json:"hp"`
	Fallback bool `json:"fallback,omitempty"`
}

// WorldStarted publishes the construction event.
func WorldStarted(ctx context.Context, pub logging.Publisher, payload WorldStartedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventWorldStarted,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}

// SaveLoaded publishes the restore event.
func SaveLoaded(ctx context.Context, pub logging.Publisher, payload SaveLoadedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSaveLoaded,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}

// HardReset publishes the reset event.
func HardReset(ctx context.Context, pub logging.Publisher, tick uint64) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventHardReset,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindPlayer},
		Severity: logging.SeverityWarn,
		Category: logging.CategorySystem,
	})
}
