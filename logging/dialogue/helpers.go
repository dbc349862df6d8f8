package dialogue

import (
	"context"

	"github.com/peggy10039/cat-village-gaming/logging"
)

const (
	// EventOpened is emitted when a dialogue session starts.
	EventOpened logging.EventType = "dialogue.opened"
	// EventCompleted is emitted when the script runs out naturally.
	EventCompleted logging.EventType = "dialogue.completed"
	// EventCancelled is emitted when the player closes the session early.
	EventCancelled logging.EventType = "dialogue.cancelled"
)

// SessionPayload describes a dialogue session transition.
type SessionPayload struct {
	Lines     int  `json:"lines,omitempty"`
	LineIndex int  `json:"lineIndex,omitempty"`
	FirstTime bool `json:"firstTime,omitempty"`
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, tick uint64, npc logging.EntityRef, payload SessionPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindPlayer},
		Targets:  []logging.EntityRef{npc},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryDialogue,
		Payload:  payload,
	})
}

// Opened publishes a session-open event.
func Opened(ctx context.Context, pub logging.Publisher, tick uint64, npc logging.EntityRef, payload SessionPayload) {
	publish(ctx, pub, EventOpened, tick, npc, payload)
}

// Completed publishes a natural-completion event.
func Completed(ctx context.Context, pub logging.Publisher, tick uint64, npc logging.EntityRef, payload SessionPayload) {
	publish(ctx, pub, EventCompleted, tick, npc, payload)
}

// Cancelled publishes an early-close event.
func Cancelled(ctx context.Context, pub logging.Publisher, tick uint64, npc logging.EntityRef, payload SessionPayload) {
	publish(ctx, pub, EventCancelled, tick, npc, payload)
}
