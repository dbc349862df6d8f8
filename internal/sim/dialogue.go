package sim

import (
	"context"
	"fmt"

	"github.com/peggy10039/cat-village-gaming/internal/ledger"
	"github.com/peggy10039/cat-village-gaming/logging"
	logdialogue "github.com/peggy10039/cat-village-gaming/logging/dialogue"
)

// dialogueSession is the linear line-advance state machine. At most one
// session is active; pendingReward holds the villager id whose gift is
// resolved at natural completion, never a captured callback.
type dialogueSession struct {
	Active    bool
	NPCID     string
	NPCName   string
	Lines     []string
	LineIndex int

	pendingReward string
	firstTime     bool
}

// openDialogue snapshots the villager's script plus a trailing line that
// depends on whether their gift was already granted.
func (w *World) openDialogue(ctx context.Context, npc *NPC) {
	if w.dialogue.Active {
		return
	}
	lines := append([]string(nil), npc.Dialogue...)
	given := w.ledger.Given(npc.ID)
	if given {
		lines = append(lines, fmt.Sprintf("I hope that %s is serving you well.", npc.GiftName))
	} else {
		lines = append(lines, fmt.Sprintf("Here — take this %s. I want you to have it.", npc.GiftName))
	}

	w.dialogue = dialogueSession{
		Active:        true,
		NPCID:         npc.ID,
		NPCName:       npc.Name,
		Lines:         lines,
		pendingReward: npc.ID,
		firstTime:     !given,
	}
	logdialogue.Opened(ctx, w.publisher, w.tick,
		logging.EntityRef{ID: npc.ID, Kind: logging.EntityKindNPC},
		logdialogue.SessionPayload{Lines: len(lines), FirstTime: !given})
}

// advanceDialogue steps to the next line, closing the session naturally
// once the script is exhausted.
func (w *World) advanceDialogue(ctx context.Context) {
	if !w.dialogue.Active {
		return
	}
	if w.dialogue.LineIndex+1 >= len(w.dialogue.Lines) {
		w.closeDialogue(ctx, true)
		return
	}
	w.dialogue.LineIndex++
}

// closeDialogue clears the session. The pending reward resolves only on
// natural completion; cancellation leaves the gift ungranted.
func (w *World) closeDialogue(ctx context.Context, completed bool) {
	session := w.dialogue
	w.dialogue = dialogueSession{}

	ref := logging.EntityRef{ID: session.NPCID, Kind: logging.EntityKindNPC}
	payload := logdialogue.SessionPayload{
		Lines:     len(session.Lines),
		LineIndex: session.LineIndex,
		FirstTime: session.firstTime,
	}
	if !completed {
		logdialogue.Cancelled(ctx, w.publisher, w.tick, ref, payload)
		w.recomputePrompt()
		return
	}

	logdialogue.Completed(ctx, w.publisher, w.tick, ref, payload)
	if session.pendingReward != "" {
		if npc := w.findNPC(session.pendingReward); npc != nil {
			if gift, granted := w.ledger.GrantGift(ctx, w.tick, ledger.GiftSource{
				NPCID:    npc.ID,
				NPCName:  npc.Name,
				GiftName: npc.GiftName,
				GiftDesc: npc.GiftDesc,
			}); granted {
				w.setNotice(fmt.Sprintf("%s gave you: %s", npc.Name, gift.Name))
			}
		}
	}
	w.recomputePrompt()
}
