package sim

import (
	"context"
	"strings"
	"testing"
)

func stageVillager(w *World) *NPC {
	center := w.player.Center()
	npc := &NPC{
		ID:       "npc-mochi",
		Name:     "Mochi",
		X:        center.X + 30,
		Y:        center.Y,
		Radius:   16,
		Dialogue: []string{"Mrow. Fine morning.", "The pond is full of frogs again."},
		GiftName: "Dried Minnow",
		GiftDesc: "Crunchy and pungent.",
	}
	w.npcs = append(w.npcs, npc)
	w.recomputePrompt()
	return npc
}

func interact(ctx context.Context, w *World) {
	w.Apply(ctx, []Command{{Type: CommandInteract}})
}

// finishDialogue advances an open session until it closes naturally.
func finishDialogue(ctx context.Context, t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 32; i++ {
		if !w.dialogue.Active {
			return
		}
		interact(ctx, w)
	}
	t.Fatalf("dialogue never completed")
}

func TestDialogueGrantsGiftExactlyOnce(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	npc := stageVillager(w)

	interact(ctx, w)
	if !w.dialogue.Active {
		t.Fatalf("interact near a villager must open dialogue")
	}
	if len(w.dialogue.Lines) != 3 {
		t.Fatalf("script plus trailing gift line, got %d lines", len(w.dialogue.Lines))
	}
	if !strings.Contains(w.dialogue.Lines[2], "take this Dried Minnow") {
		t.Fatalf("first visit trailing line wrong: %q", w.dialogue.Lines[2])
	}

	// Advance through every line; the final press completes the session.
	interact(ctx, w)
	interact(ctx, w)
	if !w.dialogue.Active {
		t.Fatalf("dialogue must stay open until the final line is advanced past")
	}
	interact(ctx, w)
	if w.dialogue.Active {
		t.Fatalf("advancing past the final line must close the session")
	}

	gifts := w.ledger.Gifts()
	if len(gifts) != 1 || gifts[0].Name != "Dried Minnow" || gifts[0].From != "Mochi" {
		t.Fatalf("expected one granted gift, got %+v", gifts)
	}
	if !strings.Contains(w.HintText(), "Mochi gave you: Dried Minnow") {
		t.Fatalf("grant notice missing, hint=%q", w.HintText())
	}
	if !w.ledger.Given(npc.ID) {
		t.Fatalf("villager must be marked as given")
	}

	// A second full visit must not grant again, and the trailing line flips.
	interact(ctx, w)
	if !strings.Contains(w.dialogue.Lines[2], "serving you well") {
		t.Fatalf("repeat visit trailing line wrong: %q", w.dialogue.Lines[2])
	}
	finishDialogue(ctx, t, w)
	if len(w.ledger.Gifts()) != 1 {
		t.Fatalf("gift must be granted at most once")
	}
}

func TestCancelledDialogueGrantsNothing(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	stageVillager(w)

	interact(ctx, w)
	w.Apply(ctx, []Command{{Type: CommandCancel}})

	if w.dialogue.Active {
		t.Fatalf("cancel must close the session")
	}
	if len(w.ledger.Gifts()) != 0 {
		t.Fatalf("cancelled dialogue must not grant the gift")
	}

	// The gift survives for a later complete visit.
	interact(ctx, w)
	finishDialogue(ctx, t, w)
	if len(w.ledger.Gifts()) != 1 {
		t.Fatalf("gift must still be grantable after a cancel")
	}
}

func TestGiftGrantPaysCoinsAndHeals(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	stageVillager(w)
	w.ledger.TakeDamage(ctx, 50)

	interact(ctx, w)
	finishDialogue(ctx, t, w)

	stats := w.ledger.Stats()
	if stats.Coins != 6 {
		t.Fatalf("grant must pay the coin bonus, coins=%d", stats.Coins)
	}
	if stats.HP != 70 {
		t.Fatalf("grant must heal, hp=%d", stats.HP)
	}
}

func TestOverlayTogglesAndDialogueExclusion(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	stageVillager(w)

	w.Apply(ctx, []Command{{Type: CommandToggleInventory}})
	if w.overlay != OverlayInventory {
		t.Fatalf("inventory must open, got %q", w.overlay)
	}

	// Interacting through an overlay is a no-op.
	interact(ctx, w)
	if w.dialogue.Active {
		t.Fatalf("interact must be ignored while an overlay is open")
	}

	w.Apply(ctx, []Command{{Type: CommandToggleInventory}})
	if w.overlay != OverlayNone {
		t.Fatalf("second toggle must close the overlay")
	}

	interact(ctx, w)
	w.Apply(ctx, []Command{{Type: CommandToggleHelp}})
	if w.overlay != OverlayNone {
		t.Fatalf("overlays must not open during dialogue")
	}
}

func TestHelpOverlayMarksHelpSeen(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	if w.helpSeen {
		t.Fatalf("fresh world starts with help unseen")
	}

	w.Apply(ctx, []Command{{Type: CommandToggleHelp}})
	if w.overlay != OverlayHelp || !w.helpSeen {
		t.Fatalf("opening help must mark it seen")
	}
	if !w.ledger.HelpSeen(ctx) {
		t.Fatalf("help-seen must persist through the ledger")
	}
}

func TestShopInteractionAndSelling(t *testing.T) {
	ctx := context.Background()
	w := bareWorld(t)
	stageVillager(w)

	// Earn the gift first.
	interact(ctx, w)
	finishDialogue(ctx, t, w)
	coinsBefore := w.ledger.Stats().Coins

	// Move the shop into range and the villager out.
	center := w.player.Center()
	w.npcs[0].X = center.X + 500
	w.shop = ShopPoint{ID: "shop-village", Name: "Trading Post", X: center.X + 20, Y: center.Y}
	w.recomputePrompt()

	interact(ctx, w)
	if w.overlay != OverlayShop {
		t.Fatalf("interacting at the shop must open the shop overlay")
	}

	gift := w.ledger.Gifts()[0]
	w.Apply(ctx, []Command{{Type: CommandSellGift, GiftID: gift.ID}})
	if len(w.ledger.Gifts()) != 0 {
		t.Fatalf("sold gift must leave the satchel")
	}
	if w.ledger.Stats().Coins <= coinsBefore {
		t.Fatalf("selling must pay out")
	}

	// Sell commands outside the shop overlay are ignored.
	w.Apply(ctx, []Command{{Type: CommandCancel}})
	w.Apply(ctx, []Command{{Type: CommandSellAll}})
	if w.overlay != OverlayNone {
		t.Fatalf("cancel must close the shop overlay")
	}
}
