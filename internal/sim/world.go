// Package sim is the authoritative single-player simulation: world model,
// movement, autonomous wandering, mob effects, dialogue, and camera. One
// goroutine owns a World; commands arrive at the head of a tick and every
// update inside the tick is synchronous.
package sim

import (
	"context"
	"math/rand"

	"github.com/peggy10039/cat-village-gaming/internal/geom"
	"github.com/peggy10039/cat-village-gaming/internal/ledger"
	"github.com/peggy10039/cat-village-gaming/internal/store"
	"github.com/peggy10039/cat-village-gaming/logging"
	loglifecycle "github.com/peggy10039/cat-village-gaming/logging/lifecycle"
)

// Deps bundles the runtime collaborators injected into a World.
type Deps struct {
	Publisher logging.Publisher
	Store     store.Store
	Clock     logging.Clock
}

// World owns all simulation state for one play session.
type World struct {
	config    Config
	seed      string
	publisher logging.Publisher
	clock     logging.Clock
	ledger    *ledger.Ledger

	npcRNG *rand.Rand
	mobRNG *rand.Rand

	obstacles []geom.Rect
	spawn     geom.Vec2
	player    Player
	npcs      []*NPC
	mobs      []*Mob
	shop      ShopPoint

	tick    uint64
	elapsed float64

	held     DirectionSet
	overlay  Overlay
	dialogue dialogueSession
	camera   Camera
	notice   notice
	prompt   string
	nearest  Interactable
	helpSeen bool
}

// New constructs a world with normalized configuration, a restored
// ledger, and the stock village content.
func New(ctx context.Context, cfg Config, deps Deps) *World {
	normalized := cfg.normalized()

	publisher := deps.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = logging.SystemClock{}
	}
	st := deps.Store
	if st == nil {
		st = store.NewMemoryStore()
	}

	w := &World{
		config:    normalized,
		seed:      normalized.Seed,
		publisher: publisher,
		clock:     clock,
		ledger:    ledger.New(ctx, st, publisher, clock),
	}
	w.initWorldState()
	w.helpSeen = w.ledger.HelpSeen(ctx)

	loglifecycle.WorldStarted(ctx, publisher, loglifecycle.WorldStartedPayload{
		Seed:      w.seed,
		NPCs:      len(w.npcs),
		Mobs:      len(w.mobs),
		Obstacles: len(w.obstacles),
	})
	return w
}

// initWorldState (re)builds everything that is not persisted: content,
// wander states, RNG streams, camera, and transient UI state.
func (w *World) initWorldState() {
	w.npcRNG = NewDeterministicRNG(w.seed, "npcs")
	w.mobRNG = NewDeterministicRNG(w.seed, "mobs")

	seedVillage(w)

	for _, npc := range w.npcs {
		npc.wander = newWanderState(npc.X, npc.Y)
	}
	for _, mob := range w.mobs {
		mob.wander = newWanderState(mob.X, mob.Y)
		mob.cooldown = 0
	}

	w.held = 0
	w.overlay = OverlayNone
	w.dialogue = dialogueSession{}
	w.notice = notice{}
	w.elapsed = 0
	w.camera = newCamera(w.player.Center(), w.config)
	w.recomputePrompt()
}

// Config returns the normalized configuration captured at construction.
func (w *World) Config() Config {
	return w.config
}

// Ledger exposes the economy state for the transport layer.
func (w *World) Ledger() *ledger.Ledger {
	return w.ledger
}

// Apply stages the given commands into world state. Commands are
// processed in order, before the tick's updates run.
func (w *World) Apply(ctx context.Context, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Type {
		case CommandSetHeld:
			// Held keys are tracked even while movement is blocked;
			// they simply stop being applied until unblocked.
			w.held = cmd.Held
		case CommandInteract:
			w.handleInteract(ctx)
		case CommandCancel:
			w.handleCancel(ctx)
		case CommandToggleInventory:
			w.toggleOverlay(ctx, OverlayInventory)
		case CommandToggleHelp:
			w.toggleOverlay(ctx, OverlayHelp)
		case CommandSellGift:
			if w.overlay == OverlayShop {
				w.sellGift(ctx, cmd.GiftID)
			}
		case CommandSellAll:
			if w.overlay == OverlayShop {
				w.sellAll(ctx)
			}
		case CommandHardReset:
			w.hardReset(ctx)
		}
	}
}

// Step advances the simulation by dt seconds. Update order is load
// bearing: movement, villager wander, mob wander and effects, notice
// expiry, camera, then the interaction prompt.
func (w *World) Step(ctx context.Context, dt float64) {
	dt = geom.Clamp(dt, minDelta, maxDelta)
	w.tick++
	w.elapsed += dt

	w.stepPlayer(dt)
	if !w.dialogue.Active {
		w.stepNPCs(dt)
	}
	w.stepMobs(ctx, dt)
	w.expireNotice()
	w.stepCamera(dt)
	w.recomputePrompt()
}

// Tick reports the current tick number.
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) handleInteract(ctx context.Context) {
	if w.dialogue.Active {
		w.advanceDialogue(ctx)
		return
	}
	if w.overlay != OverlayNone {
		return
	}
	target := w.nearestInteractable()
	switch target.Kind {
	case InteractNPC:
		if npc := w.findNPC(target.ID); npc != nil {
			w.openDialogue(ctx, npc)
		}
	case InteractShop:
		w.overlay = OverlayShop
	}
}

func (w *World) handleCancel(ctx context.Context) {
	if w.dialogue.Active {
		w.closeDialogue(ctx, false)
		return
	}
	if w.overlay != OverlayNone {
		w.overlay = OverlayNone
	}
}

func (w *World) toggleOverlay(ctx context.Context, overlay Overlay) {
	if w.dialogue.Active {
		return
	}
	if w.overlay == overlay {
		w.overlay = OverlayNone
		return
	}
	w.overlay = overlay
	if overlay == OverlayHelp && !w.helpSeen {
		w.helpSeen = true
		w.ledger.MarkHelpSeen(ctx)
	}
}

func (w *World) sellGift(ctx context.Context, giftID string) {
	if price, sold := w.ledger.SellGift(ctx, w.tick, giftID); sold {
		w.setNotice(noticeSold(price))
	}
}

func (w *World) sellAll(ctx context.Context) {
	if count, total := w.ledger.SellAll(ctx, w.tick); count > 0 {
		w.setNotice(noticeSoldAll(count, total))
	}
}

// hardReset is a full reinitialization: the save is wiped and every piece
// of core state, persisted or not, returns to its initial value.
func (w *World) hardReset(ctx context.Context) {
	w.ledger.HardReset(ctx, w.tick)
	w.helpSeen = false
	w.initWorldState()
}

func (w *World) findNPC(id string) *NPC {
	for _, npc := range w.npcs {
		if npc.ID == id {
			return npc
		}
	}
	return nil
}

func (w *World) blocked() bool {
	return w.dialogue.Active || w.overlay != OverlayNone
}
