package sim

import (
	"github.com/peggy10039/cat-village-gaming/internal/geom"
	"github.com/peggy10039/cat-village-gaming/internal/ledger"
	"github.com/peggy10039/cat-village-gaming/internal/store"
)

// NPCView is the villager state surfaced to the presentation layer.
type NPCView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Given bool    `json:"given"`
}

// MobView is the mob state surfaced to the presentation layer.
type MobView struct {
	ID   string  `json:"id"`
	Kind MobKind `json:"kind"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// GiftListing pairs a satchel entry with its stable sell price.
type GiftListing struct {
	store.Gift
	Price int `json:"price"`
}

// DialogueView is the dialogue panel content.
type DialogueView struct {
	Active    bool   `json:"active"`
	Speaker   string `json:"speaker,omitempty"`
	Line      string `json:"line,omitempty"`
	LineIndex int    `json:"lineIndex"`
	LineCount int    `json:"lineCount"`
}

// Snapshot is everything the UI layer needs each frame.
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Player   Player        `json:"player"`
	NPCs     []NPCView     `json:"npcs"`
	Mobs     []MobView     `json:"mobs"`
	Camera   Camera        `json:"camera"`
	Stats    store.Stats   `json:"stats"`
	Gifts    []GiftListing `json:"gifts"`
	Hint     string        `json:"hint"`
	Nearest  Interactable  `json:"nearest"`
	Dialogue DialogueView  `json:"dialogue"`
	Overlay  Overlay       `json:"overlay"`
	HelpSeen bool          `json:"helpSeen"`
	Defeated bool          `json:"defeated"`
}

// Obstacles returns the static obstacle list; it never changes after
// construction, so the transport sends it once on join.
func (w *World) Obstacles() []geom.Rect {
	return append([]geom.Rect(nil), w.obstacles...)
}

// Shop returns the fixed shop point for the join payload.
func (w *World) Shop() ShopPoint {
	return w.shop
}

// Snapshot captures the current frame state for the UI layer.
func (w *World) Snapshot() Snapshot {
	stats := w.ledger.Stats()

	npcs := make([]NPCView, 0, len(w.npcs))
	for _, npc := range w.npcs {
		npcs = append(npcs, NPCView{
			ID:    npc.ID,
			Name:  npc.Name,
			X:     npc.X,
			Y:     npc.Y,
			Given: w.ledger.Given(npc.ID),
		})
	}

	mobs := make([]MobView, 0, len(w.mobs))
	for _, mob := range w.mobs {
		mobs = append(mobs, MobView{ID: mob.ID, Kind: mob.Kind, Name: mob.Name, X: mob.X, Y: mob.Y})
	}

	gifts := make([]GiftListing, 0)
	for _, gift := range w.ledger.Gifts() {
		gifts = append(gifts, GiftListing{Gift: gift, Price: ledger.Price(gift.Name, gift.From)})
	}

	dialogue := DialogueView{
		Active:    w.dialogue.Active,
		LineIndex: w.dialogue.LineIndex,
		LineCount: len(w.dialogue.Lines),
	}
	if w.dialogue.Active {
		dialogue.Speaker = w.dialogue.NPCName
		dialogue.Line = w.dialogue.Lines[w.dialogue.LineIndex]
	}

	return Snapshot{
		Tick:     w.tick,
		Width:    w.config.Width,
		Height:   w.config.Height,
		Player:   w.player,
		NPCs:     npcs,
		Mobs:     mobs,
		Camera:   w.camera,
		Stats:    stats,
		Gifts:    gifts,
		Hint:     w.HintText(),
		Nearest:  w.nearest,
		Dialogue: dialogue,
		Overlay:  w.overlay,
		HelpSeen: w.helpSeen,
		Defeated: stats.HP <= 0,
	}
}
