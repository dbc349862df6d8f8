package sim

import "github.com/peggy10039/cat-village-gaming/internal/geom"

// InteractKind tags the variant held by an Interactable result.
type InteractKind string

const (
	InteractNone InteractKind = ""
	InteractShop InteractKind = "shop"
	InteractNPC  InteractKind = "npc"
)

// Interactable is the nearest-candidate result across all interactive
// kinds. A zero value means nothing is in range.
type Interactable struct {
	Kind     InteractKind `json:"kind,omitempty"`
	ID       string       `json:"id,omitempty"`
	Name     string       `json:"name,omitempty"`
	Distance float64      `json:"distance,omitempty"`
}

// nearestInteractable ranks the shop point and every villager by distance
// from the player's center and returns the single closest candidate
// within range. The shop is evaluated first, so an exact distance tie
// resolves in its favor; otherwise plain distance comparison governs.
func (w *World) nearestInteractable() Interactable {
	center := w.player.Center()
	best := Interactable{}
	found := false

	consider := func(candidate Interactable) {
		if candidate.Distance > interactionRange {
			return
		}
		if !found || candidate.Distance < best.Distance {
			best = candidate
			found = true
		}
	}

	consider(Interactable{
		Kind:     InteractShop,
		ID:       w.shop.ID,
		Name:     w.shop.Name,
		Distance: geom.Dist(center.X, center.Y, w.shop.X, w.shop.Y),
	})
	for _, npc := range w.npcs {
		consider(Interactable{
			Kind:     InteractNPC,
			ID:       npc.ID,
			Name:     npc.Name,
			Distance: geom.Dist(center.X, center.Y, npc.X, npc.Y),
		})
	}

	if !found {
		return Interactable{}
	}
	return best
}
