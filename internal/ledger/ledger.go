// Package ledger owns the player's persisted condition: stats, the gift
// satchel, and the per-villager given flags. Every mutation clamps to the
// legal range and writes through the injected store immediately.
package ledger

import (
	"context"
	"fmt"

	"github.com/peggy10039/cat-village-gaming/internal/store"
	"github.com/peggy10039/cat-village-gaming/logging"
	logeconomy "github.com/peggy10039/cat-village-gaming/logging/economy"
	loglifecycle "github.com/peggy10039/cat-village-gaming/logging/lifecycle"
)

const (
	// GiftCoinReward and GiftHealReward are the fixed one-shot side
	// effects applied when a villager's gift is granted.
	GiftCoinReward = 6
	GiftHealReward = 20
)

// GiftSource describes the villager and gift involved in a grant.
type GiftSource struct {
	NPCID    string
	NPCName  string
	GiftName string
	GiftDesc string
}

// Ledger is owned by the simulation goroutine; there is no concurrent
// writer, so mutation is plain field access followed by a store write.
type Ledger struct {
	stats store.Stats
	gifts []store.Gift
	given map[string]bool

	store     store.Store
	publisher logging.Publisher
	clock     logging.Clock
}

// New restores the ledger from the store. A load failure degrades to the
// default record rather than propagating; the save contract guarantees a
// usable result either way.
func New(ctx context.Context, st store.Store, pub logging.Publisher, clock logging.Clock) *Ledger {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	if clock == nil {
		clock = logging.SystemClock{}
	}
	data, err := st.Load(ctx)
	fallback := err != nil
	data = data.Normalized()

	l := &Ledger{
		stats:     data.Stats,
		gifts:     data.Gifts,
		given:     data.GivenNPCIDs,
		store:     st,
		publisher: pub,
		clock:     clock,
	}
	loglifecycle.SaveLoaded(ctx, pub, loglifecycle.SaveLoadedPayload{
		Gifts:    len(l.gifts),
		Coins:    l.stats.Coins,
		HP:       l.stats.HP,
		Fallback: fallback,
	})
	return l
}

// Stats returns the current clamped player stats.
func (l *Ledger) Stats() store.Stats {
	return l.stats
}

// Gifts returns a copy of the satchel in acquisition order.
func (l *Ledger) Gifts() []store.Gift {
	return append([]store.Gift(nil), l.gifts...)
}

// Given reports whether the villager's one-shot gift was already granted.
func (l *Ledger) Given(npcID string) bool {
	return l.given[npcID]
}

// GrantGift applies a villager's one-shot gift: marks the given flag,
// appends the satchel entry, and applies the fixed coin and heal rewards.
// A second call for the same villager is a no-op.
func (l *Ledger) GrantGift(ctx context.Context, tick uint64, src GiftSource) (store.Gift, bool) {
	if l.given[src.NPCID] {
		return store.Gift{}, false
	}
	l.given[src.NPCID] = true

	now := l.clock.Now().UnixMilli()
	gift := store.Gift{
		ID:   fmt.Sprintf("%s-%d", src.NPCID, now),
		Name: src.GiftName,
		Desc: src.GiftDesc,
		From: src.NPCName,
		Time: now,
	}
	l.gifts = append(l.gifts, gift)
	l.stats.Coins += GiftCoinReward
	healed := l.healLocked(GiftHealReward)
	l.persist(ctx)

	logeconomy.GiftGranted(ctx, l.publisher, tick,
		logging.EntityRef{ID: src.NPCID, Kind: logging.EntityKindNPC},
		logeconomy.GiftGrantedPayload{
			GiftID:   gift.ID,
			GiftName: gift.Name,
			Coins:    GiftCoinReward,
			Healed:   healed,
		})
	return gift, true
}

// SellGift removes the named gift and credits its deterministic price.
// Selling an absent id is a no-op.
func (l *Ledger) SellGift(ctx context.Context, tick uint64, giftID string) (int, bool) {
	for i, gift := range l.gifts {
		if gift.ID != giftID {
			continue
		}
		price := Price(gift.Name, gift.From)
		l.gifts = append(l.gifts[:i], l.gifts[i+1:]...)
		l.stats.Coins += price
		l.persist(ctx)
		logeconomy.GiftSold(ctx, l.publisher, tick,
			logging.EntityRef{Kind: logging.EntityKindPlayer},
			logeconomy.GiftSoldPayload{GiftID: giftID, Price: price})
		return price, true
	}
	return 0, false
}

// SellAll credits the summed deterministic price of every held gift and
// clears the satchel in one mutation.
func (l *Ledger) SellAll(ctx context.Context, tick uint64) (count, total int) {
	count = len(l.gifts)
	if count == 0 {
		return 0, 0
	}
	for _, gift := range l.gifts {
		total += Price(gift.Name, gift.From)
	}
	l.gifts = l.gifts[:0]
	l.stats.Coins += total
	l.persist(ctx)
	logeconomy.SatchelSold(ctx, l.publisher, tick,
		logging.EntityRef{Kind: logging.EntityKindPlayer},
		logeconomy.SatchelSoldPayload{Count: count, Total: total})
	return count, total
}

// AddCoins credits coins; negative amounts are ignored.
func (l *Ledger) AddCoins(ctx context.Context, amount int) {
	if amount <= 0 {
		return
	}
	l.stats.Coins += amount
	l.persist(ctx)
}

// TakeCoins debits up to amount and reports how many coins were actually
// removed; the balance never goes negative.
func (l *Ledger) TakeCoins(ctx context.Context, amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > l.stats.Coins {
		amount = l.stats.Coins
	}
	l.stats.Coins -= amount
	if amount > 0 {
		l.persist(ctx)
	}
	return amount
}

// Heal restores up to amount hp, clamped at max, and reports the actual
// amount restored.
func (l *Ledger) Heal(ctx context.Context, amount int) int {
	healed := l.healLocked(amount)
	if healed > 0 {
		l.persist(ctx)
	}
	return healed
}

func (l *Ledger) healLocked(amount int) int {
	if amount <= 0 || l.stats.HP >= l.stats.MaxHP {
		return 0
	}
	healed := amount
	if l.stats.HP+healed > l.stats.MaxHP {
		healed = l.stats.MaxHP - l.stats.HP
	}
	l.stats.HP += healed
	return healed
}

// TakeDamage removes up to amount hp, clamped at zero, and reports the
// damage actually applied.
func (l *Ledger) TakeDamage(ctx context.Context, amount int) int {
	if amount <= 0 || l.stats.HP <= 0 {
		return 0
	}
	if amount > l.stats.HP {
		amount = l.stats.HP
	}
	l.stats.HP -= amount
	l.persist(ctx)
	return amount
}

// HelpSeen reports the persisted help-overlay flag.
func (l *Ledger) HelpSeen(ctx context.Context) bool {
	seen, err := l.store.LoadHelpSeen(ctx)
	if err != nil {
		return false
	}
	return seen
}

// MarkHelpSeen records that the help overlay has been shown once.
func (l *Ledger) MarkHelpSeen(ctx context.Context) {
	if err := l.store.SaveHelpSeen(ctx, true); err != nil {
		l.reportSaveFailure(ctx, err)
	}
}

// HardReset wipes the persisted record and restores defaults.
func (l *Ledger) HardReset(ctx context.Context, tick uint64) {
	if err := l.store.Clear(ctx); err != nil {
		l.reportSaveFailure(ctx, err)
	}
	defaults := store.DefaultSaveData()
	l.stats = defaults.Stats
	l.gifts = defaults.Gifts
	l.given = defaults.GivenNPCIDs
	loglifecycle.HardReset(ctx, l.publisher, tick)
}

func (l *Ledger) persist(ctx context.Context) {
	data := store.SaveData{
		Gifts:       l.gifts,
		GivenNPCIDs: l.given,
		Stats:       l.stats,
	}
	if err := l.store.Save(ctx, data); err != nil {
		l.reportSaveFailure(ctx, err)
	}
}

func (l *Ledger) reportSaveFailure(ctx context.Context, err error) {
	l.publisher.Publish(ctx, logging.Event{
		Type:     "system.save_failed",
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityError,
		Category: logging.CategorySystem,
		Extra:    map[string]any{"error": err.Error()},
	})
}
