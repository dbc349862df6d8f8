package economy

import (
	"context"

	"github.com/peggy10039/cat-village-gaming/logging"
)

const (
	// EventGiftGranted is emitted when a villager's one-shot gift lands in the satchel.
	EventGiftGranted logging.EventType = "economy.gift_granted"
	// EventGiftSold is emitted when a single gift is sold at the shop.
	EventGiftSold logging.EventType = "economy.gift_sold"
	// EventSatchelSold is emitted when the whole satchel is sold in one transaction.
	EventSatchelSold logging.EventType = "economy.satchel_sold"
)

// GiftGrantedPayload describes the granted gift and its rewards.
type GiftGrantedPayload struct {
	GiftID   string `json:"giftId"`
	GiftName string `json:"giftName"`
	Coins    int    `json:"coins,omitempty"`
	Healed   int    `json:"healed,omitempty"`
}

// GiftSoldPayload describes a single sale.
type GiftSoldPayload struct {
	GiftID string `json:"giftId"`
	Price  int    `json:"price"`
}

// SatchelSoldPayload describes a sell-all transaction.
type SatchelSoldPayload struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// GiftGranted publishes a gift grant event.
func GiftGranted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload GiftGrantedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventGiftGranted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}

// GiftSold publishes a single-sale event.
func GiftSold(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload GiftSoldPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventGiftSold,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}

// SatchelSold publishes a sell-all event.
func SatchelSold(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload SatchelSoldPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSatchelSold,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}
