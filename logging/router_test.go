package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/peggy10039/cat-village-gaming/logging"
	"github.com/peggy10039/cat-village-gaming/logging/sinks"
)

func TestRouterDeliversToSinkAndStampsTime(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := logging.ClockFunc(func() time.Time { return fixed })
	memory := sinks.NewMemorySink()
	router := logging.NewRouter(clock, logging.DefaultConfig(), []logging.NamedSink{{Name: "memory", Sink: memory}})

	router.Publish(context.Background(), logging.Event{
		Type:     "economy.gift_granted",
		Tick:     7,
		Actor:    logging.EntityRef{ID: "player", Kind: logging.EntityKindPlayer},
		Severity: logging.SeverityInfo,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Time != fixed {
		t.Fatalf("expected router to stamp event time, got %v", events[0].Time)
	}
	stats := router.Stats()
	if stats.EventsTotal != 1 || stats.DroppedTotal != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: memory}})

	router.Publish(context.Background(), logging.Event{Type: "dialogue.opened", Severity: logging.SeverityInfo})
	router.Publish(context.Background(), logging.Event{Type: "encounter.player_defeated", Severity: logging.SeverityWarn})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("expected severity filter to keep 1 event, got %d", len(events))
	}
	if events[0].Type != "encounter.player_defeated" {
		t.Fatalf("unexpected surviving event %q", events[0].Type)
	}
}

func TestWithFieldsDoesNotOverrideExisting(t *testing.T) {
	var captured logging.Event
	base := logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		captured = event
	})
	pub := logging.WithFields(base, map[string]any{"seed": "village", "mode": "default"})
	pub.Publish(context.Background(), logging.Event{
		Type:  "lifecycle.world_started",
		Extra: map[string]any{"mode": "custom"},
	})

	if captured.Extra["seed"] != "village" {
		t.Fatalf("expected injected field, got %v", captured.Extra)
	}
	if captured.Extra["mode"] != "custom" {
		t.Fatalf("existing extra must win, got %v", captured.Extra["mode"])
	}
}
