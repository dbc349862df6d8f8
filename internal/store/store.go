// Package store owns the persisted save record and its backends. The
// simulation core never touches a storage mechanism directly; it talks to
// the Store interface and trusts that decoding always yields a usable
// record, whatever is actually on disk.
package store

import (
	"context"
	"encoding/json"
)

// DefaultSaveKey is the fixed storage key for the single-player save blob.
const DefaultSaveKey = "cat-village:save"

// DefaultHelpKey records whether the help overlay has been shown before.
const DefaultHelpKey = "cat-village:help-seen"

const (
	DefaultMaxHP = 100
	DefaultHP    = 100
	DefaultCoins = 0
)

// Gift is one satchel entry. From names the villager the gift came from;
// Time is the acquisition moment in unix milliseconds.
type Gift struct {
	ID   string `json:"id" jsonschema:"title=Gift id,description=Unique per acquisition"`
	Name string `json:"name" jsonschema:"title=Gift name"`
	Desc string `json:"desc" jsonschema:"title=Gift description"`
	From string `json:"from" jsonschema:"title=Source villager name"`
	Time int64  `json:"time" jsonschema:"title=Acquisition time in unix milliseconds"`
}

// Stats is the persisted player condition.
type Stats struct {
	HP    int `json:"hp" jsonschema:"minimum=0"`
	MaxHP int `json:"maxHp" jsonschema:"minimum=1"`
	Coins int `json:"coins" jsonschema:"minimum=0"`
}

// SaveData is the logical shape of the persisted blob.
type SaveData struct {
	Gifts       []Gift          `json:"gifts"`
	GivenNPCIDs map[string]bool `json:"givenNpcIds"`
	Stats       Stats           `json:"stats"`
}

// Store is the persistence boundary injected into the ledger.
type Store interface {
	Load(ctx context.Context) (SaveData, error)
	Save(ctx context.Context, data SaveData) error
	LoadHelpSeen(ctx context.Context) (bool, error)
	SaveHelpSeen(ctx context.Context, seen bool) error
	Clear(ctx context.Context) error
}

// DefaultSaveData returns the record used when nothing is persisted yet.
func DefaultSaveData() SaveData {
	return SaveData{
		Gifts:       []Gift{},
		GivenNPCIDs: map[string]bool{},
		Stats:       Stats{HP: DefaultHP, MaxHP: DefaultMaxHP, Coins: DefaultCoins},
	}
}

// DecodeSaveData turns a persisted blob into a usable record. Every field
// falls back to its default independently; malformed input never surfaces
// as an error.
func DecodeSaveData(raw []byte) SaveData {
	data := DefaultSaveData()
	if len(raw) == 0 {
		return data
	}

	var probe struct {
		Gifts json.RawMessage `json:"gifts"`
		Given json.RawMessage `json:"givenNpcIds"`
		Stats json.RawMessage `json:"stats"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return data
	}

	if len(probe.Gifts) > 0 {
		var gifts []Gift
		if err := json.Unmarshal(probe.Gifts, &gifts); err == nil && gifts != nil {
			data.Gifts = gifts
		}
	}

	if len(probe.Given) > 0 {
		var given map[string]bool
		if err := json.Unmarshal(probe.Given, &given); err == nil && given != nil {
			data.GivenNPCIDs = given
		}
	}

	if len(probe.Stats) > 0 {
		var stats struct {
			HP    *int `json:"hp"`
			MaxHP *int `json:"maxHp"`
			Coins *int `json:"coins"`
		}
		if err := json.Unmarshal(probe.Stats, &stats); err == nil {
			if stats.MaxHP != nil {
				data.Stats.MaxHP = *stats.MaxHP
			}
			if stats.HP != nil {
				data.Stats.HP = *stats.HP
			}
			if stats.Coins != nil {
				data.Stats.Coins = *stats.Coins
			}
		}
	}

	return data.Normalized()
}

// Normalized clamps every stat into its legal range and replaces nil
// collections, so callers can rely on the invariants regardless of what
// was loaded.
func (d SaveData) Normalized() SaveData {
	normalized := d
	if normalized.Gifts == nil {
		normalized.Gifts = []Gift{}
	}
	if normalized.GivenNPCIDs == nil {
		normalized.GivenNPCIDs = map[string]bool{}
	}
	if normalized.Stats.MaxHP < 1 {
		normalized.Stats.MaxHP = DefaultMaxHP
	}
	if normalized.Stats.HP < 0 {
		normalized.Stats.HP = 0
	}
	if normalized.Stats.HP > normalized.Stats.MaxHP {
		normalized.Stats.HP = normalized.Stats.MaxHP
	}
	if normalized.Stats.Coins < 0 {
		normalized.Stats.Coins = 0
	}
	return normalized
}

// Clone deep-copies the record so stores can hand out snapshots safely.
func (d SaveData) Clone() SaveData {
	cloned := d
	cloned.Gifts = append([]Gift(nil), d.Gifts...)
	cloned.GivenNPCIDs = make(map[string]bool, len(d.GivenNPCIDs))
	for k, v := range d.GivenNPCIDs {
		cloned.GivenNPCIDs[k] = v
	}
	return cloned
}
