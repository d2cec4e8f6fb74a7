package engine

import (
	"fmt"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

// Chest is the runtime state of a room's chest. Once Opened is set the
// loot is never re-rollable.
type Chest struct {
	Def    *catalog.Chest
	Opened bool
}

// NewChest wraps an authored chest definition in mutable state.
func NewChest(def *catalog.Chest) *Chest {
	return &Chest{Def: def}
}

// lootEntry is one weighted row of a tier table. Item rows name an item
// id; gold rows carry an inclusive range instead. Probabilities within a
// tier sum to at most 1; the remainder is an empty roll.
type lootEntry struct {
	ItemID  string
	GoldMin int
	GoldMax int
	Chance  float64
}

// Tier tables for non-fixed chest loot. A single uniform roll walks the
// cumulative probabilities and selects at most one row.
var lootTables = map[string][]lootEntry{
	"common": {
		{ItemID: "health_potion", Chance: 0.40},
		{GoldMin: 5, GoldMax: 15, Chance: 0.40},
		{ItemID: "short_sword", Chance: 0.20},
	},
	"uncommon": {
		{ItemID: "greater_health_potion", Chance: 0.25},
		{ItemID: "leather_armor", Chance: 0.20},
		{ItemID: "spell_scroll", Chance: 0.25},
		{GoldMin: 15, GoldMax: 30, Chance: 0.30},
	},
	"rare": {
		{ItemID: "iron_sword", Chance: 0.30},
		{ItemID: "iron_shield", Chance: 0.25},
		{GoldMin: 30, GoldMax: 60, Chance: 0.30},
		{ItemID: "antidote", Chance: 0.15},
	},
}

// validateLootTables cross-checks every tier the catalog's chests
// reference: the tier must name a known table, and every item row of
// that table must resolve to a catalog item. Catalog validation cannot
// see the tables, so a session refuses to start on a custom catalog
// that would roll loot it never defined.
func validateLootTables(cat *catalog.Catalog) error {
	for roomID, room := range cat.Rooms {
		chest := room.Chest
		if chest == nil || chest.LootTier == "" {
			continue
		}
		table, ok := lootTables[chest.LootTier]
		if !ok {
			return fmt.Errorf("room %q chest names unknown loot tier %q", roomID, chest.LootTier)
		}
		for _, entry := range table {
			if entry.ItemID != "" && cat.Item(entry.ItemID) == nil {
				return fmt.Errorf("loot tier %q rolls item %q missing from the catalog", chest.LootTier, entry.ItemID)
			}
		}
	}
	return nil
}

// LootTiers lists the known tier names, for the simulate harness.
func LootTiers() []string {
	return []string{"common", "uncommon", "rare"}
}

// RollTier performs one weighted selection from a tier table. It returns
// either an item id, or a gold amount drawn uniformly from the row's
// inclusive range, or neither when the roll lands in the unassigned
// remainder of the probability mass.
func RollTier(tier string, rng Source) (itemID string, gold int, ok bool) {
	table := lootTables[tier]
	if len(table) == 0 {
		return "", 0, false
	}
	roll := rng.Float64()
	cumulative := 0.0
	for _, entry := range table {
		cumulative += entry.Chance
		if roll < cumulative {
			if entry.ItemID != "" {
				return entry.ItemID, 0, true
			}
			return "", entry.GoldMin + rng.Intn(entry.GoldMax-entry.GoldMin+1), true
		}
	}
	return "", 0, false
}

// TierWeights exposes a tier's declared per-row probabilities keyed by a
// readable label, for the simulate harness to compare observations against.
func TierWeights(tier string) map[string]float64 {
	weights := make(map[string]float64)
	for _, entry := range lootTables[tier] {
		if entry.ItemID != "" {
			weights[entry.ItemID] = entry.Chance
		} else {
			weights["gold"] = entry.Chance
		}
	}
	return weights
}
