package catalog

import "fmt"

var validDirections = map[string]bool{
	"north": true, "south": true, "east": true,
	"west": true, "up": true, "down": true,
}

var validFountainEffects = map[string]bool{
	"heal": true, "restore": true, "damage": true,
	"buff_attack": true, "buff_defense": true,
	"gold": true, "curse": true, "level_up": true,
}

// Validate cross-checks referential integrity across the three keyed
// collections: every exit resolves to a room, every item and enemy
// reference resolves to a definition, locked chests carry a key, mimic
// chests name an enemy template, and fountain effects come from the
// known effect set.
func (c *Catalog) Validate() error {
	if c.StartingRoom == "" {
		return fmt.Errorf("catalog: no starting_room declared")
	}
	if _, ok := c.Rooms[c.StartingRoom]; !ok {
		return fmt.Errorf("catalog: starting_room %q does not exist", c.StartingRoom)
	}

	for id, room := range c.Rooms {
		for dir, target := range room.Exits {
			if !validDirections[dir] {
				return fmt.Errorf("catalog: room %q exit direction %q is invalid", id, dir)
			}
			if _, ok := c.Rooms[target]; !ok {
				return fmt.Errorf("catalog: room %q exit %s points to unknown room %q", id, dir, target)
			}
		}
		for dir, key := range room.LockedExits {
			if _, ok := room.Exits[dir]; !ok {
				return fmt.Errorf("catalog: room %q locks direction %s which has no exit", id, dir)
			}
			if err := c.requireItem(key, ItemKey); err != nil {
				return fmt.Errorf("catalog: room %q lock %s: %w", id, dir, err)
			}
		}
		for _, itemID := range room.Items {
			if _, ok := c.Items[itemID]; !ok {
				return fmt.Errorf("catalog: room %q contains unknown item %q", id, itemID)
			}
		}
		for _, itemID := range room.ShopInventory {
			if _, ok := c.Items[itemID]; !ok {
				return fmt.Errorf("catalog: room %q sells unknown item %q", id, itemID)
			}
		}
		if room.EnemyID != "" {
			if _, ok := c.Enemies[room.EnemyID]; !ok {
				return fmt.Errorf("catalog: room %q hosts unknown enemy %q", id, room.EnemyID)
			}
		}
		for _, effect := range room.FountainEffects {
			if !validFountainEffects[effect] {
				return fmt.Errorf("catalog: room %q fountain effect %q is unknown", id, effect)
			}
		}
		if room.Chest != nil {
			if err := c.validateChest(id, room.Chest); err != nil {
				return err
			}
		}
	}

	for id, enemy := range c.Enemies {
		for _, drop := range enemy.DropTable {
			if _, ok := c.Items[drop.ItemID]; !ok {
				return fmt.Errorf("catalog: enemy %q drops unknown item %q", id, drop.ItemID)
			}
			if drop.Chance < 0 || drop.Chance > 1 {
				return fmt.Errorf("catalog: enemy %q drop %q chance %v out of [0,1]", id, drop.ItemID, drop.Chance)
			}
		}
	}
	return nil
}

func (c *Catalog) validateChest(roomID string, chest *Chest) error {
	switch chest.State {
	case ChestUnlocked, ChestTrapped:
	case ChestLocked:
		if chest.KeyRequired == "" {
			return fmt.Errorf("catalog: locked chest in room %q has no key_required", roomID)
		}
		if err := c.requireItem(chest.KeyRequired, ItemKey); err != nil {
			return fmt.Errorf("catalog: chest in room %q: %w", roomID, err)
		}
	case ChestMimic:
		if chest.MimicEnemy == "" {
			return fmt.Errorf("catalog: mimic chest in room %q names no enemy", roomID)
		}
		if _, ok := c.Enemies[chest.MimicEnemy]; !ok {
			return fmt.Errorf("catalog: mimic chest in room %q spawns unknown enemy %q", roomID, chest.MimicEnemy)
		}
	default:
		return fmt.Errorf("catalog: chest in room %q has invalid state %q", roomID, chest.State)
	}
	for _, itemID := range chest.FixedLoot {
		if _, ok := c.Items[itemID]; !ok {
			return fmt.Errorf("catalog: chest in room %q holds unknown item %q", roomID, itemID)
		}
	}
	return nil
}

func (c *Catalog) requireItem(id string, typ ItemType) error {
	it, ok := c.Items[id]
	if !ok {
		return fmt.Errorf("unknown item %q", id)
	}
	if it.Type != typ {
		return fmt.Errorf("item %q is %s, expected %s", id, it.Type, typ)
	}
	return nil
}
